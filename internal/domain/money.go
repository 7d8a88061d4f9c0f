package domain

import (
	"fmt"
	"math"
)

// Cents amount of money in minor currency units. All ledger arithmetic is done
// in integers so that commission + payout == total holds exactly.
type Cents int64

// CentsFromFloat converts a major-unit amount (e.g. 12.5) to cents, rounding
// half away from zero.
func CentsFromFloat(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// Float returns the amount in major units.
func (c Cents) Float() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Percent returns pct percent of c rounded half up.
func (c Cents) Percent(pct int64) Cents {
	return Cents((int64(c)*pct + 50) / 100)
}
