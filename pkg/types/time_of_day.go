package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается, когда строка не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time of day out of range")
)

// TimeOfDay время суток в минутах от полуночи (0..1440).
// 1440 допускается только как "24:00" - конец суток для времени закрытия.
// В БД хранится как целое число, "HH:MM" используется только на внешнем интерфейсе.
type TimeOfDay int

// NewTimeOfDay создает TimeOfDay из часов и минут
func NewTimeOfDay(hours, minutes int) (TimeOfDay, error) {
	t := TimeOfDay(hours*60 + minutes)
	if hours < 0 || minutes < 0 || minutes > 59 || t > MinutesPerDay {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrTimeOutOfRange, hours, minutes)
	}
	return t, nil
}

// MustTimeOfDay парсит строку HH:MM и паникует при ошибке (для констант и тестов)
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay парсит строку формата HH:MM (строго две цифры часов и минут)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minutes, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return NewTimeOfDay(hours, minutes)
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String форматирует время как HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// AddMinutes возвращает время, сдвинутое на n минут. Результат может выходить
// за пределы суток - это нужно для расширения интервала буфером уборки.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	return t + TimeOfDay(n)
}

func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// MarshalText реализует encoding.TextMarshaler (JSON как "HH:MM")
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (t *TimeOfDay) UnmarshalText(data []byte) error {
	parsed, err := ParseTimeOfDay(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer (smallint в БД)
func (t TimeOfDay) Value() (driver.Value, error) {
	return int64(t), nil
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*t = TimeOfDay(v)
	case []byte:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return fmt.Errorf("types.TimeOfDay: scan %q: %w", v, err)
		}
		*t = TimeOfDay(n)
	case nil:
		*t = 0
	default:
		return fmt.Errorf("types.TimeOfDay: unsupported scan type %T", src)
	}
	return nil
}

// Interval полуоткрытый интервал [Start, End) внутри суток
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Overlaps проверяет пересечение полуоткрытых интервалов: a < d && b > c.
// Интервалы, касающиеся границей, не пересекаются.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// Contains проверяет, что other целиком лежит внутри i
func (i Interval) Contains(other Interval) bool {
	return other.Start >= i.Start && other.End <= i.End
}

// DurationMinutes длительность интервала в минутах
func (i Interval) DurationMinutes() int {
	return int(i.End - i.Start)
}
