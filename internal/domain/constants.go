package domain

// Default values applied when the owner omits them
const (
	DefaultMinHours              = 1
	DefaultCleaningBufferMinutes = 0
	DefaultScheduleOpen          = "08:00"
	DefaultScheduleClose         = "20:00"
	DefaultCommissionPercent     = 10
	DefaultTermsVersion          = "v1.0.0"
	DefaultServiceQuantity       = 1
)

// Business validation constants
const (
	MaxCleaningBufferMinutes = 24 * 60
	MaxNameLength            = 200
	MaxDescriptionLength     = 2000
	MinRatingScore           = 1
	MaxRatingScore           = 5
	RecentMovementsLimit     = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ExtrasPolicy controls how unknown extra-service ids are handled when a
// reservation is created.
type ExtrasPolicy string

const (
	// ExtrasLenient silently drops unknown service ids
	ExtrasLenient ExtrasPolicy = "lenient"
	// ExtrasStrict rejects the reservation with a validation error
	ExtrasStrict ExtrasPolicy = "strict"
)

// IsValid reports whether p is a known policy.
func (p ExtrasPolicy) IsValid() bool {
	return p == ExtrasLenient || p == ExtrasStrict
}
