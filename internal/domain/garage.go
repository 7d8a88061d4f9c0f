package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// Garage a private parking space offered by its owner
type Garage struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description *string
	Address     *string
	Latitude    *float64
	Longitude   *float64

	// At least one of HourlyRate / DailyRate is set
	HourlyRate *Cents
	DailyRate  *Cents

	MinHours              int
	CleaningBufferMinutes int

	Amenities Amenities

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Amenities flags shown in search results
type Amenities struct {
	Wifi        bool
	Bathroom    bool
	Electricity bool
	Table       bool
}

// HasRate returns true if at least one rate is configured
func (g *Garage) HasRate() bool {
	return (g.HourlyRate != nil && *g.HourlyRate > 0) || (g.DailyRate != nil && *g.DailyRate > 0)
}

// IsOwnedBy returns true if userID owns the garage
func (g *Garage) IsOwnedBy(userID uuid.UUID) bool {
	return g.OwnerID == userID
}

// WeeklySchedule opening hours for one day of week (0 = Sunday … 6 = Saturday)
type WeeklySchedule struct {
	ID        uuid.UUID
	GarageID  uuid.UUID
	DayOfWeek int
	IsOpen    bool
	OpenTime  types.TimeOfDay
	CloseTime types.TimeOfDay
}

// Window returns opening hours as an interval
func (s *WeeklySchedule) Window() types.Interval {
	return types.Interval{Start: s.OpenTime, End: s.CloseTime}
}

// BlackoutDate removes a garage from availability for a whole calendar day
type BlackoutDate struct {
	ID       uuid.UUID
	GarageID uuid.UUID
	Date     time.Time
	Reason   *string
}

// ExtraService an upsell item of the garage catalog
type ExtraService struct {
	ID       uuid.UUID
	GarageID uuid.UUID
	Name     string
	Price    Cents
	PerDay   bool
}

// GarageImage a photo of the garage
type GarageImage struct {
	ID        uuid.UUID
	GarageID  uuid.UUID
	URL       string
	CreatedAt time.Time
}

// BookedSlot an existing reservation line item as seen by the availability engine
type BookedSlot struct {
	ReservationID     uuid.UUID
	ReservationStatus ReservationStatus
	Date              time.Time
	Window            types.Interval
}

// GarageCalendar everything the availability engine needs to decide whether
// a garage is bookable on a given date
type GarageCalendar struct {
	Garage    *Garage
	Schedules []WeeklySchedule
	Blackouts []BlackoutDate
	Booked    []BookedSlot
	Images    []GarageImage
}

// SameDate compares two instants as timezone-naive calendar dates
func SameDate(a, b time.Time) bool {
	return a.Format(DateFormat) == b.Format(DateFormat)
}
