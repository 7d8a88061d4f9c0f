package garages

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// CreateRequest данные нового гаража
type CreateRequest struct {
	OwnerID               uuid.UUID
	Name                  string
	Description           *string
	Address               *string
	Latitude              *float64
	Longitude             *float64
	HourlyRate            *domain.Cents
	DailyRate             *domain.Cents
	MinHours              *int // по умолчанию domain.DefaultMinHours
	CleaningBufferMinutes *int // по умолчанию domain.DefaultCleaningBufferMinutes
	Amenities             domain.Amenities
}

// ScheduleRequest расписание на день недели
type ScheduleRequest struct {
	ActorID   uuid.UUID
	GarageID  uuid.UUID
	DayOfWeek int
	IsOpen    *bool   // по умолчанию true
	OpenTime  *string // по умолчанию domain.DefaultScheduleOpen
	CloseTime *string // по умолчанию domain.DefaultScheduleClose
}

// ServiceRequest дополнительная услуга
type ServiceRequest struct {
	ActorID  uuid.UUID
	GarageID uuid.UUID
	Name     string
	Price    domain.Cents
	PerDay   *bool // по умолчанию true
}

// BlackoutRequest блокировка даты
type BlackoutRequest struct {
	ActorID  uuid.UUID
	GarageID uuid.UUID
	Date     string // YYYY-MM-DD
	Reason   *string
}

// ImageRequest фото гаража
type ImageRequest struct {
	ActorID  uuid.UUID
	GarageID uuid.UUID
	URL      string
}

// Details гараж с каталогом услуг
type Details struct {
	Garage   *domain.Garage
	Services []domain.ExtraService
}
