package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/service/pricing"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// DateWindow одна дата бронирования в формате API
type DateWindow struct {
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
}

// Request модель запроса на создание бронирования
type Request struct {
	RenterID       uuid.UUID
	GarageID       uuid.UUID
	Dates          []DateWindow
	Extras         []pricing.ExtraSelection
	InitialMessage *string
	WaiverAccepted bool
	ClientIP       string
}

// Options настройки usecase из конфигурации
type Options struct {
	TermsVersion           string
	RevalidateAvailability bool
}

// lineItem разобранная дата бронирования
type lineItem struct {
	date   time.Time
	window types.Interval
}
