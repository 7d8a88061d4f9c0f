package create_reservation

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/service/pricing"
	createReservation "github.com/m04kA/SMC-GarageService/internal/usecase/create_reservation"
)

// DateWindowRequest одна дата бронирования
type DateWindowRequest struct {
	Date      string `json:"fecha"`       // "2026-03-01"
	StartTime string `json:"hora_inicio"` // "10:00"
	EndTime   string `json:"hora_fin"`    // "12:00"
}

// ExtraRequest выбранная дополнительная услуга
type ExtraRequest struct {
	ServiceID uuid.UUID `json:"id_servicio"`
	Quantity  int       `json:"cantidad"`
}

// CreateReservationRequest HTTP request model.
// Дата передается либо одной тройкой fecha/hora_inicio/hora_fin, либо массивом fechas.
type CreateReservationRequest struct {
	GarageID       uuid.UUID           `json:"id_garaje"`
	Date           string              `json:"fecha,omitempty"`
	StartTime      string              `json:"hora_inicio,omitempty"`
	EndTime        string              `json:"hora_fin,omitempty"`
	Dates          []DateWindowRequest `json:"fechas,omitempty"`
	Extras         []ExtraRequest      `json:"servicios_extra,omitempty"`
	InitialMessage *string             `json:"mensaje_inicial,omitempty"`
	WaiverAccepted bool                `json:"acepto_terminos_responsabilidad"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(renterID uuid.UUID, clientIP string) *createReservation.Request {
	dates := make([]createReservation.DateWindow, 0, len(r.Dates)+1)
	if r.Date != "" || r.StartTime != "" || r.EndTime != "" {
		dates = append(dates, createReservation.DateWindow{Date: r.Date, StartTime: r.StartTime, EndTime: r.EndTime})
	}
	for _, d := range r.Dates {
		dates = append(dates, createReservation.DateWindow{Date: d.Date, StartTime: d.StartTime, EndTime: d.EndTime})
	}

	extras := make([]pricing.ExtraSelection, 0, len(r.Extras))
	for _, e := range r.Extras {
		extras = append(extras, pricing.ExtraSelection{ServiceID: e.ServiceID, Quantity: e.Quantity})
	}

	return &createReservation.Request{
		RenterID:       renterID,
		GarageID:       r.GarageID,
		Dates:          dates,
		Extras:         extras,
		InitialMessage: r.InitialMessage,
		WaiverAccepted: r.WaiverAccepted,
		ClientIP:       clientIP,
	}
}
