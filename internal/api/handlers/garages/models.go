package garages

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/api/models"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	garagesService "github.com/m04kA/SMC-GarageService/internal/service/garages"
)

// CreateGarageRequest HTTP request model. Цены в основных единицах
type CreateGarageRequest struct {
	Name                  string   `json:"nombre"`
	Description           *string  `json:"descripcion,omitempty"`
	Address               *string  `json:"direccion,omitempty"`
	Latitude              *float64 `json:"latitud,omitempty"`
	Longitude             *float64 `json:"longitud,omitempty"`
	HourlyRate            *float64 `json:"precio_hora,omitempty"`
	DailyRate             *float64 `json:"precio_dia,omitempty"`
	MinHours              *int     `json:"minimo_horas,omitempty"`
	CleaningBufferMinutes *int     `json:"tiempo_limpieza,omitempty"`
	Wifi                  bool     `json:"tiene_wifi"`
	Bathroom              bool     `json:"tiene_bano"`
	Electricity           bool     `json:"tiene_electricidad"`
	Table                 bool     `json:"tiene_mesa"`
}

func (r *CreateGarageRequest) ToServiceRequest(ownerID uuid.UUID) *garagesService.CreateRequest {
	return &garagesService.CreateRequest{
		OwnerID:               ownerID,
		Name:                  r.Name,
		Description:           r.Description,
		Address:               r.Address,
		Latitude:              r.Latitude,
		Longitude:             r.Longitude,
		HourlyRate:            cents(r.HourlyRate),
		DailyRate:             cents(r.DailyRate),
		MinHours:              r.MinHours,
		CleaningBufferMinutes: r.CleaningBufferMinutes,
		Amenities: domain.Amenities{
			Wifi:        r.Wifi,
			Bathroom:    r.Bathroom,
			Electricity: r.Electricity,
			Table:       r.Table,
		},
	}
}

// ScheduleRequest HTTP request model
type ScheduleRequest struct {
	DayOfWeek *int    `json:"dia_semana"`
	IsOpen    *bool   `json:"abierto,omitempty"`
	OpenTime  *string `json:"hora_inicio,omitempty"`
	CloseTime *string `json:"hora_fin,omitempty"`
}

// ServiceRequest HTTP request model
type ServiceRequest struct {
	Name   string  `json:"nombre"`
	Price  float64 `json:"precio"`
	PerDay *bool   `json:"es_por_dia,omitempty"`
}

// BlackoutRequest HTTP request model
type BlackoutRequest struct {
	Date   string  `json:"fecha"`
	Reason *string `json:"motivo,omitempty"`
}

// ImageRequest HTTP request model
type ImageRequest struct {
	URL string `json:"url"`
}

func FromDetails(d *garagesService.Details) *models.GarageResponse {
	resp := models.FromGarage(d.Garage)
	resp.Services = make([]models.ServiceResponse, 0, len(d.Services))
	for i := range d.Services {
		resp.Services = append(resp.Services, models.FromService(&d.Services[i]))
	}
	return resp
}

func FromGarages(list []*domain.Garage) []*models.GarageResponse {
	resp := make([]*models.GarageResponse, 0, len(list))
	for _, g := range list {
		resp = append(resp, models.FromGarage(g))
	}
	return resp
}

func cents(v *float64) *domain.Cents {
	if v == nil {
		return nil
	}
	c := domain.CentsFromFloat(*v)
	return &c
}
