package search_garages

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Request параметры поиска в том виде, в котором они пришли в query
type Request struct {
	Date      string
	StartTime string
	EndTime   string
}

// GarageSummary гараж в результатах поиска, без календаря
type GarageSummary struct {
	ID                    uuid.UUID        `json:"id"`
	OwnerID               uuid.UUID        `json:"owner_id"`
	Name                  string           `json:"name"`
	Description           *string          `json:"description,omitempty"`
	Address               *string          `json:"address,omitempty"`
	Latitude              *float64         `json:"latitude,omitempty"`
	Longitude             *float64         `json:"longitude,omitempty"`
	HourlyRate            *domain.Cents    `json:"hourly_rate,omitempty"`
	DailyRate             *domain.Cents    `json:"daily_rate,omitempty"`
	MinHours              int              `json:"min_hours"`
	CleaningBufferMinutes int              `json:"cleaning_buffer_minutes"`
	Amenities             domain.Amenities `json:"amenities"`
	Images                []string         `json:"images"`
}

// Response результат поиска
type Response struct {
	Total   int             `json:"total"`
	Garages []GarageSummary `json:"garages"`
	Cached  bool            `json:"-"`
}

func toSummary(cal *domain.GarageCalendar) GarageSummary {
	g := cal.Garage
	images := make([]string, 0, len(cal.Images))
	for _, img := range cal.Images {
		images = append(images, img.URL)
	}

	return GarageSummary{
		ID:                    g.ID,
		OwnerID:               g.OwnerID,
		Name:                  g.Name,
		Description:           g.Description,
		Address:               g.Address,
		Latitude:              g.Latitude,
		Longitude:             g.Longitude,
		HourlyRate:            g.HourlyRate,
		DailyRate:             g.DailyRate,
		MinHours:              g.MinHours,
		CleaningBufferMinutes: g.CleaningBufferMinutes,
		Amenities:             g.Amenities,
		Images:                images,
	}
}
