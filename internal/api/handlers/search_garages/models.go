package search_garages

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/api/models"
	searchGarages "github.com/m04kA/SMC-GarageService/internal/usecase/search_garages"
)

// GarageResultResponse гараж в результатах поиска
type GarageResultResponse struct {
	ID                    uuid.UUID                `json:"id"`
	OwnerID               uuid.UUID                `json:"owner_id"`
	Name                  string                   `json:"name"`
	Description           *string                  `json:"description,omitempty"`
	Address               *string                  `json:"address,omitempty"`
	Latitude              *float64                 `json:"latitude,omitempty"`
	Longitude             *float64                 `json:"longitude,omitempty"`
	HourlyRate            *float64                 `json:"hourly_rate,omitempty"`
	DailyRate             *float64                 `json:"daily_rate,omitempty"`
	MinHours              int                      `json:"min_hours"`
	CleaningBufferMinutes int                      `json:"cleaning_buffer_minutes"`
	Amenities             models.AmenitiesResponse `json:"amenities"`
	Images                []string                 `json:"images"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Total   int                    `json:"total"`
	Garages []GarageResultResponse `json:"garages"`
}

func FromUseCaseResponse(resp *searchGarages.Response) *SearchResponse {
	out := &SearchResponse{
		Total:   resp.Total,
		Garages: make([]GarageResultResponse, 0, len(resp.Garages)),
	}
	for _, g := range resp.Garages {
		item := GarageResultResponse{
			ID:                    g.ID,
			OwnerID:               g.OwnerID,
			Name:                  g.Name,
			Description:           g.Description,
			Address:               g.Address,
			Latitude:              g.Latitude,
			Longitude:             g.Longitude,
			MinHours:              g.MinHours,
			CleaningBufferMinutes: g.CleaningBufferMinutes,
			Amenities:             models.FromAmenities(g.Amenities),
			Images:                g.Images,
		}
		if g.HourlyRate != nil {
			v := g.HourlyRate.Float()
			item.HourlyRate = &v
		}
		if g.DailyRate != nil {
			v := g.DailyRate.Float()
			item.DailyRate = &v
		}
		out.Garages = append(out.Garages, item)
	}
	return out
}
