package ratings

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/api/models"
	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// RateRequest HTTP request model. id_objetivo можно не передавать:
// для гаража это гараж бронирования, для пользователя - второй участник
type RateRequest struct {
	TargetID   *uuid.UUID `json:"id_objetivo,omitempty"`
	TargetType string     `json:"tipo_objetivo"`
	Score      int        `json:"puntuacion"`
	Comment    *string    `json:"comentario,omitempty"`
}

func FromRatings(list []domain.Rating) []*models.RatingResponse {
	resp := make([]*models.RatingResponse, 0, len(list))
	for i := range list {
		resp = append(resp, models.FromRating(&list[i]))
	}
	return resp
}
