package ratings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	ratingsService "github.com/m04kA/SMC-GarageService/internal/service/ratings"
)

type RatingService interface {
	Rate(ctx context.Context, req *ratingsService.Request) (*domain.Rating, error)
	List(ctx context.Context, targetType domain.RatingTarget, targetID uuid.UUID) ([]domain.Rating, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
