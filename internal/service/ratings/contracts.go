package ratings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// RatingRepository интерфейс репозитория оценок
type RatingRepository interface {
	Create(ctx context.Context, rt *domain.Rating) (*domain.Rating, error)
	ListByTarget(ctx context.Context, targetType domain.RatingTarget, targetID uuid.UUID) ([]domain.Rating, error)
}

// ReservationRepository чтение бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
