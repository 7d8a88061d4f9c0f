package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/auth"
	"github.com/m04kA/SMC-GarageService/internal/domain"
)

type ReservationService interface {
	Get(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*domain.Reservation, error)
	List(ctx context.Context, userID uuid.UUID, role string) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
