package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// ReservationRepository чтение бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*domain.Reservation, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
