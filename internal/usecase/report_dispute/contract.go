package report_dispute

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.ReservationStatus) error
}

// TicketRepository интерфейс репозитория тикетов
type TicketRepository interface {
	Create(ctx context.Context, t *domain.DisputeTicket) (*domain.DisputeTicket, error)
}

// MetricsRecorder интерфейс для метрик переходов
type MetricsRecorder interface {
	ObserveTransition(status string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
