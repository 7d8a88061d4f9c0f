package resolve_dispute

import (
	"context"
	"time"

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
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DisputeTicket, error)
	Close(ctx context.Context, id uuid.UUID, status domain.TicketStatus, notes *string, at time.Time) error
}

// Ledger интерфейс эскроу-учета
type Ledger interface {
	Release(ctx context.Context, ownerID, reservationID uuid.UUID, amount domain.Cents) (*domain.Movement, error)
	Refund(ctx context.Context, ownerID, reservationID uuid.UUID, amount domain.Cents) (*domain.Movement, error)
	Reverse(ctx context.Context, ownerID, reservationID uuid.UUID, amount domain.Cents) (*domain.Movement, error)
}

// MetricsRecorder интерфейс для метрик переходов
type MetricsRecorder interface {
	ObserveTransition(status string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
