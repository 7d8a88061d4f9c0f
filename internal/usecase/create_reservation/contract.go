package create_reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/pricing"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// GarageRepository интерфейс репозитория гаражей
type GarageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Garage, error)
	ListServices(ctx context.Context, garageID uuid.UUID) ([]domain.ExtraService, error)
	GetCalendar(ctx context.Context, garageID uuid.UUID, date time.Time) (*domain.GarageCalendar, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// PriceCalculator калькулятор стоимости
type PriceCalculator interface {
	Quote(g *domain.Garage, windows []types.Interval, catalog []domain.ExtraService, extras []pricing.ExtraSelection) (*pricing.Quote, error)
}

// SearchCache кэш результатов поиска
type SearchCache interface {
	DelPattern(ctx context.Context, pattern string) error
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
