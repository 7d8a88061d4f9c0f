package garages

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// GarageRepository интерфейс репозитория гаражей
type GarageRepository interface {
	Create(ctx context.Context, g *domain.Garage) (*domain.Garage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Garage, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Garage, error)
	UpsertSchedule(ctx context.Context, s *domain.WeeklySchedule) (*domain.WeeklySchedule, error)
	AddBlackout(ctx context.Context, b *domain.BlackoutDate) (*domain.BlackoutDate, error)
	AddService(ctx context.Context, s *domain.ExtraService) (*domain.ExtraService, error)
	AddImage(ctx context.Context, img *domain.GarageImage) (*domain.GarageImage, error)
	ListServices(ctx context.Context, garageID uuid.UUID) ([]domain.ExtraService, error)
}

// SearchCache кэш результатов поиска, который нужно сбрасывать при изменении календаря
type SearchCache interface {
	DelPattern(ctx context.Context, pattern string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
