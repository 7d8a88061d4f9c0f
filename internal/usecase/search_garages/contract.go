package search_garages

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// GarageRepository интерфейс репозитория гаражей
type GarageRepository interface {
	ListCalendars(ctx context.Context, date time.Time) ([]*domain.GarageCalendar, error)
}

// SearchCache интерфейс кэша результатов поиска
type SearchCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// MetricsRecorder интерфейс для метрик кэша
type MetricsRecorder interface {
	ObserveCache(hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
