package search_garages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/infra/cache"
	"github.com/m04kA/SMC-GarageService/internal/service/availability"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// UseCase use case для поиска свободных гаражей
type UseCase struct {
	garageRepo GarageRepository
	cache      SearchCache
	metrics    MetricsRecorder
	ttl        time.Duration
	logger     Logger
}

// NewUseCase создает новый экземпляр use case. ttl - время жизни результата в кэше.
func NewUseCase(
	garageRepo GarageRepository,
	searchCache SearchCache,
	metrics MetricsRecorder,
	ttl time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		garageRepo: garageRepo,
		cache:      searchCache,
		metrics:    metrics,
		ttl:        ttl,
		logger:     logger,
	}
}

// Execute возвращает гаражи, в которых окно свободно на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchGarages: date=%s, window=%s-%s", req.Date, req.StartTime, req.EndTime)

	// 1. Разбираем параметры
	date, window, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("SearchGarages: invalid request: %v", err)
		return nil, err
	}

	// 2. Пробуем кэш
	key := cache.SearchKey(date, window.Start.String(), window.End.String())
	var cached Response
	if uc.cache.Get(ctx, key, &cached) {
		uc.metrics.ObserveCache(true)
		cached.Cached = true
		return &cached, nil
	}
	uc.metrics.ObserveCache(false)

	// 3. Загружаем календари на дату
	calendars, err := uc.garageRepo.ListCalendars(ctx, date)
	if err != nil {
		uc.logger.Error("SearchGarages: failed to list calendars for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: list calendars: %v", ErrInternal, err)
	}

	// 4. Фильтруем движком доступности
	available := availability.Filter(calendars, date, window)
	resp := &Response{
		Total:   len(available),
		Garages: make([]GarageSummary, 0, len(available)),
	}
	for _, cal := range available {
		resp.Garages = append(resp.Garages, toSummary(cal))
	}

	// 5. Сохраняем в кэш, ошибка кэша не ломает поиск
	if err := uc.cache.Set(ctx, key, resp, uc.ttl); err != nil {
		uc.logger.Warn("SearchGarages: failed to cache %s: %v", key, err)
	}

	uc.logger.Info("SearchGarages: %d of %d garages available on %s", resp.Total, len(calendars), req.Date)
	return resp, nil
}

func parseRequest(req *Request) (time.Time, types.Interval, error) {
	if strings.TrimSpace(req.Date) == "" || req.StartTime == "" || req.EndTime == "" {
		return time.Time{}, types.Interval{}, ErrMissingParams
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		return time.Time{}, types.Interval{}, ErrInvalidDate
	}

	start, err := types.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return time.Time{}, types.Interval{}, ErrInvalidTime
	}
	end, err := types.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return time.Time{}, types.Interval{}, ErrInvalidTime
	}
	if !start.IsBefore(end) {
		return time.Time{}, types.Interval{}, ErrInvalidWindow
	}

	return date, types.Interval{Start: start, End: end}, nil
}
