// Package garages manages the garage catalog: listings, weekly schedules,
// blackout dates, extra services and photos. Every mutation is restricted to
// the garage owner.
package garages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/infra/cache"
	garageRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/garage"
)

// Service сервис гаражей
type Service struct {
	repo   GarageRepository
	cache  SearchCache
	logger Logger
}

// NewService создает сервис гаражей
func NewService(repo GarageRepository, searchCache SearchCache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  searchCache,
		logger: logger,
	}
}

// Create публикует гараж
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Garage, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("CreateGarage: validation failed: %v", err)
		return nil, err
	}

	g := &domain.Garage{
		OwnerID:               req.OwnerID,
		Name:                  strings.TrimSpace(req.Name),
		Description:           req.Description,
		Address:               req.Address,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
		HourlyRate:            req.HourlyRate,
		DailyRate:             req.DailyRate,
		MinHours:              domain.DefaultMinHours,
		CleaningBufferMinutes: domain.DefaultCleaningBufferMinutes,
		Amenities:             req.Amenities,
	}
	if req.MinHours != nil {
		g.MinHours = *req.MinHours
	}
	if req.CleaningBufferMinutes != nil {
		g.CleaningBufferMinutes = *req.CleaningBufferMinutes
	}

	created, err := s.repo.Create(ctx, g)
	if err != nil {
		s.logger.Error("CreateGarage: failed to create garage for owner=%s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: create garage: %v", ErrInternal, err)
	}

	s.logger.Info("CreateGarage: created garage id=%s owner=%s", created.ID, created.OwnerID)

	return created, nil
}

// Get возвращает гараж с каталогом услуг
func (s *Service) Get(ctx context.Context, garageID uuid.UUID) (*Details, error) {
	g, err := s.get(ctx, garageID)
	if err != nil {
		return nil, err
	}

	services, err := s.repo.ListServices(ctx, garageID)
	if err != nil {
		s.logger.Error("GetGarage: failed to list services for garage=%s: %v", garageID, err)
		return nil, fmt.Errorf("%w: list services: %v", ErrInternal, err)
	}

	return &Details{Garage: g, Services: services}, nil
}

// ListMine возвращает гаражи владельца
func (s *Service) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*domain.Garage, error) {
	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("ListGarages: failed to list garages for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: list garages: %v", ErrInternal, err)
	}
	return list, nil
}

// SetSchedule создает или заменяет расписание на день недели
func (s *Service) SetSchedule(ctx context.Context, req *ScheduleRequest) (*domain.WeeklySchedule, error) {
	schedule, err := buildSchedule(req)
	if err != nil {
		s.logger.Warn("SetSchedule: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.owned(ctx, req.GarageID, req.ActorID); err != nil {
		return nil, err
	}

	saved, err := s.repo.UpsertSchedule(ctx, schedule)
	if err != nil {
		s.logger.Error("SetSchedule: failed to save schedule for garage=%s: %v", req.GarageID, err)
		return nil, fmt.Errorf("%w: upsert schedule: %v", ErrInternal, err)
	}

	// Расписание влияет на выдачу по всем датам
	s.invalidate(ctx, cache.SearchAllPattern())

	s.logger.Info("SetSchedule: garage=%s day=%d open=%t %s-%s",
		req.GarageID, saved.DayOfWeek, saved.IsOpen, saved.OpenTime, saved.CloseTime)

	return saved, nil
}

// AddService добавляет услугу в каталог
func (s *Service) AddService(ctx context.Context, req *ServiceRequest) (*domain.ExtraService, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrServiceNameRequired
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	if _, err := s.owned(ctx, req.GarageID, req.ActorID); err != nil {
		return nil, err
	}

	perDay := true
	if req.PerDay != nil {
		perDay = *req.PerDay
	}

	created, err := s.repo.AddService(ctx, &domain.ExtraService{
		GarageID: req.GarageID,
		Name:     name,
		Price:    req.Price,
		PerDay:   perDay,
	})
	if err != nil {
		s.logger.Error("AddService: failed to add service to garage=%s: %v", req.GarageID, err)
		return nil, fmt.Errorf("%w: add service: %v", ErrInternal, err)
	}

	s.logger.Info("AddService: garage=%s service=%s price=%s", req.GarageID, created.ID, created.Price)

	return created, nil
}

// BlockDate снимает гараж с поиска на календарный день
func (s *Service) BlockDate(ctx context.Context, req *BlackoutRequest) (*domain.BlackoutDate, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.owned(ctx, req.GarageID, req.ActorID); err != nil {
		return nil, err
	}

	created, err := s.repo.AddBlackout(ctx, &domain.BlackoutDate{
		GarageID: req.GarageID,
		Date:     date,
		Reason:   req.Reason,
	})
	if err != nil {
		if errors.Is(err, garageRepo.ErrBlackoutExists) {
			s.logger.Warn("BlockDate: garage=%s date=%s already blocked", req.GarageID, req.Date)
			return nil, ErrBlackoutExists
		}
		s.logger.Error("BlockDate: failed to block garage=%s date=%s: %v", req.GarageID, req.Date, err)
		return nil, fmt.Errorf("%w: add blackout: %v", ErrInternal, err)
	}

	s.invalidate(ctx, cache.SearchDatePattern(date))

	s.logger.Info("BlockDate: garage=%s blocked on %s", req.GarageID, date.Format(domain.DateFormat))

	return created, nil
}

// AddImage добавляет фото гаража
func (s *Service) AddImage(ctx context.Context, req *ImageRequest) (*domain.GarageImage, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil, ErrURLRequired
	}

	if _, err := s.owned(ctx, req.GarageID, req.ActorID); err != nil {
		return nil, err
	}

	created, err := s.repo.AddImage(ctx, &domain.GarageImage{GarageID: req.GarageID, URL: url})
	if err != nil {
		s.logger.Error("AddImage: failed to add image to garage=%s: %v", req.GarageID, err)
		return nil, fmt.Errorf("%w: add image: %v", ErrInternal, err)
	}

	return created, nil
}

func (s *Service) get(ctx context.Context, garageID uuid.UUID) (*domain.Garage, error) {
	g, err := s.repo.GetByID(ctx, garageID)
	if err != nil {
		if errors.Is(err, garageRepo.ErrGarageNotFound) {
			s.logger.Warn("garages: garage id=%s not found", garageID)
			return nil, ErrGarageNotFound
		}
		s.logger.Error("garages: failed to get garage id=%s: %v", garageID, err)
		return nil, fmt.Errorf("%w: get garage: %v", ErrInternal, err)
	}
	return g, nil
}

// owned возвращает гараж, если actorID - его владелец
func (s *Service) owned(ctx context.Context, garageID, actorID uuid.UUID) (*domain.Garage, error) {
	g, err := s.get(ctx, garageID)
	if err != nil {
		return nil, err
	}
	if !g.IsOwnedBy(actorID) {
		s.logger.Warn("garages: user=%s is not the owner of garage=%s", actorID, garageID)
		return nil, ErrNotOwner
	}
	return g, nil
}

// invalidate сбрасывает кэш поиска. Ошибка кэша не ломает запись.
func (s *Service) invalidate(ctx context.Context, pattern string) {
	if err := s.cache.DelPattern(ctx, pattern); err != nil {
		s.logger.Warn("garages: failed to invalidate search cache %s: %v", pattern, err)
	}
}
