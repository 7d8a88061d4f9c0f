// Package reservations is the read side of reservations. State transitions
// live in the usecase packages.
package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/auth"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reservation"
)

// Роли пользователя в списке бронирований
const (
	RoleRenter = "renter"
	RoleOwner  = "owner"
)

// Service сервис чтения бронирований
type Service struct {
	repo   ReservationRepository
	logger Logger
}

// NewService создает сервис чтения бронирований
func NewService(repo ReservationRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get возвращает бронирование участнику или администратору
func (s *Service) Get(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetReservation: failed to get reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: get reservation: %v", ErrInternal, err)
	}

	if !res.IsParticipant(actor.ID) && !actor.IsAdmin() {
		s.logger.Warn("GetReservation: user=%s is not a participant of reservation=%s", actor.ID, id)
		return nil, ErrNotParticipant
	}

	return res, nil
}

// List возвращает бронирования пользователя как арендатора (по умолчанию) или как владельца
func (s *Service) List(ctx context.Context, userID uuid.UUID, role string) ([]*domain.Reservation, error) {
	var (
		list []*domain.Reservation
		err  error
	)

	switch role {
	case "", RoleRenter:
		list, err = s.repo.ListByRenter(ctx, userID)
	case RoleOwner:
		list, err = s.repo.ListByOwner(ctx, userID)
	default:
		return nil, ErrInvalidRole
	}
	if err != nil {
		s.logger.Error("ListReservations: failed to list for user=%s role=%s: %v", userID, role, err)
		return nil, fmt.Errorf("%w: list reservations: %v", ErrInternal, err)
	}

	return list, nil
}
