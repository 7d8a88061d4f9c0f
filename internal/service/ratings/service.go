// Package ratings records scores left by reservation participants once the
// reservation is completed.
package ratings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	ratingRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/rating"
	reservationRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reservation"
)

// Request оценка по бронированию
type Request struct {
	ActorID       uuid.UUID
	ReservationID uuid.UUID
	TargetType    domain.RatingTarget
	TargetID      *uuid.UUID // если не задан - гараж или второй участник
	Score         int
	Comment       *string
}

// Service сервис оценок
type Service struct {
	ratings      RatingRepository
	reservations ReservationRepository
	logger       Logger
}

// NewService создает сервис оценок
func NewService(ratings RatingRepository, reservations ReservationRepository, logger Logger) *Service {
	return &Service{
		ratings:      ratings,
		reservations: reservations,
		logger:       logger,
	}
}

// Rate сохраняет оценку гаража или второго участника бронирования
func (s *Service) Rate(ctx context.Context, req *Request) (*domain.Rating, error) {
	if req.Score < domain.MinRatingScore || req.Score > domain.MaxRatingScore {
		return nil, ErrInvalidScore
	}

	res, err := s.reservations.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Rate: failed to get reservation id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: get reservation: %v", ErrInternal, err)
	}

	if !res.IsParticipant(req.ActorID) {
		s.logger.Warn("Rate: user=%s is not a participant of reservation=%s", req.ActorID, res.ID)
		return nil, ErrNotParticipant
	}

	if res.Status != domain.ReservationCompleted {
		s.logger.Warn("Rate: reservation=%s is %s", res.ID, res.Status)
		return nil, ErrNotCompleted
	}

	targetID, err := resolveTarget(res, req)
	if err != nil {
		return nil, err
	}

	created, err := s.ratings.Create(ctx, &domain.Rating{
		ReservationID: res.ID,
		AuthorID:      req.ActorID,
		TargetID:      targetID,
		TargetType:    req.TargetType,
		Score:         req.Score,
		Comment:       req.Comment,
	})
	if err != nil {
		if errors.Is(err, ratingRepo.ErrAlreadyRated) {
			return nil, ErrAlreadyRated
		}
		s.logger.Error("Rate: failed to save rating: %v", err)
		return nil, fmt.Errorf("%w: create rating: %v", ErrInternal, err)
	}

	s.logger.Info("Rate: user=%s rated %s=%s with %d", req.ActorID, req.TargetType, targetID, req.Score)

	return created, nil
}

// List возвращает оценки гаража или пользователя
func (s *Service) List(ctx context.Context, targetType domain.RatingTarget, targetID uuid.UUID) ([]domain.Rating, error) {
	if targetType != domain.RatingTargetGarage && targetType != domain.RatingTargetUser {
		return nil, ErrInvalidTarget
	}

	list, err := s.ratings.ListByTarget(ctx, targetType, targetID)
	if err != nil {
		s.logger.Error("ListRatings: failed to list %s=%s: %v", targetType, targetID, err)
		return nil, fmt.Errorf("%w: list ratings: %v", ErrInternal, err)
	}
	return list, nil
}

// resolveTarget гараж бронирования или второй участник
func resolveTarget(res *domain.Reservation, req *Request) (uuid.UUID, error) {
	var expected uuid.UUID
	switch req.TargetType {
	case domain.RatingTargetGarage:
		expected = res.GarageID
	case domain.RatingTargetUser:
		expected = res.OwnerID
		if req.ActorID == res.OwnerID {
			expected = res.RenterID
		}
	default:
		return uuid.Nil, ErrInvalidTarget
	}

	if req.TargetID != nil && *req.TargetID != expected {
		return uuid.Nil, ErrInvalidTarget
	}
	return expected, nil
}
