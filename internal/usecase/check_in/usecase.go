package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

// UseCase use case для check-in арендатора
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute отмечает заезд по дате: дата scheduled -> in_progress, бронирование
// paid -> in_progress при первом заезде. Ledger не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckIn: actor=%s, reservation=%s, date=%s", req.ActorID, req.ReservationID, req.DateID)

	resp := &Response{}
	promoted := false

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CheckIn: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CheckIn: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: get reservation: %w", ErrInternal, err)
		}

		// 2. Проверяем права и статус
		if !res.IsRenter(req.ActorID) {
			uc.logger.Warn("CheckIn: actor=%s is not the renter of reservation=%s", req.ActorID, res.ID)
			return ErrNotRenter
		}
		if res.Status != domain.ReservationPaid && res.Status != domain.ReservationInProgress {
			uc.logger.Warn("CheckIn: reservation=%s is %s", res.ID, res.Status)
			return ErrNotPaid
		}

		// 3. Проверяем дату
		date, ok := res.FindDate(req.DateID)
		if !ok {
			uc.logger.Warn("CheckIn: date=%s does not belong to reservation=%s", req.DateID, res.ID)
			return ErrDateNotFound
		}
		if date.Status != domain.LineItemScheduled {
			uc.logger.Warn("CheckIn: date=%s is %s", date.ID, date.Status)
			return ErrAlreadyCheckedIn
		}

		// 4. Переводим дату в in_progress
		now := uc.timeProvider.Now()
		if err := uc.reservationRepo.UpdateDateStatus(txCtx, date.ID, domain.LineItemScheduled, domain.LineItemInProgress, now); err != nil {
			if errors.Is(err, reservationRepo.ErrStatusMismatch) {
				return ErrAlreadyCheckedIn
			}
			uc.logger.Error("CheckIn: failed to update date=%s: %v", date.ID, err)
			return fmt.Errorf("%w: update date status: %w", ErrInternal, err)
		}
		date.Status = domain.LineItemInProgress
		date.CheckInAt = &now

		// 5. Фотофиксация
		evidence, err := uc.reservationRepo.CreateEvidence(txCtx, &domain.Evidence{
			ReservationDateID: date.ID,
			Moment:            domain.EvidenceCheckIn,
			PhotoURL:          req.PhotoURL,
			Comments:          req.Comments,
		})
		if err != nil {
			uc.logger.Error("CheckIn: failed to save evidence for date=%s: %v", date.ID, err)
			return fmt.Errorf("%w: create evidence: %w", ErrInternal, err)
		}

		// 6. Первый заезд переводит бронирование в in_progress
		if res.Status == domain.ReservationPaid {
			if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, domain.ReservationPaid, domain.ReservationInProgress); err != nil {
				if errors.Is(err, reservationRepo.ErrStatusMismatch) {
					return ErrConcurrentUpdate
				}
				uc.logger.Error("CheckIn: failed to update status of reservation=%s: %v", res.ID, err)
				return fmt.Errorf("%w: update status: %w", ErrInternal, err)
			}
			res.Status = domain.ReservationInProgress
			promoted = true
		}

		resp.Reservation = res
		resp.Evidence = evidence
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CheckIn: concurrent update of reservation=%s: %v", req.ReservationID, err)
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	if promoted {
		uc.metrics.ObserveTransition(string(domain.ReservationInProgress))
	}
	uc.logger.Info("CheckIn: reservation=%s date=%s checked in", req.ReservationID, req.DateID)

	return resp, nil
}
