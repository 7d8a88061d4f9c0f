package check_out

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

// UseCase use case для check-out арендатора
type UseCase struct {
	reservationRepo ReservationRepository
	ledger          Ledger
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	ledger Ledger,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		ledger:          ledger,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute завершает дату: in_progress -> completed. Когда завершены все даты,
// бронирование переходит в completed и выплата владельца переводится из held
// в available в той же транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckOut: actor=%s, reservation=%s, date=%s", req.ActorID, req.ReservationID, req.DateID)

	resp := &Response{}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CheckOut: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CheckOut: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: get reservation: %w", ErrInternal, err)
		}

		// 2. Проверяем права и статус
		if !res.IsRenter(req.ActorID) {
			uc.logger.Warn("CheckOut: actor=%s is not the renter of reservation=%s", req.ActorID, res.ID)
			return ErrNotRenter
		}

		date, ok := res.FindDate(req.DateID)
		if !ok {
			uc.logger.Warn("CheckOut: date=%s does not belong to reservation=%s", req.DateID, res.ID)
			return ErrDateNotFound
		}
		if date.Status != domain.LineItemInProgress {
			uc.logger.Warn("CheckOut: date=%s is %s", date.ID, date.Status)
			return ErrNotCheckedIn
		}

		// Спор замораживает бронирование до решения администратора
		if res.Status != domain.ReservationInProgress {
			uc.logger.Warn("CheckOut: reservation=%s is %s", res.ID, res.Status)
			return ErrNotInProgress
		}

		// 3. Завершаем дату
		now := uc.timeProvider.Now()
		if err := uc.reservationRepo.UpdateDateStatus(txCtx, date.ID, domain.LineItemInProgress, domain.LineItemCompleted, now); err != nil {
			if errors.Is(err, reservationRepo.ErrStatusMismatch) {
				return ErrNotCheckedIn
			}
			uc.logger.Error("CheckOut: failed to update date=%s: %v", date.ID, err)
			return fmt.Errorf("%w: update date status: %w", ErrInternal, err)
		}
		date.Status = domain.LineItemCompleted
		date.CheckOutAt = &now

		// 4. Фотофиксация
		evidence, err := uc.reservationRepo.CreateEvidence(txCtx, &domain.Evidence{
			ReservationDateID: date.ID,
			Moment:            domain.EvidenceCheckOut,
			PhotoURL:          req.PhotoURL,
			Comments:          req.Comments,
		})
		if err != nil {
			uc.logger.Error("CheckOut: failed to save evidence for date=%s: %v", date.ID, err)
			return fmt.Errorf("%w: create evidence: %w", ErrInternal, err)
		}

		resp.Reservation = res
		resp.Evidence = evidence

		// 5. Остались незавершенные даты - бронирование остается in_progress
		if !res.AllDatesCompleted() {
			return nil
		}

		// 6. Завершаем бронирование и освобождаем выплату
		if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, domain.ReservationInProgress, domain.ReservationCompleted); err != nil {
			if errors.Is(err, reservationRepo.ErrStatusMismatch) {
				return ErrConcurrentUpdate
			}
			uc.logger.Error("CheckOut: failed to complete reservation=%s: %v", res.ID, err)
			return fmt.Errorf("%w: update status: %w", ErrInternal, err)
		}
		res.Status = domain.ReservationCompleted

		movement, err := uc.ledger.Release(txCtx, res.OwnerID, res.ID, res.OwnerPayout)
		if err != nil {
			uc.logger.Error("CheckOut: failed to release funds for reservation=%s: %v", res.ID, err)
			return err
		}
		resp.Movement = movement

		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CheckOut: concurrent update of reservation=%s: %v", req.ReservationID, err)
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	if resp.Reservation.Status == domain.ReservationCompleted {
		uc.metrics.ObserveTransition(string(domain.ReservationCompleted))
		uc.logger.Info("CheckOut: reservation=%s completed, released %s to owner=%s",
			resp.Reservation.ID, resp.Reservation.OwnerPayout, resp.Reservation.OwnerID)
	} else {
		uc.logger.Info("CheckOut: reservation=%s date=%s checked out", req.ReservationID, req.DateID)
	}

	return resp, nil
}
