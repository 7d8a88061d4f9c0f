package pay_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

// UseCase use case для оплаты бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	ledger          Ledger
	txManager       TransactionManager
	metrics         MetricsRecorder
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
		logger:          logger,
	}
}

// Execute переводит бронирование pending -> paid, сохраняет чек (на проверке)
// и зачисляет выплату владельцу в held. Все в одной транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PayReservation: actor=%s, reservation=%s, method=%s", req.ActorID, req.ReservationID, req.Method)

	// 1. Валидация входных данных
	method := strings.TrimSpace(req.Method)
	if method == "" {
		return nil, ErrMethodRequired
	}

	resp := &Response{}

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("PayReservation: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("PayReservation: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: get reservation: %w", ErrInternal, err)
		}

		// 2.2. Платит только арендатор
		if !res.IsRenter(req.ActorID) {
			uc.logger.Warn("PayReservation: actor=%s is not the renter of reservation=%s", req.ActorID, res.ID)
			return ErrNotRenter
		}

		// 2.3. Проверяем статус
		if res.Status != domain.ReservationPending {
			uc.logger.Warn("PayReservation: reservation=%s is %s", res.ID, res.Status)
			return ErrNotPending
		}

		// 2.4. Условный переход pending -> paid
		if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, domain.ReservationPending, domain.ReservationPaid); err != nil {
			if errors.Is(err, reservationRepo.ErrStatusMismatch) {
				uc.logger.Warn("PayReservation: reservation=%s changed concurrently", res.ID)
				return ErrNotPending
			}
			uc.logger.Error("PayReservation: failed to update status of reservation=%s: %v", res.ID, err)
			return fmt.Errorf("%w: update status: %w", ErrInternal, err)
		}
		res.Status = domain.ReservationPaid

		// 2.5. Сохраняем чек
		proof, err := uc.reservationRepo.CreatePaymentProof(txCtx, &domain.PaymentProof{
			ReservationID: res.ID,
			Amount:        res.Total,
			Method:        method,
			ImageURL:      req.ImageURL,
			TransactionID: req.TransactionID,
			Status:        domain.PaymentProofUnderReview,
		})
		if err != nil {
			uc.logger.Error("PayReservation: failed to save payment proof for reservation=%s: %v", res.ID, err)
			return fmt.Errorf("%w: create payment proof: %w", ErrInternal, err)
		}

		// 2.6. Зачисляем выплату владельцу в held
		movement, err := uc.ledger.Hold(txCtx, res.OwnerID, res.ID, res.OwnerPayout)
		if err != nil {
			uc.logger.Error("PayReservation: failed to hold funds for reservation=%s: %v", res.ID, err)
			return err
		}

		resp.Reservation = res
		resp.Proof = proof
		resp.Movement = movement
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("PayReservation: concurrent update of reservation=%s: %v", req.ReservationID, err)
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	uc.metrics.ObserveTransition(string(domain.ReservationPaid))
	uc.logger.Info("PayReservation: reservation=%s paid, held %s for owner=%s",
		resp.Reservation.ID, resp.Reservation.OwnerPayout, resp.Reservation.OwnerID)

	return resp, nil
}
