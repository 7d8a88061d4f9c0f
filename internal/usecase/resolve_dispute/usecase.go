package resolve_dispute

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reservation"
	ticketRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

// UseCase use case для арбитража спора
type UseCase struct {
	reservationRepo ReservationRepository
	ticketRepo      TicketRepository
	ledger          Ledger
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	ticketRepo TicketRepository,
	ledger Ledger,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		ticketRepo:      ticketRepo,
		ledger:          ledger,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute закрывает тикет и применяет решение к бронированию и кошельку владельца.
//
// favor_renter: disputed -> refunded; удерживаемая выплата списывается (refund),
// а уже освобожденная - забирается из available (reversal).
// favor_owner: disputed -> completed; удерживаемая выплата освобождается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveDispute: actor=%s, ticket=%s, decision=%s", req.ActorID, req.TicketID, req.Decision)

	// 1. Проверка прав и решения
	if !req.IsAdmin {
		uc.logger.Warn("ResolveDispute: actor=%s is not an admin", req.ActorID)
		return nil, ErrNotAdmin
	}
	if !req.Decision.IsValid() {
		return nil, ErrInvalidDecision
	}

	resp := &Response{}
	var target domain.ReservationStatus

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем тикет
		ticket, err := uc.ticketRepo.GetByID(txCtx, req.TicketID)
		if err != nil {
			if errors.Is(err, ticketRepo.ErrTicketNotFound) {
				uc.logger.Warn("ResolveDispute: ticket id=%s not found", req.TicketID)
				return ErrTicketNotFound
			}
			uc.logger.Error("ResolveDispute: failed to get ticket id=%s: %v", req.TicketID, err)
			return fmt.Errorf("%w: get ticket: %w", ErrInternal, err)
		}
		if !ticket.IsOpen() {
			uc.logger.Warn("ResolveDispute: ticket=%s is already %s", ticket.ID, ticket.Status)
			return ErrTicketClosed
		}

		// 2.2. Получаем бронирование
		res, err := uc.reservationRepo.GetByID(txCtx, ticket.ReservationID)
		if err != nil {
			uc.logger.Error("ResolveDispute: failed to get reservation id=%s: %v", ticket.ReservationID, err)
			return fmt.Errorf("%w: get reservation: %w", ErrInternal, err)
		}
		if res.Status != domain.ReservationDisputed {
			uc.logger.Error("ResolveDispute: reservation=%s of open ticket=%s is %s", res.ID, ticket.ID, res.Status)
			return ErrReservationNotDisputed
		}

		// 2.3. Переход бронирования
		target = domain.ReservationCompleted
		if req.Decision == domain.DecisionFavorRenter {
			target = domain.ReservationRefunded
		}
		if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, domain.ReservationDisputed, target); err != nil {
			if errors.Is(err, reservationRepo.ErrStatusMismatch) {
				return ErrConcurrentUpdate
			}
			uc.logger.Error("ResolveDispute: failed to update status of reservation=%s: %v", res.ID, err)
			return fmt.Errorf("%w: update status: %w", ErrInternal, err)
		}
		res.Status = target

		// 2.4. Движение по кошельку зависит от статуса до спора
		movement, err := uc.settle(txCtx, req.Decision, ticket.PreviousStatus, res)
		if err != nil {
			return err
		}

		// 2.5. Закрываем тикет
		now := uc.timeProvider.Now()
		closed := req.Decision.ClosedStatus()
		if err := uc.ticketRepo.Close(txCtx, ticket.ID, closed, req.Notes, now); err != nil {
			if errors.Is(err, ticketRepo.ErrStatusMismatch) {
				return ErrTicketClosed
			}
			uc.logger.Error("ResolveDispute: failed to close ticket=%s: %v", ticket.ID, err)
			return fmt.Errorf("%w: close ticket: %w", ErrInternal, err)
		}
		ticket.Status = closed
		ticket.ResolutionNotes = req.Notes
		ticket.ClosedAt = &now

		resp.Ticket = ticket
		resp.Reservation = res
		resp.Movement = movement
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("ResolveDispute: concurrent update of ticket=%s: %v", req.TicketID, err)
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	uc.metrics.ObserveTransition(string(target))
	uc.logger.Info("ResolveDispute: ticket=%s closed as %s, reservation=%s is %s",
		resp.Ticket.ID, resp.Ticket.Status, resp.Reservation.ID, resp.Reservation.Status)

	return resp, nil
}

func (uc *UseCase) settle(
	ctx context.Context,
	decision domain.DisputeDecision,
	previous domain.ReservationStatus,
	res *domain.Reservation,
) (*domain.Movement, error) {
	switch {
	case decision == domain.DecisionFavorRenter && previous.FundsHeld():
		return uc.ledger.Refund(ctx, res.OwnerID, res.ID, res.OwnerPayout)
	case decision == domain.DecisionFavorRenter && previous == domain.ReservationCompleted:
		return uc.ledger.Reverse(ctx, res.OwnerID, res.ID, res.OwnerPayout)
	case decision == domain.DecisionFavorOwner && previous.FundsHeld():
		return uc.ledger.Release(ctx, res.OwnerID, res.ID, res.OwnerPayout)
	default:
		// favor_owner по завершенному бронированию: выплата уже в available
		return nil, nil
	}
}
