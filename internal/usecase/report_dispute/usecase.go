package report_dispute

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reservation"
	ticketRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

// UseCase use case для открытия спора
type UseCase struct {
	reservationRepo ReservationRepository
	ticketRepo      TicketRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	ticketRepo TicketRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		ticketRepo:      ticketRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute переводит бронирование в disputed и открывает тикет.
// Ledger не меняется: held остается замороженным до решения.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReportDispute: actor=%s, reservation=%s, category=%s", req.ActorID, req.ReservationID, req.Category)

	// 1. Валидация входных данных
	category := strings.TrimSpace(req.Category)
	description := strings.TrimSpace(req.Description)
	if category == "" {
		return nil, ErrCategoryRequired
	}
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	resp := &Response{}

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("ReportDispute: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("ReportDispute: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: get reservation: %w", ErrInternal, err)
		}

		// 2.2. Спор открывает арендатор или владелец гаража
		if !res.IsParticipant(req.ActorID) {
			uc.logger.Warn("ReportDispute: actor=%s is not a participant of reservation=%s", req.ActorID, res.ID)
			return ErrNotParticipant
		}

		// 2.3. Проверяем статус
		if !res.Status.CanBeDisputed() {
			uc.logger.Warn("ReportDispute: reservation=%s is %s", res.ID, res.Status)
			return ErrNotDisputable
		}
		previous := res.Status

		// 2.4. Открываем тикет, запоминая статус до спора
		ticket, err := uc.ticketRepo.Create(txCtx, &domain.DisputeTicket{
			ReservationID:  res.ID,
			ReporterID:     req.ActorID,
			Category:       category,
			Description:    description,
			Status:         domain.TicketOpen,
			PreviousStatus: previous,
		})
		if err != nil {
			if errors.Is(err, ticketRepo.ErrOpenTicketExists) {
				uc.logger.Warn("ReportDispute: reservation=%s already has an open ticket", res.ID)
				return ErrDisputeExists
			}
			uc.logger.Error("ReportDispute: failed to create ticket for reservation=%s: %v", res.ID, err)
			return fmt.Errorf("%w: create ticket: %w", ErrInternal, err)
		}

		// 2.5. Условный переход в disputed
		if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, previous, domain.ReservationDisputed); err != nil {
			if errors.Is(err, reservationRepo.ErrStatusMismatch) {
				return ErrConcurrentUpdate
			}
			uc.logger.Error("ReportDispute: failed to update status of reservation=%s: %v", res.ID, err)
			return fmt.Errorf("%w: update status: %w", ErrInternal, err)
		}
		res.Status = domain.ReservationDisputed

		resp.Ticket = ticket
		resp.Reservation = res
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("ReportDispute: concurrent update of reservation=%s: %v", req.ReservationID, err)
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	uc.metrics.ObserveTransition(string(domain.ReservationDisputed))
	uc.logger.Info("ReportDispute: ticket=%s opened for reservation=%s (was %s)",
		resp.Ticket.ID, resp.Reservation.ID, resp.Ticket.PreviousStatus)

	return resp, nil
}
