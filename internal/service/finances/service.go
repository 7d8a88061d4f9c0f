// Package finances exposes the owner wallet (balance, movements, audit) and
// the operator side of withdrawals. Requesting a withdrawal debits the ledger
// and lives in the request_withdrawal usecase.
package finances

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	withdrawalRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/withdrawal"
	"github.com/m04kA/SMC-GarageService/internal/service/ledger"
)

// Service финансовый сервис
type Service struct {
	ledger       Ledger
	withdrawals  WithdrawalRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает финансовый сервис
func NewService(l Ledger, withdrawals WithdrawalRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		ledger:       l,
		withdrawals:  withdrawals,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Wallet возвращает баланс владельца и последние движения.
// Кошелек не создается при чтении.
func (s *Service) Wallet(ctx context.Context, ownerID uuid.UUID) (*ledger.Balance, error) {
	return s.ledger.Balance(ctx, ownerID, domain.RecentMovementsLimit)
}

// Audit сверяет сохраненный баланс с журналом движений
func (s *Service) Audit(ctx context.Context, ownerID uuid.UUID) (*ledger.Audit, error) {
	return s.ledger.Verify(ctx, ownerID)
}

// ListWithdrawals возвращает заявки. ownerID == nil - все заявки (для администратора).
func (s *Service) ListWithdrawals(ctx context.Context, ownerID *uuid.UUID, status *string) ([]*domain.WithdrawalRequest, error) {
	var filter *domain.WithdrawalStatus
	if status != nil && *status != "" {
		st := domain.WithdrawalStatus(*status)
		if st != domain.WithdrawalPending && st != domain.WithdrawalProcessed {
			return nil, ErrInvalidStatus
		}
		filter = &st
	}

	list, err := s.withdrawals.List(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error("ListWithdrawals: failed to list: %v", err)
		return nil, fmt.Errorf("%w: list withdrawals: %v", ErrInternal, err)
	}

	return list, nil
}

// ApproveWithdrawal отмечает заявку выплаченной. Баланс не меняется:
// сумма списана при создании заявки.
func (s *Service) ApproveWithdrawal(ctx context.Context, id uuid.UUID, proofURL string) (*domain.WithdrawalRequest, error) {
	proofURL = strings.TrimSpace(proofURL)
	if proofURL == "" {
		return nil, ErrProofRequired
	}

	var result *domain.WithdrawalRequest

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем заявку
		w, err := s.withdrawals.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, withdrawalRepo.ErrWithdrawalNotFound) {
				s.logger.Warn("ApproveWithdrawal: request id=%s not found", id)
				return ErrWithdrawalNotFound
			}
			s.logger.Error("ApproveWithdrawal: failed to get request id=%s: %v", id, err)
			return fmt.Errorf("%w: get withdrawal: %w", ErrInternal, err)
		}

		// 2. Проверяем статус
		if w.Status != domain.WithdrawalPending {
			s.logger.Warn("ApproveWithdrawal: request id=%s is %s", id, w.Status)
			return ErrAlreadyProcessed
		}

		// 3. Условный переход pending -> processed
		now := s.timeProvider.Now()
		if err := s.withdrawals.MarkProcessed(txCtx, id, proofURL, now); err != nil {
			if errors.Is(err, withdrawalRepo.ErrStatusMismatch) {
				s.logger.Warn("ApproveWithdrawal: request id=%s processed concurrently", id)
				return ErrAlreadyProcessed
			}
			s.logger.Error("ApproveWithdrawal: failed to mark request id=%s: %v", id, err)
			return fmt.Errorf("%w: mark processed: %w", ErrInternal, err)
		}

		w.Status = domain.WithdrawalProcessed
		w.ProofURL = &proofURL
		w.ProcessedAt = &now
		result = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ApproveWithdrawal: request id=%s processed, amount=%s owner=%s", result.ID, result.Amount, result.OwnerID)

	return result, nil
}
