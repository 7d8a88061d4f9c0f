package finances

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/ledger"
)

type FinanceService interface {
	Wallet(ctx context.Context, ownerID uuid.UUID) (*ledger.Balance, error)
	Audit(ctx context.Context, ownerID uuid.UUID) (*ledger.Audit, error)
	ListWithdrawals(ctx context.Context, ownerID *uuid.UUID, status *string) ([]*domain.WithdrawalRequest, error)
	ApproveWithdrawal(ctx context.Context, id uuid.UUID, proofURL string) (*domain.WithdrawalRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
