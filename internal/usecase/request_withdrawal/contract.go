package request_withdrawal

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Ledger интерфейс эскроу-учета
type Ledger interface {
	Withdraw(ctx context.Context, ownerID uuid.UUID, amount domain.Cents) (*domain.Wallet, *domain.Movement, error)
}

// WithdrawalRepository интерфейс репозитория заявок на вывод
type WithdrawalRepository interface {
	Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
