package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// WalletRepository интерфейс репозитория кошельков
type WalletRepository interface {
	EnsureWallet(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	ApplyDelta(ctx context.Context, walletID uuid.UUID, available, held domain.Cents) (*domain.Wallet, error)
	InsertMovement(ctx context.Context, m *domain.Movement) (*domain.Movement, error)
	ListMovements(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.Movement, error)
}

// MetricsRecorder интерфейс для метрик движений
type MetricsRecorder interface {
	ObserveMovement(movementType string, amountCents int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
