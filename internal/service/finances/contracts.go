package finances

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/ledger"
)

// Ledger операции журнала, нужные для чтения баланса
type Ledger interface {
	Balance(ctx context.Context, ownerID uuid.UUID, limit int) (*ledger.Balance, error)
	Verify(ctx context.Context, ownerID uuid.UUID) (*ledger.Audit, error)
}

// WithdrawalRepository интерфейс репозитория заявок на вывод
type WithdrawalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	List(ctx context.Context, ownerID *uuid.UUID, status *domain.WithdrawalStatus) ([]*domain.WithdrawalRequest, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, proofURL string, at time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
