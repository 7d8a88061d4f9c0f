// Package ledger keeps the per-owner escrow balances (available and held) and
// the append-only movement log. Every balance change is applied together
// with its movement; callers run these methods inside a transaction so both
// writes commit or roll back together.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	walletRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/wallet"
)

// Ledger сервис журнала движений
type Ledger struct {
	repo    WalletRepository
	metrics MetricsRecorder
	logger  Logger
}

// NewLedger создает сервис журнала
func NewLedger(repo WalletRepository, metrics MetricsRecorder, logger Logger) *Ledger {
	return &Ledger{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Hold зачисляет выплату владельцу в held при оплате бронирования.
// Создает кошелек, если его нет.
func (l *Ledger) Hold(ctx context.Context, ownerID, reservationID uuid.UUID, amount domain.Cents) (*domain.Movement, error) {
	wallet, err := l.repo.EnsureWallet(ctx, ownerID)
	if err != nil {
		l.logger.Error("Hold: failed to ensure wallet for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ensure wallet: %w", ErrInternal, err)
	}

	return l.apply(ctx, wallet, domain.MovementHold, amount, &reservationID,
		fmt.Sprintf("Funds held for reservation %s", reservationID))
}

// Release переводит выплату из held в available после завершения бронирования
func (l *Ledger) Release(ctx context.Context, ownerID, reservationID uuid.UUID, amount domain.Cents) (*domain.Movement, error) {
	wallet, err := l.wallet(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return l.apply(ctx, wallet, domain.MovementRelease, amount, &reservationID,
		fmt.Sprintf("Funds released for reservation %s", reservationID))
}

// Refund списывает выплату из held, когда спор решен в пользу арендатора
func (l *Ledger) Refund(ctx context.Context, ownerID, reservationID uuid.UUID, amount domain.Cents) (*domain.Movement, error) {
	wallet, err := l.wallet(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return l.apply(ctx, wallet, domain.MovementRefund, amount, &reservationID,
		fmt.Sprintf("Held funds refunded for reservation %s", reservationID))
}

// Reverse списывает уже освобожденную выплату из available, когда спор по
// завершенному бронированию решен в пользу арендатора
func (l *Ledger) Reverse(ctx context.Context, ownerID, reservationID uuid.UUID, amount domain.Cents) (*domain.Movement, error) {
	wallet, err := l.wallet(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return l.apply(ctx, wallet, domain.MovementReversal, amount, &reservationID,
		fmt.Sprintf("Released funds reversed for reservation %s", reservationID))
}

// Withdraw списывает сумму из available под заявку на вывод.
// Без кошелька доступный баланс считается нулевым.
func (l *Ledger) Withdraw(ctx context.Context, ownerID uuid.UUID, amount domain.Cents) (*domain.Wallet, *domain.Movement, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	wallet, err := l.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, walletRepo.ErrWalletNotFound) {
			l.logger.Warn("Withdraw: owner=%s has no wallet", ownerID)
			return nil, nil, ErrInsufficientFunds
		}
		l.logger.Error("Withdraw: failed to get wallet for owner=%s: %v", ownerID, err)
		return nil, nil, fmt.Errorf("%w: get wallet: %w", ErrInternal, err)
	}

	if amount > wallet.Available {
		l.logger.Warn("Withdraw: owner=%s requested %s, available %s", ownerID, amount, wallet.Available)
		return nil, nil, ErrInsufficientFunds
	}

	movement, err := l.apply(ctx, wallet, domain.MovementWithdrawal, amount, nil, "Withdrawal request")
	if err != nil {
		return nil, nil, err
	}

	return wallet, movement, nil
}

// Balance возвращает баланс и последние движения. Без кошелька - нули.
func (l *Ledger) Balance(ctx context.Context, ownerID uuid.UUID, limit int) (*Balance, error) {
	wallet, err := l.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, walletRepo.ErrWalletNotFound) {
			return &Balance{OwnerID: ownerID, Movements: []domain.Movement{}}, nil
		}
		l.logger.Error("Balance: failed to get wallet for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: get wallet: %w", ErrInternal, err)
	}

	movements, err := l.repo.ListMovements(ctx, wallet.ID, limit)
	if err != nil {
		l.logger.Error("Balance: failed to list movements for wallet=%s: %v", wallet.ID, err)
		return nil, fmt.Errorf("%w: list movements: %w", ErrInternal, err)
	}

	return &Balance{
		OwnerID:   ownerID,
		WalletID:  &wallet.ID,
		Available: wallet.Available,
		Held:      wallet.Held,
		Movements: movements,
	}, nil
}

// Verify пересчитывает баланс по журналу движений и сравнивает с сохраненным
func (l *Ledger) Verify(ctx context.Context, ownerID uuid.UUID) (*Audit, error) {
	wallet, err := l.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, walletRepo.ErrWalletNotFound) {
			return &Audit{OwnerID: ownerID, Consistent: true}, nil
		}
		return nil, fmt.Errorf("%w: get wallet: %w", ErrInternal, err)
	}

	movements, err := l.repo.ListMovements(ctx, wallet.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: list movements: %w", ErrInternal, err)
	}

	available, held := domain.ReplayBalance(movements)

	audit := &Audit{
		OwnerID:           ownerID,
		StoredAvailable:   wallet.Available,
		StoredHeld:        wallet.Held,
		ReplayedAvailable: available,
		ReplayedHeld:      held,
		Movements:         len(movements),
	}
	audit.Consistent = audit.StoredAvailable == available && audit.StoredHeld == held

	if !audit.Consistent {
		l.logger.Error("Verify: wallet=%s drift: stored=(%s, %s) replayed=(%s, %s)",
			wallet.ID, wallet.Available, wallet.Held, available, held)
	}

	return audit, nil
}

func (l *Ledger) wallet(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := l.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, walletRepo.ErrWalletNotFound) {
			l.logger.Error("ledger: owner=%s has no wallet but funds are expected to be held", ownerID)
			return nil, ErrHeldMismatch
		}
		return nil, fmt.Errorf("%w: get wallet: %w", ErrInternal, err)
	}
	return wallet, nil
}

// apply изменяет баланс и пишет движение. Отрицательный результат отклоняется
// условным UPDATE в БД.
func (l *Ledger) apply(
	ctx context.Context,
	wallet *domain.Wallet,
	kind domain.MovementType,
	amount domain.Cents,
	reservationID *uuid.UUID,
	description string,
) (*domain.Movement, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	dAvailable, dHeld := kind.Delta(amount)

	updated, err := l.repo.ApplyDelta(ctx, wallet.ID, dAvailable, dHeld)
	if err != nil {
		if errors.Is(err, walletRepo.ErrNegativeBalance) {
			l.logger.Warn("ledger: %s of %s rejected for wallet=%s: balance would become negative", kind, amount, wallet.ID)
			if kind == domain.MovementWithdrawal || kind == domain.MovementReversal {
				return nil, ErrInsufficientFunds
			}
			return nil, ErrHeldMismatch
		}
		l.logger.Error("ledger: failed to apply %s to wallet=%s: %v", kind, wallet.ID, err)
		return nil, fmt.Errorf("%w: apply delta: %w", ErrInternal, err)
	}
	*wallet = *updated

	movement, err := l.repo.InsertMovement(ctx, &domain.Movement{
		WalletID:      wallet.ID,
		ReservationID: reservationID,
		Type:          kind,
		Amount:        amount,
		Description:   description,
	})
	if err != nil {
		l.logger.Error("ledger: failed to insert %s movement for wallet=%s: %v", kind, wallet.ID, err)
		return nil, fmt.Errorf("%w: insert movement: %w", ErrInternal, err)
	}

	l.metrics.ObserveMovement(string(kind), int64(amount))
	l.logger.Info("ledger: %s %s wallet=%s available=%s held=%s", kind, amount, wallet.ID, wallet.Available, wallet.Held)

	return movement, nil
}
