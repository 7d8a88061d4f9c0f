package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
)

var walletColumns = []string{"id", "owner_id", "available", "held", "created_at", "updated_at"}

// Repository репозиторий кошельков и журнала движений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кошельков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureWallet возвращает кошелек владельца, создавая пустой при первом обращении.
// Внутри транзакции строка кошелька блокируется (FOR UPDATE).
func (r *Repository) EnsureWallet(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("wallets").
		Columns("owner_id").
		Values(ownerID).
		Suffix("ON CONFLICT (owner_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: EnsureWallet - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: EnsureWallet - execute insert: %w", ErrExecQuery, err)
	}

	return r.GetByOwner(ctx, ownerID)
}

// GetByOwner получает кошелек владельца
func (r *Repository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(walletColumns...).From("wallets").Where(squirrel.Eq{"owner_id": ownerID})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %w", ErrBuildQuery, err)
	}

	var w domain.Wallet
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&w.ID, &w.OwnerID, &w.Available, &w.Held, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("%w: GetByOwner - scan: %w", ErrScanRow, err)
	}

	return &w, nil
}

// ApplyDelta атомарно изменяет оба баланса кошелька.
// Если любой из балансов стал бы отрицательным, строка не обновляется
// и возвращается ErrNegativeBalance.
func (r *Repository) ApplyDelta(ctx context.Context, walletID uuid.UUID, available, held domain.Cents) (*domain.Wallet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("wallets").
		Set("available", squirrel.Expr("available + ?", available)).
		Set("held", squirrel.Expr("held + ?", held)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": walletID}).
		Where(squirrel.Expr("available + ? >= 0", available)).
		Where(squirrel.Expr("held + ? >= 0", held)).
		Suffix("RETURNING id, owner_id, available, held, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ApplyDelta - build update query: %w", ErrBuildQuery, err)
	}

	var w domain.Wallet
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&w.ID, &w.OwnerID, &w.Available, &w.Held, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNegativeBalance
		}
		return nil, fmt.Errorf("%w: ApplyDelta - execute update: %w", ErrExecQuery, err)
	}

	return &w, nil
}

// InsertMovement добавляет запись в журнал движений
func (r *Repository) InsertMovement(ctx context.Context, m *domain.Movement) (*domain.Movement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("wallet_movements").
		Columns("wallet_id", "reservation_id", "type", "amount", "description").
		Values(m.WalletID, m.ReservationID, m.Type, m.Amount, m.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: InsertMovement - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: InsertMovement - execute insert: %w", ErrExecQuery, err)
	}

	return m, nil
}

// ListMovements возвращает движения кошелька, новые первыми.
// limit <= 0 возвращает весь журнал.
func (r *Repository) ListMovements(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.Movement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "wallet_id", "reservation_id", "type", "amount", "description", "created_at").
		From("wallet_movements").
		Where(squirrel.Eq{"wallet_id": walletID}).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListMovements - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMovements - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	movements := make([]domain.Movement, 0)
	for rows.Next() {
		var m domain.Movement
		if err := rows.Scan(&m.ID, &m.WalletID, &m.ReservationID, &m.Type, &m.Amount, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListMovements - scan: %w", ErrScanRow, err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMovements - rows iteration: %w", ErrScanRow, err)
	}

	return movements, nil
}
