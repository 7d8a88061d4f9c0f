package withdrawal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
)

var withdrawalColumns = []string{
	"id",
	"owner_id",
	"wallet_id",
	"amount",
	"bank_name",
	"account_number",
	"status",
	"proof_url",
	"processed_at",
	"created_at",
}

// Repository репозиторий заявок на вывод средств
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает заявку на вывод
func (r *Repository) Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("withdrawal_requests").
		Columns("owner_id", "wallet_id", "amount", "bank_name", "account_number", "status").
		Values(w.OwnerID, w.WalletID, w.Amount, w.BankName, w.AccountNumber, w.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &w.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return w, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(withdrawalColumns...).From("withdrawal_requests").Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	w, err := scanWithdrawal(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %w", ErrScanRow, err)
	}

	return w, nil
}

// List возвращает заявки с фильтром по владельцу и/или статусу, новые первыми
func (r *Repository) List(ctx context.Context, ownerID *uuid.UUID, status *domain.WithdrawalStatus) ([]*domain.WithdrawalRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(withdrawalColumns...).From("withdrawal_requests").OrderBy("created_at DESC")
	if ownerID != nil {
		builder = builder.Where(squirrel.Eq{"owner_id": *ownerID})
	}
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WithdrawalRequest, 0)
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan: %w", ErrScanRow, err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}

	return result, nil
}

// MarkProcessed переводит заявку из pending в processed
func (r *Repository) MarkProcessed(ctx context.Context, id uuid.UUID, proofURL string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("withdrawal_requests").
		Set("status", domain.WithdrawalProcessed).
		Set("proof_url", proofURL).
		Set("processed_at", at).
		Where(squirrel.Eq{"id": id, "status": domain.WithdrawalPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStatusMismatch
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWithdrawal(row rowScanner) (*domain.WithdrawalRequest, error) {
	var w domain.WithdrawalRequest
	err := row.Scan(
		&w.ID,
		&w.OwnerID,
		&w.WalletID,
		&w.Amount,
		&w.BankName,
		&w.AccountNumber,
		&w.Status,
		&w.ProofURL,
		&w.ProcessedAt,
		&w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
