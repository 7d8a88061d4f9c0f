package ticket

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

var ticketColumns = []string{
	"id",
	"reservation_id",
	"reporter_id",
	"category",
	"description",
	"status",
	"previous_status",
	"resolution_notes",
	"closed_at",
	"created_at",
}

// Repository репозиторий тикетов поддержки (споров)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тикетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает тикет. Второй открытый тикет по бронированию возвращает ErrOpenTicketExists
func (r *Repository) Create(ctx context.Context, t *domain.DisputeTicket) (*domain.DisputeTicket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("support_tickets").
		Columns("reservation_id", "reporter_id", "category", "description", "status", "previous_status").
		Values(t.ReservationID, t.ReporterID, t.Category, t.Description, t.Status, t.PreviousStatus).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt); err != nil {
		if psqlbuilder.IsUniqueViolation(err) {
			return nil, ErrOpenTicketExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return t, nil
}

// GetByID получает тикет по ID (FOR UPDATE внутри транзакции)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DisputeTicket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(ticketColumns...).From("support_tickets").Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	t, err := scanTicket(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %w", ErrScanRow, err)
	}

	return t, nil
}

// List возвращает тикеты, опционально по статусу, новые первыми
func (r *Repository) List(ctx context.Context, status *domain.TicketStatus) ([]*domain.DisputeTicket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(ticketColumns...).From("support_tickets").OrderBy("created_at DESC")
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

	tickets := make([]*domain.DisputeTicket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan: %w", ErrScanRow, err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}

	return tickets, nil
}

// Close закрывает открытый тикет с решением
func (r *Repository) Close(ctx context.Context, id uuid.UUID, status domain.TicketStatus, notes *string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("support_tickets").
		Set("status", status).
		Set("resolution_notes", notes).
		Set("closed_at", at).
		Where(squirrel.Eq{"id": id, "status": domain.TicketOpen}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStatusMismatch
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTicket(row rowScanner) (*domain.DisputeTicket, error) {
	var t domain.DisputeTicket
	err := row.Scan(
		&t.ID,
		&t.ReservationID,
		&t.ReporterID,
		&t.Category,
		&t.Description,
		&t.Status,
		&t.PreviousStatus,
		&t.ResolutionNotes,
		&t.ClosedAt,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
