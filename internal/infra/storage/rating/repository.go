package rating

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
)

// Repository репозиторий оценок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория оценок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет оценку
func (r *Repository) Create(ctx context.Context, rt *domain.Rating) (*domain.Rating, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("ratings").
		Columns("reservation_id", "author_id", "target_id", "target_type", "score", "comment").
		Values(rt.ReservationID, rt.AuthorID, rt.TargetID, rt.TargetType, rt.Score, rt.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rt.ID, &rt.CreatedAt); err != nil {
		if psqlbuilder.IsUniqueViolation(err) {
			return nil, ErrAlreadyRated
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return rt, nil
}

// ListByTarget возвращает оценки пользователя или гаража, новые первыми
func (r *Repository) ListByTarget(ctx context.Context, targetType domain.RatingTarget, targetID uuid.UUID) ([]domain.Rating, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "reservation_id", "author_id", "target_id", "target_type", "score", "comment", "created_at",
	).
		From("ratings").
		Where(squirrel.Eq{"target_type": targetType, "target_id": targetID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTarget - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTarget - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ratings := make([]domain.Rating, 0)
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(
			&rt.ID, &rt.ReservationID, &rt.AuthorID, &rt.TargetID, &rt.TargetType, &rt.Score, &rt.Comment, &rt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByTarget - scan: %w", ErrScanRow, err)
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTarget - rows iteration: %w", ErrScanRow, err)
	}

	return ratings, nil
}
