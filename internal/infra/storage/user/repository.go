package user

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

var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"full_name",
	"role",
	"is_verified",
	"dni_photo_url",
	"selfie_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя. Занятый email возвращает ErrEmailTaken
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("email", "password_hash", "full_name", "role", "is_verified").
		Values(u.Email, u.PasswordHash, u.FullName, u.Role, u.IsVerified).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if psqlbuilder.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return u, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": email})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(userColumns...).From("users").Where(where)
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Role,
		&u.IsVerified,
		&u.DNIPhotoURL,
		&u.SelfieURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %s - scan: %w", ErrScanRow, op, err)
	}

	return &u, nil
}

// UpdateKYC сохраняет ссылки на документы пользователя
func (r *Repository) UpdateKYC(ctx context.Context, id uuid.UUID, dniPhotoURL, selfieURL string) error {
	return r.update(ctx, "UpdateKYC", id, map[string]interface{}{
		"dni_photo_url": dniPhotoURL,
		"selfie_url":    selfieURL,
	})
}

// SetVerified помечает пользователя как прошедшего проверку
func (r *Repository) SetVerified(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, "SetVerified", id, map[string]interface{}{
		"is_verified": true,
	})
}

func (r *Repository) update(ctx context.Context, op string, id uuid.UUID, values map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		SetMap(values).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %w", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
