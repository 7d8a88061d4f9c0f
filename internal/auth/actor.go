package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Actor аутентифицированный пользователь текущего запроса
type Actor struct {
	ID       uuid.UUID
	Role     domain.Role
	Verified bool
}

// IsAdmin returns true for operators
func (a *Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}

type actorKey struct{}

// WithActor кладет actor в контекст
func WithActor(ctx context.Context, a *Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext извлекает actor из контекста
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(*Actor)
	return a, ok && a != nil
}
