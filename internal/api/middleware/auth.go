package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/auth"
)

const (
	msgMissingToken = "требуется токен авторизации"
	msgInvalidToken = "недействительный токен"
	msgNotVerified  = "аккаунт не прошел верификацию"
	msgAdminOnly    = "доступно только администратору"

	bearerPrefix = "Bearer "
)

// TokenParser проверяет bearer токен
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// ActorLoader загружает роль и статус верификации пользователя
type ActorLoader interface {
	Actor(ctx context.Context, userID uuid.UUID) (*auth.Actor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Authorization: Bearer <jwt> и кладет actor в контекст запроса
func Auth(tokens TokenParser, actors ActorLoader, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			userID, err := tokens.Parse(strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				logger.Warn("Auth: %s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			actor, err := actors.Actor(r.Context(), userID)
			if err != nil {
				// токен пользователя, которого больше нет, тоже 401
				if handlers.StatusFor(err) == http.StatusNotFound {
					logger.Warn("Auth: token of unknown user=%s", userID)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("Auth: failed to load user=%s: %v", userID, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}

// RequireVerified пропускает только пользователей, прошедших KYC
func RequireVerified(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}
		// администратор проверяет чужие документы, сам KYC не проходит
		if !actor.Verified && !actor.IsAdmin() {
			handlers.RespondForbidden(w, msgNotVerified)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin пропускает только администраторов
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}
		if !actor.IsAdmin() {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetActor возвращает actor, положенный Auth
func GetActor(ctx context.Context) (*auth.Actor, bool) {
	return auth.ActorFromContext(ctx)
}
