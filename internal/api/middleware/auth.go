package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

const (
	// HeaderUserID заголовок с идентификатором пользователя от гейтвея
	HeaderUserID = "X-User-ID"
	// HeaderUserRole заголовок с ролью пользователя от гейтвея
	HeaderUserRole = "X-User-Role"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgInvalidRole  = "некорректная роль пользователя"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "userRole"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет заголовки аутентификации от API-гейтвея
// и кладёт пользователя в контекст запроса
// Сама аутентификация (сессии, токены) - зона ответственности гейтвея
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(HeaderUserID)
			if userID == "" {
				logger.Warn("Auth: missing %s header for %s %s", HeaderUserID, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			if _, err := uuid.Parse(userID); err != nil {
				logger.Warn("Auth: invalid %s header for %s %s", HeaderUserID, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			role := domain.UserRole(r.Header.Get(HeaderUserRole))
			if role == "" {
				role = domain.RolePlayer
			}
			if role != domain.RolePlayer && role != domain.RoleAdmin {
				logger.Warn("Auth: invalid role=%s for user=%s", role, userID)
				handlers.RespondUnauthorized(w, msgInvalidRole)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, roleKey, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext извлекает пользователя из контекста запроса
// Второе значение false, если запрос не прошёл через Auth
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return domain.Actor{}, false
	}

	role, ok := ctx.Value(roleKey).(domain.UserRole)
	if !ok {
		return domain.Actor{}, false
	}

	return domain.Actor{UserID: userID, Role: role}, true
}
