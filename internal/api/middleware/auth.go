package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/LimoB/clinic-booking-service/internal/api/handlers"
	"github.com/LimoB/clinic-booking-service/internal/domain"
)

type contextKey string

const actorKey contextKey = "actor"

const (
	// HeaderUserID заголовок с идентификатором вызывающего
	HeaderUserID = "X-User-ID"
	// HeaderUserRole заголовок с ролью вызывающего
	HeaderUserRole = "X-User-Role"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
	msgInvalidRole   = "некорректный заголовок X-User-Role"
)

// Auth извлекает вызывающего из заголовков X-User-ID и X-User-Role
// и кладёт domain.Actor в контекст запроса.
// Аутентификацию выполняет API gateway, сервис доверяет заголовкам
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get(HeaderUserID)
		if idStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		// Роль по умолчанию - пациент
		role := domain.RolePatient
		if roleStr := r.Header.Get(HeaderUserRole); roleStr != "" {
			role = domain.Role(roleStr)
			if !domain.IsValidRole(role) {
				handlers.RespondUnauthorized(w, msgInvalidRole)
				return
			}
		}

		actor := domain.Actor{ID: id, Role: role}
		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor возвращает вызывающего из контекста запроса
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}
