package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором клиента
// Идентификатор — непрозрачная строка, проверка подлинности вне зоны
// ответственности сервиса (ожидается доверенный gateway)
const HeaderUserID = "X-User-ID"

const msgMissingUserID = "отсутствует заголовок X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth middleware аутентификации: требует заголовок X-User-ID
// и кладет его значение в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает идентификатор клиента из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
