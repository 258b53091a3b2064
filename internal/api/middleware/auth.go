package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
)

type contextKey string

const (
	// UserIDHeader заголовок, в котором шлюз передает проверенный ID пользователя
	UserIDHeader = "X-User-ID"

	userIDKey contextKey = "userID"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
)

// Auth извлекает X-User-ID и кладет его в контекст.
// Подлинность пользователя проверяется до сервиса.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
