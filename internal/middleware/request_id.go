package middleware

import (
	"net/http"
	"userhub/internal/reqctx"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID кладёт идентификатор запроса в контекст и ответ.
// Клиентский заголовок уважаем, чтобы трассировка сквозила через фронт.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, rid)
		next.ServeHTTP(w, r.WithContext(reqctx.WithRequestID(r.Context(), rid)))
	})
}
