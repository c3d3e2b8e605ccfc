package middleware

import (
	"context"
	"net/http"
	"userhub/internal/logger"
	"userhub/internal/models"
	"userhub/internal/reqctx"

	"go.uber.org/zap"
)

// SessionCookie — имя cookie с идентификатором сессии.
// Сам идентификатор непрозрачный, всё состояние на сервере.
const SessionCookie = "userhub_session"

type sessionLoader interface {
	Load(ctx context.Context, sessionID string) (*models.Session, error)
}

// SessionAuth пускает дальше только запросы с живой сессией.
// Протухшая cookie и отсутствующая cookie отклоняются одинаково.
func SessionAuth(sessions sessionLoader, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			logger.WithCtx(r.Context()).Warn("SessionAuth: отсутствует cookie сессии")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		session, err := sessions.Load(r.Context(), cookie.Value)
		if err != nil {
			logger.WithCtx(r.Context()).Warn("SessionAuth: сессия не найдена или истекла", zap.Error(err))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := WithSession(r.Context(), session)
		ctx = reqctx.WithSessionID(ctx, session.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
