package middleware

import (
	"context"
	"userhub/internal/models"
)

type ctxKey string

const ContextSession ctxKey = "session"

func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, ContextSession, s)
}

func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(ContextSession).(*models.Session)
	return s, ok
}
