// internal/reqctx/reqctx.go
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keySession
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keySession, id)
}

func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keySession).(string)
	return v, ok
}
