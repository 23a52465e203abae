package middleware

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions in context values.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	tenantIDKey  = contextKey("tenantID")
	actorIDKey   = contextKey("actorID")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context,
// falling back to the default logger.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// TenantIDFromCtx returns the resolved tenant ID for the request.
func TenantIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(tenantIDKey).(string)
	return id, ok && id != ""
}

// ActorIDFromCtx returns the resolved actor (user) ID for the request.
func ActorIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorIDKey).(string)
	return id, ok && id != ""
}
