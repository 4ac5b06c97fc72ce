// Package context carries per-request state between echo handlers, the profile
// gate and the usecases: the request id, a logger tagged with it, and the
// caller's identity and session snapshot.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values stored by this package.
type ContextKey string

const (
	// KeyRequestID holds the id that follows a request into fan-out events and push logs.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger holds the logger tagged with the request id.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is echoed back to clients and accepted from trusted callers.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the request id set by the middleware. Handlers mounted
// without it still get a fresh id so envelopes always carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// WithRequestScope binds the request id and a logger tagged with it to ctx.
// Both the API middleware and the push worker enter a request through here.
func WithRequestScope(ctx context.Context, requestID string, base *slog.Logger) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	ctx = context.WithValue(ctx, KeyRequestID, requestID)
	ctx = context.WithValue(ctx, KeyLogger, logger)

	return ctx, logger
}

// GetRequestIDFromContext returns the request id, or "" outside a request
// (for example in the broadcast watcher).
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// GetLoggerOrDefault returns the request logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
