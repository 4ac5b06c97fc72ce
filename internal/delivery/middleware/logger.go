package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/forcollegesake07/food-bridge/config"
	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
)

// quietPaths are polled by probes and scrapers and never logged on success.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// LoggerMiddleware logs every request in debug mode and server errors always.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not rendered yet; report what it will send.
			status = statusOf(err, status)
		}
		if m.shouldLog(c.Request().URL.Path, status) {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) shouldLog(path string, status int) bool {
	if status >= 500 {
		return true
	}
	if !m.debug {
		return false
	}
	_, quiet := quietPaths[path]

	return !quiet || status >= 400
}

func statusOf(err error, fallback int) int {
	type httpCoder interface{ HTTPCode() int }
	if coded, ok := err.(httpCoder); ok {
		return coded.HTTPCode()
	}
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	if fallback < 400 {
		return 500
	}

	return fallback
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()
	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if user, ok := deliverycontext.GetAuthUser(c); ok {
		fields = append(fields, slog.String("uid", user.UID))
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
