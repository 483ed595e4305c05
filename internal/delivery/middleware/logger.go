package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"sportera/config"
	deliverycontext "sportera/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes the access log. Every request is logged in debug mode;
// otherwise only server errors are.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			// Rendered here so the logged status matches the response.
			c.Error(err)
			m.log(c, time.Since(start), err)

			return nil
		}

		m.log(c, time.Since(start), nil)

		return nil
	}
}

// log never records headers or bodies; they may carry tokens and passwords.
func (m *LoggerMiddleware) log(c echo.Context, latency time.Duration, err error) {
	status := c.Response().Status
	level := levelForStatus(status)
	if !m.debug && level < slog.LevelError {
		return
	}

	req := c.Request()
	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Int64("bytes_out", c.Response().Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP request", attrs...)
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
