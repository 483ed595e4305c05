package handler

import (
	"net/http"
	"time"

	"sportera/config"
	"sportera/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Version is reported by the health endpoints; overridden at link time.
var Version = "dev"

// HealthHandler answers liveness probes
type HealthHandler struct {
	serviceName string
	startedAt   time.Time
	now         func() time.Time
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		serviceName: cfg.Env.ServiceName,
		startedAt:   time.Now(),
		now:         time.Now,
	}
}

// Health reports that the process is up and for how long
func (h *HealthHandler) Health(c echo.Context) error {
	now := h.now()

	return response.SuccessWithMessage(c, http.StatusOK, "healthy", map[string]any{
		"status":         "healthy",
		"service":        h.serviceName,
		"version":        Version,
		"timestamp":      now.UTC().Format(time.RFC3339),
		"uptime_seconds": int64(now.Sub(h.startedAt).Seconds()),
	})
}

// Ping answers "pong"
func (h *HealthHandler) Ping(c echo.Context) error {
	return response.SuccessWithMessage(c, http.StatusOK, "pong", map[string]any{
		"service":   h.serviceName,
		"version":   Version,
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}
