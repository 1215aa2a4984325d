package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"academy/internal/delivery/api/response"
	deliverycontext "academy/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Check answers 200 while the database responds and 503 otherwise.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database is unreachable", "")
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Service is healthy", map[string]string{"status": "ok"})
}
