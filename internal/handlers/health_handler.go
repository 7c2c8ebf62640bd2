package handlers

import (
	"context"
	"net/http"
	"time"

	"mmex-search/internal/errors"
	"mmex-search/internal/services"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether the database answers
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// RegisterBreaker exposes the state of the breaker guarding register queries
type RegisterBreaker interface {
	State() services.BreakerState
}

// HealthResponse is the /health body
type HealthResponse struct {
	Status     string            `json:"status"`
	Time       string            `json:"time"`
	Components map[string]string `json:"components"`
}

type HealthCheckHandler struct {
	db       HealthChecker
	register RegisterBreaker
}

// NewHealthCheckHandler builds the health endpoint. register may be nil.
func NewHealthCheckHandler(db HealthChecker, register RegisterBreaker) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, register: register}
}

// HealthCheck reports database reachability and the register breaker.
// An open breaker degrades the service without failing the health check, since
// the pickers and saved searches still work.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - database unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	resp := HealthResponse{
		Status:     "healthy",
		Time:       time.Now().UTC().Format(time.RFC3339),
		Components: map[string]string{"database": "up"},
	}
	if h.register != nil {
		state := h.register.State()
		resp.Components["register"] = state.String()
		if state == services.StateOpen {
			resp.Status = "degraded"
		}
	}
	return c.JSON(http.StatusOK, resp)
}
