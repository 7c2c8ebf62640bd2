package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"mmex-search/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsRecoveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_panics_recovered_total",
		Help: "Total number of handler panics recovered by endpoint",
	},
	[]string{"endpoint"},
)

// PanicRecovery recovers handler panics, logs them with the stack and answers
// SYSTEM_001. A nil logger uses slog.Default().
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				logger.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)
				panicsRecoveredTotal.WithLabelValues(c.Path()).Inc()

				if c.Response().Committed {
					return
				}

				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if sendErr := c.JSON(http.StatusInternalServerError, errorResponse); sendErr != nil {
					logger.Error("Failed to send panic recovery response",
						"trace_id", traceID,
						"error", sendErr.Error(),
					)
				}
				err = nil
			}()

			return next(c)
		}
	}
}
