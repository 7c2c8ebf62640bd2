package middleware

import (
	"regexp"

	"mmex-search/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID in both directions
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key holding the trace ID
	TraceIDContextKey = "trace_id"
)

// Inbound trace IDs end up in logs and error bodies, so only short opaque
// tokens are accepted.
var validTraceID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// RequestID assigns every request a trace ID. A well-formed X-Trace-ID from
// the caller is kept, anything else is replaced with a new UUID. The ID is
// echoed in the response header and stored on both the echo context and the
// request context read by the search loggers.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if !validTraceID.MatchString(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.ContextWithRequestID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID RequestID stored, or ""
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
