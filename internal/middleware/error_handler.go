package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"mmex-search/internal/errors"
	"mmex-search/internal/handlers"
	"mmex-search/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// codes for errors raised by echo itself (routing, binding, body limit)
var echoStatusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:      errors.ValidationInvalidFormat,
	http.StatusRequestEntityTooLarge: errors.ValidationOutOfRange,
	http.StatusUnsupportedMediaType:  errors.ValidationInvalidFormat,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// NewHTTPErrorHandler renders every error that reaches echo as the standard
// error envelope. 5xx answers are logged at error level, the rest at warn.
// A nil logger uses slog.Default().
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		resp, status := errorEnvelope(err, traceID)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request().Context(), level, "request failed",
			"trace_id", traceID,
			"error_code", resp.Error.Code,
			"status", status,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)
		apiErrorsTotal.WithLabelValues(resp.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

		if sendErr := c.JSON(status, resp); sendErr != nil {
			logger.Error("failed to send error response", "trace_id", traceID, "error", sendErr.Error())
		}
	}
}

func errorEnvelope(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		code, ok := echoStatusCodes[echoErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		return errors.NewErrorResponse(code, traceID, errors.WithMessage(fmt.Sprint(echoErr.Message))), echoErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return errors.NewValidationError(validation.FieldErrors(validationErrs), traceID), http.StatusBadRequest
	}

	resp := handlers.ServiceErrorResponse(err, traceID)
	return resp, resp.GetHTTPStatus()
}
