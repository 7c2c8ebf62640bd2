package handlers

import (
	stderrors "errors"
	"net/http"

	"mmex-search/internal/errors"
	"mmex-search/internal/repositories"
	"mmex-search/internal/search"
	"mmex-search/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handlers answer client errors with SendError and hide internal failures
// behind SendSystemError. Validation errors are returned as-is so the echo
// error handler can list the offending fields.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
// Used for successful API responses with data, messages, and metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// domainCodes maps service and repository sentinels onto API codes. Checked
// in order with errors.Is.
var domainCodes = []struct {
	target error
	code   errors.ErrorCode
}{
	{search.ErrInvalidCriteria, errors.SearchInvalidCriteria},
	{repositories.ErrSavedSearchNotFound, errors.SearchSavedNotFound},
	{repositories.ErrSavedSearchNameExists, errors.SearchSavedNameExists},
	{repositories.ErrAccountNotFound, errors.SearchAccountNotFound},
	{repositories.ErrTransactionNotFound, errors.SearchTransactionNotFound},
	{repositories.ErrPayeeNotFound, errors.SearchPayeeNotFound},
	{repositories.ErrCategoryNotFound, errors.SearchCategoryNotFound},
	{repositories.ErrSubcategoryNotFound, errors.SearchCategoryNotFound},
	{services.ErrRegisterUnavailable, errors.SystemServiceUnavailable},
}

// ServiceErrorResponse builds the API error for a failure returned by a
// service. Anything unrecognised becomes SYSTEM_001.
func ServiceErrorResponse(err error, traceID string) *errors.ErrorResponse {
	var invalid *search.InvalidCriteriaError
	if stderrors.As(err, &invalid) {
		return errors.NewInvalidCriteriaError(invalid.Field, invalid.Value, invalid.Reason, traceID)
	}
	for _, dc := range domainCodes {
		if stderrors.Is(err, dc.target) {
			return errors.NewErrorResponse(dc.code, traceID)
		}
	}
	resp, _ := errors.WrapSystemError(err, traceID)
	return resp
}

// sendServiceError answers a service failure with the matching API error.
// Validator failures go back to echo so the error handler lists the fields.
func sendServiceError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return err
	}
	resp := ServiceErrorResponse(err, getTraceID(c))
	return c.JSON(resp.GetHTTPStatus(), resp)
}
