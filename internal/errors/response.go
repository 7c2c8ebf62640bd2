package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, its message and per-field details
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption adjusts a response built by NewErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithField appends a "field: reason" detail line
func WithField(field, reason string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = append(er.Error.Details, field+": "+reason)
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the response for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError lists one "field: message" line per failed field,
// sorted by field name
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	opts := make([]ErrorOption, 0, len(fields))
	for _, field := range fields {
		opts = append(opts, WithField(field, fieldErrors[field]))
	}
	return NewErrorResponse(ValidationGeneral, traceID, opts...)
}

// NewInvalidCriteriaError reports a search criteria field whose text could
// not be interpreted
func NewInvalidCriteriaError(field, value, reason, traceID string) *ErrorResponse {
	return NewErrorResponse(SearchInvalidCriteria, traceID,
		WithField(field, fmt.Sprintf("%s (got %q)", reason, value)))
}

// WrapSystemError hides err behind SYSTEM_001. err is handed back unchanged
// for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidDate:   http.StatusBadRequest,

	SearchInvalidCriteria:     http.StatusBadRequest,
	SearchSavedNotFound:       http.StatusNotFound,
	SearchSavedNameExists:     http.StatusConflict,
	SearchAccountNotFound:     http.StatusNotFound,
	SearchTransactionNotFound: http.StatusNotFound,
	SearchPayeeNotFound:       http.StatusNotFound,
	SearchCategoryNotFound:    http.StatusNotFound,

	SystemServiceUnavailable: http.StatusServiceUnavailable,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemRouteNotFound:      http.StatusNotFound,
}

// GetHTTPStatus maps an error code to its HTTP status. Unlisted codes,
// unknown ones included, are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the HTTP status for the response's code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
