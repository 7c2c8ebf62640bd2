package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Search error codes (SEARCH_*)
const (
	SearchInvalidCriteria     ErrorCode = "SEARCH_001"
	SearchSavedNotFound       ErrorCode = "SEARCH_002"
	SearchSavedNameExists     ErrorCode = "SEARCH_003"
	SearchAccountNotFound     ErrorCode = "SEARCH_004"
	SearchTransactionNotFound ErrorCode = "SEARCH_005"
	SearchPayeeNotFound       ErrorCode = "SEARCH_006"
	SearchCategoryNotFound    ErrorCode = "SEARCH_007"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Search errors
	SearchInvalidCriteria:     "Search criteria could not be interpreted",
	SearchSavedNotFound:       "Saved search not found",
	SearchSavedNameExists:     "A saved search with this name already exists",
	SearchAccountNotFound:     "Account not found",
	SearchTransactionNotFound: "Transaction not found",
	SearchPayeeNotFound:       "Payee not found",
	SearchCategoryNotFound:    "Category or subcategory not found",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
