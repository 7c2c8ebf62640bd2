package search

import (
	"errors"
	"fmt"
)

// ErrInvalidCriteria is matched by every error caused by a criteria value
// that cannot be interpreted.
var ErrInvalidCriteria = errors.New("invalid search criteria")

// InvalidCriteriaError names the offending field and value.
type InvalidCriteriaError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidCriteriaError) Error() string {
	return fmt.Sprintf("invalid search criteria: %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidCriteria.
func (e *InvalidCriteriaError) Unwrap() error {
	return ErrInvalidCriteria
}

func invalidCriteria(field, value, reason string) error {
	return &InvalidCriteriaError{Field: field, Value: value, Reason: reason}
}
