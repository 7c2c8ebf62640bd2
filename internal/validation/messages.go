package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// fixed messages for tags whose wording does not depend on the parameter
var tagMessages = map[string]string{
	"required":           "is required",
	"notblank":           "must not be blank",
	"uuid":               "must be a valid UUID",
	"id_text":            "must be a whole number",
	"transaction_status": "must be one of: N R V F D",
}

// Describe renders a field error the way API clients see it in details
func Describe(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "min", "max":
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be %s %s characters long", bound, fe.Param())
		case reflect.Slice, reflect.Map:
			return fmt.Sprintf("must have %s %s items", bound, fe.Param())
		default:
			return fmt.Sprintf("must be %s %s", bound, fe.Param())
		}
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return fmt.Sprintf("failed validation for '%s'", fe.Tag())
}

// FieldErrors maps each failing JSON field to its message. When a field
// fails several rules the first one reported wins.
func FieldErrors(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = Describe(fe)
		}
	}
	return fields
}
