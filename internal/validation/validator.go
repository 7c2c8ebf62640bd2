package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator checks request DTOs against the search rules. It satisfies
// echo.Validator, so c.Validate and the services share one rule set.
type Validator struct {
	validate *validator.Validate
}

// Struct validates a request DTO
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Validate is Struct under the name echo expects
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

var (
	shared     *Validator
	sharedOnce sync.Once
)

// GetValidator returns the process-wide validator
func GetValidator() *Validator {
	sharedOnce.Do(func() { shared = NewValidator() })
	return shared
}

var idTextPattern = regexp.MustCompile(`^\s*-?\d+\s*$`)

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("id_text", validateIDText)
	_ = v.RegisterValidation("transaction_status", validateTransactionStatus)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateNotBlank rejects strings made only of whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateIDText accepts blank text or a whole number, -1 included
func validateIDText(fl validator.FieldLevel) bool {
	text := fl.Field().String()
	if strings.TrimSpace(text) == "" {
		return true
	}
	return idTextPattern.MatchString(text)
}

// validateTransactionStatus accepts the register status codes or blank
func validateTransactionStatus(fl validator.FieldLevel) bool {
	switch strings.TrimSpace(fl.Field().String()) {
	case "", "N", "R", "V", "F", "D":
		return true
	}
	return false
}
