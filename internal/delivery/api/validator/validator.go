// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request DTOs.
type RequestValidator struct {
	validate *validator.Validate
}

// Violation is one field that broke one rule.
type Violation struct {
	Field string // json name of the field
	Rule  string // validate tag that failed, e.g. "required"
}

// New creates a RequestValidator that reports fields by their json names.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Violations lists every broken rule in struct field order.
// It returns nil when err is not a validator error.
func Violations(err error) []Violation {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	violations := make([]Violation, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, Violation{Field: fieldErr.Field(), Rule: fieldErr.Tag()})
	}

	return violations
}
