// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "postboard/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError describes a single rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError carries field-level details of a rejected request.
// It matches ErrValidationFailed under errors.Is.
type ValidationError struct {
	*domainerrors.BaseError
	Fields []FieldError
}

func (e *ValidationError) Unwrap() error {
	return e.BaseError
}

// EchoValidator validates bound request structs using `validate` tags.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json name.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form", "param", "query"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	return &EchoValidator{validate: v}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}

	return errors.WithStack(&ValidationError{BaseError: domainerrors.ErrValidationFailed, Fields: fields})
}
