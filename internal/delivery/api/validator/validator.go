// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "academy/internal/domain/errors"
	"academy/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request bodies.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator that reports fields by their json name.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Failures become VALIDATION_FAILED listing each field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[playground.ValidationErrors](err)
	if !ok {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		part := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		parts = append(parts, part)
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(parts, "; "))
}
