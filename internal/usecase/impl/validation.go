package impl

import (
	"reflect"
	"strings"
	"sync"

	domainerrors "academy/internal/domain/errors"
	"academy/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	inputValidatorOnce sync.Once
	inputValidator     *validator.Validate
)

// getValidator returns the shared validator. Field names in reports use the json tag.
func getValidator() *validator.Validate {
	inputValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})
		inputValidator = v
	})

	return inputValidator
}

// validateInput checks the struct tags of input and converts failures into
// ErrValidationFailed listing every offending field.
func validateInput(input any) error {
	err := getValidator().Struct(input)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return domainerrors.ErrValidationFailed.WithDetails(describeFieldErrors(validationErrs))
}

func describeFieldErrors(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		part := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, "; ")
}
