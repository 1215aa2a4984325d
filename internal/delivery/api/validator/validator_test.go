package validator

import (
	"testing"

	domainerrors "academy/internal/domain/errors"
	"academy/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBody struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"omitempty,oneof=admin super_admin"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	require.NoError(t, cv.Validate(&loginBody{Username: "root"}))

	err := cv.Validate(&loginBody{Email: "nope", Role: "owner"})
	require.Error(t, err)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "username: required; email: email; role: oneof=admin super_admin", appErr.Details())
}
