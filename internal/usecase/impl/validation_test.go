package impl

import (
	"testing"

	"academy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput_ReportsJSONFieldNames(t *testing.T) {
	err := validateInput(&usecase.CreateContactMessageInput{Name: "Pat", Email: "not-an-email"})

	appErr := requireAppError(t, err, 400, "VALIDATION_FAILED")
	assert.Equal(t, "email: email; message: required", appErr.Details())
}

func TestValidateInput_NilPointersAreSkipped(t *testing.T) {
	require.NoError(t, validateInput(&usecase.UpdateCoachInput{}))

	bad := "nope"
	err := validateInput(&usecase.UpdateCoachInput{Email: &bad})
	requireAppError(t, err, 400, "VALIDATION_FAILED")

	empty := ""
	require.NoError(t, validateInput(&usecase.UpdateCoachInput{Email: &empty}))
}
