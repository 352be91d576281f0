package validator

import (
	"testing"

	domainerrors "paygate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Username: "u1", Email: "u1@x.com"}))

	err := v.Validate(&sample{Email: "not-an-email"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "username: This field is required")
	assert.Contains(t, appErr.Details(), "email: Invalid email format")
}
