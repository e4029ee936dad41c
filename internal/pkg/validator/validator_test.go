package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/pkg/validator"
)

type sample struct {
	ID    string   `json:"id" validate:"required"`
	Email string   `json:"email" validate:"required,email_shape"`
	Lat   *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
}

func TestValidate_TranslatesFieldErrors(t *testing.T) {
	lat := 120.0
	err := validator.Validate(&sample{Email: "not-an-email", Lat: &lat})
	require.Error(t, err)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Details, "id")
	assert.Contains(t, appErr.Details, "email")
	assert.Contains(t, appErr.Details, "latitude")
	assert.Contains(t, appErr.Message, "email must be a valid email address")
}

func TestValidate_OK(t *testing.T) {
	lat := 13.5
	assert.NoError(t, validator.Validate(&sample{ID: "C1", Email: "ops@port.co", Lat: &lat}))
}

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"ops@port.co":      true,
		"a.b+c@sub.d.e":    true,
		"not-an-email":     false,
		"two@@signs.com":   false,
		"space in@mail.co": false,
		"nodot@domain":     false,
	}
	for email, want := range cases {
		assert.Equal(t, want, validator.IsEmail(email), email)
	}
}
