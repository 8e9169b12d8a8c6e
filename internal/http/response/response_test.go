package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	resp := OKWithData(map[string]any{"id": "uid-1"})
	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("invalid credentials")
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "invalid credentials", resp.Error)
}

func TestValidationError(t *testing.T) {
	type req struct {
		Email    string  `validate:"required,email"`
		Password string  `validate:"required,min=6"`
		Amount   float64 `validate:"gt=0"`
		Cadence  string  `validate:"oneof=semanal mensual"`
	}

	err := validator.New().Struct(req{Email: "not-an-email", Password: "abc", Cadence: "diaria"})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Email must be a valid email")
	assert.Contains(t, resp.Error, "field Password is too short")
	assert.Contains(t, resp.Error, "field Amount must be greater than 0")
	assert.Contains(t, resp.Error, "field Cadence must be one of: semanal mensual")
}
