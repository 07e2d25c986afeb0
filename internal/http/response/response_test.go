package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOKWithData(t *testing.T) {
	resp := StatusOKWithData(map[string]any{"session_id": 7})
	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("session not found")
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "session not found", resp.Error)
}

func TestValidationError(t *testing.T) {
	type req struct {
		Date      string `validate:"required,datetime=2006-01-02"`
		HostEmail string `validate:"required,email"`
		Duration  int    `validate:"required,gt=0"`
	}

	v := validator.New()
	err := v.Struct(req{Date: "05-06-2025", HostEmail: "not-an-email", Duration: 0})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Date can contain only date in format 2006-01-02")
	assert.Contains(t, resp.Error, "field HostEmail must be a valid email")
	assert.Contains(t, resp.Error, "field Duration is a required field")
}
