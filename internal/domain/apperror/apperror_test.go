package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: Validation("First name is required"), want: KindValidation},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", NotFound(CodeUserNotFound, "User not found")), want: KindNotFound},
		{name: "foreign error", err: errors.New("connection refused"), want: KindInternal},
		{name: "internal", err: Internal("Failed to delete user", nil), want: KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("bcrypt: cost out of range")
	err := Internal("hash password", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "hash password: bcrypt: cost out of range", err.Error())
}

func TestIs(t *testing.T) {
	err := Unauthorized(CodeInvalidCredentials, "Invalid email or password")

	assert.True(t, Is(err, KindUnauthorized, "Invalid email or password"))
	assert.False(t, Is(err, KindUnauthorized, "User not found"))
	assert.False(t, Is(errors.New("Invalid email or password"), KindUnauthorized, "Invalid email or password"))
}
