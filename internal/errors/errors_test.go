package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailError_Error(t *testing.T) {
	err := &DetailError{
		Type:     "destination conflict",
		Message:  "directory /tmp/out/mylib already exists and is not empty",
		Location: "/tmp/out/mylib",
		Hint:     "Choose a different name or remove the existing directory.",
		Cause:    ErrDestinationConflict,
	}

	msg := err.Error()
	assert.Contains(t, msg, "Error: destination conflict")
	assert.Contains(t, msg, "Location: /tmp/out/mylib")
	assert.Contains(t, msg, "already exists and is not empty")
	assert.Contains(t, msg, "Hint: Choose a different name")
}

func TestDetailError_Unwrap(t *testing.T) {
	err := NewDestinationConflictError("root is not empty", "/tmp/x", "")
	assert.True(t, errors.Is(err, ErrDestinationConflict))
	assert.False(t, errors.Is(err, ErrPermission))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid input", NewInvalidInputError("name is empty", ""), ErrInvalidInput},
		{"conflict", NewDestinationConflictError("not empty", "/x", ""), ErrDestinationConflict},
		{"permission", NewPermissionError("cannot write", "/x"), ErrPermission},
		{"invalid name", NewInvalidNameError("bad name", ""), ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrIO, "writing src/mylib/Metadata.luau")
	assert.True(t, errors.Is(err, ErrIO))
	assert.Contains(t, err.Error(), "writing src/mylib/Metadata.luau")
}

func TestExitError(t *testing.T) {
	inner := NewPermissionError("cannot write", "/x")
	err := NewExitError(inner, 4)

	assert.Equal(t, 4, err.Code)
	assert.Equal(t, inner.Error(), err.Error())
	assert.True(t, errors.Is(err, ErrPermission))

	var exitErr *ExitError
	assert.True(t, errors.As(error(err), &exitErr))
}
