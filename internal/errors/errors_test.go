package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailError_Error(t *testing.T) {
	err := &DetailError{
		Type:     "invalid input",
		Message:  "project name cannot be empty",
		Location: "billing-svc",
		Hint:     "Pass a project name as the first argument.",
		Cause:    ErrInvalidInput,
	}

	msg := err.Error()
	assert.Contains(t, msg, "Error: invalid input")
	assert.Contains(t, msg, "Location: billing-svc")
	assert.Contains(t, msg, "project name cannot be empty")
	assert.Contains(t, msg, "Hint: Pass a project name")
}

func TestDetailError_Unwrap(t *testing.T) {
	err := NewInvalidInputError("module path cannot be empty", "")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrFilesystem))
}

func TestNewFilesystemError(t *testing.T) {
	err := NewFilesystemError("target exists and is not a directory", "/tmp/x", "Remove the file or pick another directory.")
	assert.True(t, errors.Is(err, ErrFilesystem))
	assert.Contains(t, err.Error(), "/tmp/x")
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrExternalTool, "git init failed")
	assert.True(t, errors.Is(err, ErrExternalTool))
	assert.Contains(t, err.Error(), "git init failed")
}

func TestExitError(t *testing.T) {
	inner := NewInvalidInputError("bad name", "")
	err := NewExitError(inner, 2)

	assert.Equal(t, inner.Error(), err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var exitErr *ExitError
	assert.True(t, errors.As(error(err), &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}
