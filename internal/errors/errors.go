// Package errors provides sentinel errors for the gostrap CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidInput indicates a bad project name or module path.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFilesystem indicates a directory or file operation failed.
	ErrFilesystem = errors.New("filesystem error")

	// ErrExternalTool indicates a best-effort bootstrap command failed.
	ErrExternalTool = errors.New("external tool error")
)

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInvalidInputError creates an invalid input error with details.
func NewInvalidInputError(message, hint string) error {
	return &DetailError{
		Type:    "invalid input",
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidInput,
	}
}

// NewFilesystemError creates a filesystem error with details.
func NewFilesystemError(message, location, hint string) error {
	return &DetailError{
		Type:     "filesystem operation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrFilesystem,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
