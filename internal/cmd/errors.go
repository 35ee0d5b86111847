package cmd

import (
	"errors"

	oerrors "github.com/gostrap/cli/internal/errors"
)

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, oerrors.ErrFilesystem):
		return ExitFilesystemError
	default:
		return ExitGeneralError
	}
}
