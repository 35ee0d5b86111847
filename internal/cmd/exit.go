// Package cmd provides CLI command implementations.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidInput indicates a bad project name, module path, or template.
	ExitInvalidInput = 2

	// ExitFilesystemError indicates a directory or file operation failed.
	ExitFilesystemError = 3
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitInvalidInput:
		return "Invalid Input"
	case ExitFilesystemError:
		return "Filesystem Error"
	default:
		return "Unknown"
	}
}
