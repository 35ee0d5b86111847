package scaffold

import (
	"fmt"
	"strings"
	"unicode"

	oerrors "github.com/gostrap/cli/internal/errors"
)

// ValidateProjectName checks if a project name is safe to use as a directory
// name. Names must start with a letter and contain only letters, digits,
// hyphens, underscores, and dots; path separators and traversal are rejected.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty: %w", oerrors.ErrInvalidInput)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("invalid project name %q: %w", name, oerrors.ErrInvalidInput)
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != '.' {
			return fmt.Errorf("invalid project name %q: contains invalid character %q: %w", name, r, oerrors.ErrInvalidInput)
		}
	}

	if !unicode.IsLetter(rune(name[0])) {
		return fmt.Errorf("invalid project name %q: must start with a letter: %w", name, oerrors.ErrInvalidInput)
	}

	return nil
}

// ValidateModulePath checks if a module path is usable verbatim in generated
// import strings.
func ValidateModulePath(path string) error {
	if path == "" {
		return fmt.Errorf("module path cannot be empty: %w", oerrors.ErrInvalidInput)
	}

	if strings.ContainsAny(path, " \t\n\\\"'") {
		return fmt.Errorf("invalid module path %q: contains whitespace or quote characters: %w", path, oerrors.ErrInvalidInput)
	}

	if strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return fmt.Errorf("invalid module path %q: must not start or end with a slash: %w", path, oerrors.ErrInvalidInput)
	}

	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			return fmt.Errorf("invalid module path %q: empty path segment: %w", path, oerrors.ErrInvalidInput)
		}
		if seg == "." || seg == ".." {
			return fmt.Errorf("invalid module path %q: relative path segment: %w", path, oerrors.ErrInvalidInput)
		}
	}

	return nil
}

// ValidateRequest validates both request fields before any filesystem mutation.
func ValidateRequest(req Request) error {
	if err := ValidateProjectName(req.ProjectName); err != nil {
		return err
	}
	return ValidateModulePath(req.ModulePath)
}

// DeriveModulePath derives a module path from a project name. With a
// non-empty prefix the result is "<prefix>/<name>"; otherwise
// "example.com/<name>".
func DeriveModulePath(prefix, name string) string {
	if prefix != "" {
		return strings.TrimSuffix(prefix, "/") + "/" + name
	}
	return fmt.Sprintf("example.com/%s", name)
}
