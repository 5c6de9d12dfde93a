// Package errors provides sentinel errors, structured error details and exit
// codes for the cookie CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input (feature, project name, config).
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a project, file or config was not found.
	ErrNotFound = errors.New("not found")

	// ErrFilesystem indicates a filesystem operation failed during generation.
	ErrFilesystem = errors.New("filesystem error")
)

// DetailError captures structured, user-facing error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

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
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
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

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// FilesystemError records a failed filesystem operation on a path.
// It matches ErrFilesystem, and ErrPermission when the cause is a permission error.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFilesystem, or ErrPermission for permission failures.
func (e *FilesystemError) Is(target error) bool {
	switch target {
	case ErrFilesystem:
		return true
	case ErrPermission:
		return errors.Is(e.Err, fs.ErrPermission)
	default:
		return false
	}
}

// NewFilesystemError wraps err as a FilesystemError. A nil err yields nil.
func NewFilesystemError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &FilesystemError{Op: op, Path: path, Err: err}
}
