//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrFilesystem, ErrPermission)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "unknown feature: grpc",
		Location: "/tmp/my-project",
		Context:  map[string]string{"Feature": "grpc"},
		Hint:     "Valid features: none, http, pubsub",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /tmp/my-project")
	assert.Contains(t, output, "Feature: grpc")
	assert.Contains(t, output, "unknown feature: grpc")
	assert.Contains(t, output, "Hint: Valid features: none, http, pubsub")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad name", "my project", "Use letters, digits, '-' or '_'")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "bad name", detail.Message)
	assert.Equal(t, "my project", detail.Location)
}

func TestFilesystemError(t *testing.T) {
	t.Run("matches ErrFilesystem", func(t *testing.T) {
		err := NewFilesystemError("copy", "/tmp/x", errors.New("disk full"))
		assert.True(t, errors.Is(err, ErrFilesystem))
		assert.False(t, errors.Is(err, ErrPermission))
		assert.Equal(t, "copy /tmp/x: disk full", err.Error())
	})

	t.Run("permission cause matches ErrPermission", func(t *testing.T) {
		err := NewFilesystemError("remove", "/tmp/x", fs.ErrPermission)
		assert.True(t, errors.Is(err, ErrPermission))
		assert.True(t, errors.Is(err, fs.ErrPermission))
	})

	t.Run("nil cause yields nil", func(t *testing.T) {
		assert.NoError(t, NewFilesystemError("copy", "/tmp/x", nil))
	})
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation error", ErrValidation, ExitValidationError},
		{"wrapped validation error", fmt.Errorf("bad feature: %w", ErrValidation), ExitValidationError},
		{"permission error", ErrPermission, ExitPermissionDenied},
		{"filesystem permission error", NewFilesystemError("mkdir", "/x", fs.ErrPermission), ExitPermissionDenied},
		{"filesystem error", NewFilesystemError("copy", "/x", errors.New("boom")), ExitGeneralError},
		{"not found error", ErrNotFound, ExitNotFound},
		{"explicit exit error", NewExitError(errors.New("x"), ExitNotFound), ExitNotFound},
		{"wrapped exit error", fmt.Errorf("outer: %w", NewExitError(errors.New("x"), ExitValidationError)), ExitValidationError},
		{"unknown error returns general error", errors.New("unknown error"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestWithExitCode(t *testing.T) {
	assert.NoError(t, WithExitCode(nil))

	err := WithExitCode(fmt.Errorf("project: %w", ErrNotFound))
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitNotFound, exitErr.Code)

	original := NewExitError(errors.New("x"), ExitValidationError)
	assert.Same(t, original, WithExitCode(original))
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
