// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/opmodel/cookie/internal/config"
	oerrors "github.com/opmodel/cookie/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file with defaults applied.
	// Never nil after PersistentPreRunE.
	Config *config.Config

	// ConfigPath is the resolved config file path.
	ConfigPath string

	// ConfigSource tells where ConfigPath came from.
	ConfigSource config.ConfigSource

	// Verbose mirrors --verbose.
	Verbose bool
}

// Exit codes re-exported from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
