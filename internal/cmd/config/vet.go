package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/cookie/internal/cmdtypes"
	"github.com/opmodel/cookie/internal/cmdutil"
	cookieconfig "github.com/opmodel/cookie/internal/config"
	oerrors "github.com/opmodel/cookie/internal/errors"
	"github.com/opmodel/cookie/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the cookie configuration file against the built-in schema.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Only known fields are set, with the right types
  4. defaults.feature names a known feature

The config path is resolved using precedence:
  --config flag > COOKIE_CONFIG env > ~/.cookie/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	expandedPath, err := cookieconfig.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	output.Debug("validating config", "path", expandedPath, "source", cfg.ConfigSource)

	validator, err := cookieconfig.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(expandedPath); err != nil {
		var validationErrs cookieconfig.ValidationErrors
		if errors.As(err, &validationErrs) {
			output.Error("config validation failed", "file", expandedPath)
			for _, e := range validationErrs {
				output.Error("  "+e.Field, "reason", e.Message)
			}
			return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
		}
		return cmdutil.Failed("config vet failed", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+expandedPath))
	return nil
}
