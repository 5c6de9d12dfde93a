package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/cookie/internal/cmdtypes"
	"github.com/opmodel/cookie/internal/cmdutil"
	cookieconfig "github.com/opmodel/cookie/internal/config"
	oerrors "github.com/opmodel/cookie/internal/errors"
	"github.com/opmodel/cookie/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new configuration file",
		Long: `Create a new cookie configuration file with default values.

The configuration file is created at ~/.cookie/config.yaml by default.
Use the --config flag or COOKIE_CONFIG to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	expandedPath, err := cookieconfig.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := cookieconfig.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return cmdutil.Failed("config init failed", oerrors.NewValidationError(
			fmt.Sprintf("config file already exists at %s", expandedPath),
			expandedPath,
			"Use --force to overwrite it."))
	}

	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return cmdutil.Failed("config init failed", oerrors.NewFilesystemError("mkdir", dir, err))
	}

	data, err := cookieconfig.DefaultConfig().Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(expandedPath, data, 0o600); err != nil {
		return cmdutil.Failed("config init failed", oerrors.NewFilesystemError("write", expandedPath, err))
	}

	output.Debug("wrote config", "path", expandedPath, "source", cfg.ConfigSource)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+expandedPath))
	return nil
}
