// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/cookie/internal/cmd/config"
	"github.com/opmodel/cookie/internal/cmdtypes"
	cookieconfig "github.com/opmodel/cookie/internal/config"
	"github.com/opmodel/cookie/internal/output"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the cookie CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "cookie",
		Short: "Generate Go projects from a template",
		Long: `cookie generates Go projects from an embedded template and merges optional
feature fragments (http, pubsub) into the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: COOKIE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd(cfg))
	rootCmd.AddCommand(NewHookCmd(cfg))
	rootCmd.AddCommand(NewFeaturesCmd(cfg))
	rootCmd.AddCommand(config.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration into cfg.
func initializeGlobals(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, flags rootFlags) error {
	pathValue, err := cookieconfig.ResolveConfigPath(cookieconfig.ResolveConfigPathOptions{
		FlagValue: flags.config,
	})
	if err != nil {
		return err
	}

	cfg.ConfigPath = pathValue.Value
	cfg.ConfigSource = pathValue.Source
	cfg.Verbose = flags.verbose

	// A broken config file must not block commands like config vet.
	loaded, loadErr := cookieconfig.NewLoader().LoadWithDefaults(cfg.ConfigPath)
	if loadErr != nil {
		loaded = cookieconfig.DefaultConfig()
	}
	cfg.Config = loaded

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring unreadable config file", "path", cfg.ConfigPath, "err", loadErr)
	}
	cookieconfig.LogResolvedValues([]cookieconfig.ResolvedValue{pathValue})

	return nil
}
