package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/cookie/internal/cmdtypes"
	"github.com/opmodel/cookie/internal/cmdutil"
	"github.com/opmodel/cookie/internal/output"
	"github.com/opmodel/cookie/internal/templates"
	"github.com/opmodel/cookie/internal/version"
)

// newOptions holds the flags of cookie new.
type newOptions struct {
	features cmdutil.FeatureFlags
	output   cmdutil.OutputFlags
	dir      string
	force    bool
	logFile  bool
}

// NewNewCmd creates the new command.
func NewNewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var opts newOptions

	cmd := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Generate a new project",
		Long: `Generate a new Go project from the embedded template.

The template is rendered into the target directory together with every
feature fragment under _cookie_features/. The post-generation hook then
merges the selected fragment into the project root and removes
_cookie_features/ unless --keep-features-dir is set.

Features:
  none    Base project only (default)
  http    HTTP service with health checks and request logging
  pubsub  Pub/Sub push handler with duplicate filtering

Examples:
  # Create a project with no optional feature
  cookie new my-app

  # Create an HTTP service
  cookie new my-app --feature http

  # Keep the staged fragments for inspection
  cookie new my-app --feature pubsub --keep-features-dir

  # Create the project in a specific directory
  cookie new my-app --dir ./services/my-app`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, args, cfg, &opts)
		},
	}

	opts.features.AddTo(cmd)
	opts.output.AddTo(cmd)
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "",
		"Directory to create the project in (defaults to project name)")
	cmd.Flags().BoolVar(&opts.force, "force", false,
		"Generate into a non-empty directory")
	cmd.Flags().BoolVar(&opts.logFile, "log-file", false,
		"Write the hook log to .post_gen.log in the project (env: COOKIE_LOG_FILE)")

	return cmd
}

func runNew(cmd *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, opts *newOptions) error {
	projectName := args[0]

	format, err := opts.output.Format()
	if err != nil {
		return cmdutil.Failed("invalid flags", err)
	}

	resolved, err := opts.features.Resolve(cmd, cfg.Config)
	if err != nil {
		return cmdutil.Failed("invalid feature selection", err)
	}

	logFile := cfg.Config.Hook.LogFile
	if cmd.Flags().Changed("log-file") {
		logFile = opts.logFile
	}

	// Log lines would fight the spinner for the terminal.
	useSpinner := !cfg.Verbose && format == output.FormatText && output.IsTTY()

	gen := templates.NewGenerator(templates.GenerateOptions{
		ProjectName:       projectName,
		TargetDir:         opts.dir,
		Feature:           string(resolved.Feature),
		KeepStaging:       resolved.KeepFeaturesDir,
		LogFile:           logFile,
		Quiet:             useSpinner,
		Force:             opts.force,
		ModulePrefix:      cfg.Config.Template.ModulePrefix,
		Author:            cfg.Config.Template.Author,
		Version:           version.Get().Version,
		CopyWithoutRender: cfg.Config.Template.CopyWithoutRender,
	})

	var result *templates.GenerateResult
	generate := func() error {
		var genErr error
		result, genErr = gen.Generate()
		return genErr
	}

	if useSpinner {
		err = output.RunWithSpinner(cmd.Context(), generate,
			output.WithTitle(fmt.Sprintf("Generating %s...", projectName)))
	} else {
		err = generate()
	}
	if err != nil {
		return cmdutil.Failed("generating project failed", err)
	}

	if format != output.FormatText {
		return output.WriteStructured(cmd.OutOrStdout(), format, result)
	}
	return cmdutil.PrintGenerateResult(cmd.OutOrStdout(), result)
}
