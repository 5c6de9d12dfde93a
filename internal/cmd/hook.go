package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/cookie/internal/cmdtypes"
	"github.com/opmodel/cookie/internal/cmdutil"
	"github.com/opmodel/cookie/internal/hook"
	"github.com/opmodel/cookie/internal/output"
)

// hookOptions holds the flags of cookie hook.
type hookOptions struct {
	features cmdutil.FeatureFlags
	output   cmdutil.OutputFlags
	logFile  bool
}

// NewHookCmd creates the hook command.
func NewHookCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var opts hookOptions

	cmd := &cobra.Command{
		Use:   "hook [project-root]",
		Short: "Run the post-generation hook on a rendered project",
		Long: `Run the post-generation hook on an already rendered project.

The selected feature's fragment under _cookie_features/ is merged into the
project root: files overwrite, directories merge. _cookie_features/ is then
removed unless --keep-features-dir is set. An invalid feature fails before
anything on disk changes.

The project root defaults to the current directory.

Examples:
  # Merge the http fragment into the current directory
  cookie hook --feature http

  # Only clean up the staging directory of ./my-app
  cookie hook ./my-app --feature none`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runHook(c, args, cfg, &opts)
		},
	}

	opts.features.AddTo(cmd)
	opts.output.AddTo(cmd)
	cmd.Flags().BoolVar(&opts.logFile, "log-file", false,
		"Also write the hook log to .post_gen.log in the project root (env: COOKIE_LOG_FILE)")

	return cmd
}

func runHook(cmd *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, opts *hookOptions) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

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

	result, err := hook.Run(hook.Options{
		ProjectRoot: root,
		Feature:     resolved.Feature,
		KeepStaging: resolved.KeepFeaturesDir,
		LogFile:     logFile,
	})
	if err != nil {
		return cmdutil.Failed("post-generation hook failed", err)
	}

	if format != output.FormatText {
		return output.WriteStructured(cmd.OutOrStdout(), format, result)
	}
	cmdutil.PrintHookResult(cmd.OutOrStdout(), result)
	return nil
}
