// Package cmdutil provides shared command utilities for cookie subcommands.
// It centralizes flag group management, error reporting and result output.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/cookie/internal/config"
	oerrors "github.com/opmodel/cookie/internal/errors"
	"github.com/opmodel/cookie/internal/feature"
	"github.com/opmodel/cookie/internal/output"
)

// FeatureFlags holds the feature selection flags shared by new and hook.
type FeatureFlags struct {
	Feature         string
	KeepFeaturesDir bool
}

// AddTo registers the feature flags on the given cobra command.
func (f *FeatureFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Feature, "feature", "",
		fmt.Sprintf("Optional feature to merge (%s) (env: %s)", strings.Join(feature.Names(), ", "), config.EnvFeature))
	cmd.Flags().BoolVar(&f.KeepFeaturesDir, "keep-features-dir", false,
		fmt.Sprintf("Keep the %s staging directory (env: %s)", "_cookie_features", config.EnvKeepFeaturesDir))
}

// Resolve resolves the flags against env, config and defaults and logs how
// each value was chosen.
func (f *FeatureFlags) Resolve(cmd *cobra.Command, cfg *config.Config) (*config.ResolvedConfig, error) {
	resolved, err := config.Resolve(config.ResolveOptions{
		FeatureFlag:    f.Feature,
		FeatureFlagSet: cmd.Flags().Changed("feature"),
		KeepFlag:       f.KeepFeaturesDir,
		KeepFlagSet:    cmd.Flags().Changed("keep-features-dir"),
		Config:         cfg,
	})
	if err != nil {
		return nil, err
	}
	config.LogResolvedValues(resolved.Values)
	return resolved, nil
}

// OutputFlags holds the --output flag.
type OutputFlags struct {
	Output string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Output, "output", "o", string(output.FormatText),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

// Format parses the flag value.
func (f *OutputFlags) Format() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Output)
	if !ok {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", f.Output),
			"--output",
			fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")))
	}
	return format, nil
}
