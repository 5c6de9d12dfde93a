package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/cookie/internal/cmdtypes"
	"github.com/opmodel/cookie/internal/cmdutil"
	"github.com/opmodel/cookie/internal/output"
	"github.com/opmodel/cookie/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var of cmdutil.OutputFlags

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show cookie version information.

Displays:
  - cookie version, commit, and build date
  - Go version and platform
  - CUE SDK version (used by config vet)`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, err := of.Format()
			if err != nil {
				return cmdutil.Failed("invalid flags", err)
			}

			info := version.Get()
			if format != output.FormatText {
				return output.WriteStructured(c.OutOrStdout(), format, info)
			}

			w := c.OutOrStdout()
			fmt.Fprintf(w, "cookie version %s\n", info.Version)
			fmt.Fprintf(w, "  Commit:    %s\n", info.GitCommit)
			fmt.Fprintf(w, "  Built:     %s\n", info.BuildDate)
			fmt.Fprintf(w, "  Go:        %s\n", info.GoVersion)
			fmt.Fprintf(w, "  Platform:  %s\n", info.Platform)
			if info.CUESDKVersion != "" {
				fmt.Fprintf(w, "  CUE SDK:   %s\n", info.CUESDKVersion)
			}
			return nil
		},
	}

	of.AddTo(cmd)
	return cmd
}
