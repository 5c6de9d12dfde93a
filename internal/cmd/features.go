package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/cookie/internal/cmdtypes"
	"github.com/opmodel/cookie/internal/cmdutil"
	"github.com/opmodel/cookie/internal/feature"
	"github.com/opmodel/cookie/internal/output"
	"github.com/opmodel/cookie/internal/templates"
)

// NewFeaturesCmd creates the features command.
func NewFeaturesCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		of        cmdutil.OutputFlags
		showFiles bool
	)

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List selectable features",
		Long: `List the features accepted by --feature and the fragment directory
under _cookie_features/ each one merges.

With --files, show the embedded skeleton instead. Paths are shown
unrendered, with the .tmpl suffix removed.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, err := of.Format()
			if err != nil {
				return cmdutil.Failed("invalid flags", err)
			}

			if showFiles {
				files, err := templates.ListFiles()
				if err != nil {
					return cmdutil.Failed("listing skeleton failed", err)
				}
				if format != output.FormatText {
					return output.WriteStructured(c.OutOrStdout(), format, files)
				}
				fmt.Fprint(c.OutOrStdout(), output.RenderFileTree("skeleton", output.TreeFilesFromPaths(files)))
				return nil
			}

			if format != output.FormatText {
				return output.WriteStructured(c.OutOrStdout(), format, feature.All())
			}

			tbl := output.NewTable("FEATURE", "FRAGMENT", "DESCRIPTION")
			for _, info := range feature.All() {
				fragment := string(info.Fragment)
				if fragment == "" {
					fragment = "-"
				}
				tbl.Row(string(info.Feature), fragment, info.Description)
			}
			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			return nil
		},
	}

	of.AddTo(cmd)
	cmd.Flags().BoolVar(&showFiles, "files", false, "List the embedded skeleton files")
	return cmd
}
