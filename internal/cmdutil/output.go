package cmdutil

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/opmodel/cookie/internal/hook"
	"github.com/opmodel/cookie/internal/output"
	"github.com/opmodel/cookie/internal/templates"
)

// fileDescriptions describes well-known generated files.
var fileDescriptions = map[string]string{
	"go.mod":                      "Go module definition",
	"README.md":                   "Project overview",
	"Makefile":                    "Build, test and lint targets",
	".gitignore":                  "Ignored build output",
	".github/workflows/ci.yml":    "CI workflow",
	"scripts/check.sh":            "Pre-push checks",
	"docs/index.md":               "Documentation index",
	"main.go":                     "Service entry point",
	"utils/doc.go":                "Package documentation",
	"utils/server.go":             "HTTP server wiring",
	"utils/health.go":             "Health check and degrade status",
	"utils/middleware/logging.go": "Request logging",
	"utils/envelope.go":           "Push envelope decoding",
	"utils/dedupe.go":             "Duplicate delivery filter",
}

// FileDescription returns a description for a generated file.
func FileDescription(path string) string {
	if desc, ok := fileDescriptions[path]; ok {
		return desc
	}
	switch {
	case strings.HasPrefix(path, hook.StagingDirName+"/"):
		return "Staged feature file"
	case strings.HasPrefix(path, "internal/") && strings.HasSuffix(path, "_test.go"):
		return "Package tests"
	case strings.HasPrefix(path, "internal/"):
		return "Core package"
	}
	return ""
}

// PrintGenerateResult writes the human-readable summary of cookie new.
func PrintGenerateResult(w io.Writer, result *templates.GenerateResult) error {
	absDir, err := filepath.Abs(result.TargetDir)
	if err != nil {
		return fmt.Errorf("getting absolute path: %w", err)
	}

	merged := map[string]bool{}
	if result.Hook != nil {
		for _, e := range result.Hook.Merged {
			merged[e.Path] = true
		}
	}

	files := make([]output.TreeFile, 0, len(result.Files))
	for _, f := range result.Files {
		tf := output.TreeFile{Path: f, Description: FileDescription(f)}
		if merged[f] {
			tf.Status = result.Hook.Fragment
		}
		files = append(files, tf)
	}

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Created project '%s' in %s", result.ProjectName, absDir)))
	fmt.Fprintln(w)
	fmt.Fprint(w, output.RenderFileTree(filepath.Base(result.TargetDir), files))

	if result.Hook != nil && result.Hook.Fragment != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.StyleSummary.Render(fmt.Sprintf("Feature %s merged %d files (%s) from %s",
			result.Feature, len(result.Hook.Merged), humanize.Bytes(uint64(result.Hook.Bytes)), result.Hook.Fragment)))
	}
	return nil
}

// PrintHookResult writes the human-readable summary of cookie hook.
func PrintHookResult(w io.Writer, result *hook.Result) {
	if len(result.Merged) > 0 {
		tbl := output.NewTable("FILE", "SIZE", "MODE")
		for _, e := range result.Merged {
			tbl.Row(e.Path, humanize.Bytes(uint64(e.Size)), e.Mode.String())
		}
		fmt.Fprintln(w, tbl.String())
	}

	if result.Fragment != "" {
		fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Merged %s into %s", result.Fragment, result.ProjectRoot)))
	} else {
		fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("No feature selected for %s", result.ProjectRoot)))
	}

	if result.StagingRemoved {
		fmt.Fprintf(w, "%s %s\n", hook.StagingDirName, output.StatusStyle(output.StatusRemoved).Render(output.StatusRemoved))
	}
}
