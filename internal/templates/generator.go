package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	oerrors "github.com/opmodel/cookie/internal/errors"
	"github.com/opmodel/cookie/internal/feature"
	"github.com/opmodel/cookie/internal/hook"
	"github.com/opmodel/cookie/internal/output"
)

// Generator handles project generation from the skeleton.
type Generator struct {
	opts   GenerateOptions
	logger *log.Logger
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// WithLogger sets the logger passed to the post-generation hook.
func (g *Generator) WithLogger(l *log.Logger) *Generator {
	g.logger = l
	return g
}

// Generate renders the skeleton and runs the post-generation hook.
// Nothing touches the disk until the name and feature are validated.
// A render failure removes the target directory when Generate created it.
// A hook failure leaves the partially generated project in place.
func (g *Generator) Generate() (*GenerateResult, error) {
	if err := ValidateProjectName(g.opts.ProjectName); err != nil {
		return nil, err
	}

	f, err := feature.Parse(g.opts.Feature)
	if err != nil {
		return nil, err
	}

	targetDir := g.opts.TargetDir
	if targetDir == "" {
		targetDir = g.opts.ProjectName
	}

	created, err := g.checkTargetDir(targetDir)
	if err != nil {
		return nil, err
	}

	data := NewTemplateData(g.opts)
	data.Feature = f.String()

	output.Debug("generating project",
		"name", data.ProjectName,
		"module", data.ModulePath,
		"feature", f,
		"target", targetDir)

	if _, err := Render(targetDir, data, RenderOptions{CopyWithoutRender: g.opts.CopyWithoutRender}); err != nil {
		if created {
			_ = os.RemoveAll(targetDir)
		}
		return nil, fmt.Errorf("rendering skeleton: %w", err)
	}

	hookResult, err := hook.Run(hook.Options{
		ProjectRoot: targetDir,
		Feature:     f,
		KeepStaging: g.opts.KeepStaging,
		LogFile:     g.opts.LogFile,
		Logger:      g.logger,
		Quiet:       g.opts.Quiet,
	})
	if err != nil {
		return nil, fmt.Errorf("post-generation hook failed, partial project left in %s: %w", targetDir, err)
	}

	files, err := projectFiles(targetDir)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		ProjectName: g.opts.ProjectName,
		TargetDir:   targetDir,
		Feature:     f,
		Files:       files,
		Hook:        hookResult,
	}, nil
}

// checkTargetDir validates the target directory and reports whether
// Generate will create it.
func (g *Generator) checkTargetDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, oerrors.NewFilesystemError("stat", dir, err)
	}

	if !info.IsDir() {
		return false, oerrors.NewValidationError(
			fmt.Sprintf("%s is not a directory", dir), dir, "")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, oerrors.NewFilesystemError("read", dir, err)
	}

	if len(entries) > 0 && !g.opts.Force {
		return false, oerrors.NewValidationError(
			fmt.Sprintf("directory %s is not empty", dir), dir,
			"Use --force to generate into it anyway.")
	}

	return false, nil
}

// projectFiles lists the files under root, slash-separated and sorted.
func projectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, oerrors.NewFilesystemError("walk", root, err)
	}
	sort.Strings(files)
	return files, nil
}
