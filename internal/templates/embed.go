package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	oerrors "github.com/opmodel/cookie/internal/errors"
	"github.com/opmodel/cookie/internal/output"
)

//go:embed all:skeleton
var skeletonFS embed.FS

const skeletonRoot = "skeleton"

// builtinCopyWithoutRender lists skeleton files that contain template-like
// syntax of their own.
var builtinCopyWithoutRender = []string{
	".github/workflows/*",
}

// executableSuffixes get an executable mode when rendered.
var executableSuffixes = []string{".sh"}

// Render renders the skeleton into targetDir and returns the created files,
// slash-separated and relative to targetDir.
func Render(targetDir string, data TemplateData, opts RenderOptions) ([]string, error) {
	patterns := append(append([]string{}, builtinCopyWithoutRender...), opts.CopyWithoutRender...)
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid copy-without-render pattern %q", p), p, "")
		}
	}

	renderer := NewRenderer(data)
	var createdFiles []string

	err := fs.WalkDir(skeletonFS, skeletonRoot, func(src string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath := strings.TrimPrefix(strings.TrimPrefix(src, skeletonRoot), "/")
		if relPath == "" {
			return nil
		}

		verbatim := matchesAny(patterns, relPath)

		outPath := relPath
		if !verbatim {
			if outPath, err = renderer.RenderPath(relPath); err != nil {
				return err
			}
		}
		targetPath := filepath.Join(targetDir, filepath.FromSlash(outPath))

		if d.IsDir() {
			if err := os.MkdirAll(targetPath, 0o755); err != nil {
				return oerrors.NewFilesystemError("mkdir", targetPath, err)
			}
			return nil
		}

		content, err := fs.ReadFile(skeletonFS, src)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", src, err)
		}

		if !verbatim {
			outPath = strings.TrimSuffix(outPath, ".tmpl")
			targetPath = strings.TrimSuffix(targetPath, ".tmpl")
			if content, err = renderer.RenderFile(relPath, content); err != nil {
				return err
			}
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return oerrors.NewFilesystemError("mkdir", filepath.Dir(targetPath), err)
		}
		if err := os.WriteFile(targetPath, content, fileMode(outPath)); err != nil {
			return oerrors.NewFilesystemError("write", targetPath, err)
		}

		output.Debug("rendered file", "path", outPath, "verbatim", verbatim)
		createdFiles = append(createdFiles, outPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(createdFiles)
	return createdFiles, nil
}

// ListFiles returns all skeleton files with .tmpl suffixes removed.
// Path segments are listed unrendered.
func ListFiles() ([]string, error) {
	var files []string

	err := fs.WalkDir(skeletonFS, skeletonRoot, func(src string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(src, skeletonRoot+"/")
		files = append(files, strings.TrimSuffix(relPath, ".tmpl"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing skeleton: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

func matchesAny(patterns []string, relPath string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
	}
	return false
}

func fileMode(name string) os.FileMode {
	for _, suffix := range executableSuffixes {
		if path.Ext(name) == suffix {
			return 0o755
		}
	}
	return 0o644
}
