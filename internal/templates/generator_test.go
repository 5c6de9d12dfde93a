package templates

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/cookie/internal/errors"
	"github.com/opmodel/cookie/internal/feature"
	"github.com/opmodel/cookie/internal/hook"
	"github.com/opmodel/cookie/internal/testutil"
)

func generate(t *testing.T, opts GenerateOptions) (*GenerateResult, error) {
	t.Helper()
	return NewGenerator(opts).WithLogger(log.New(io.Discard)).Generate()
}

func TestGenerate_Features(t *testing.T) {
	tests := []struct {
		feature   string
		wantFiles []string
		notFiles  []string
	}{
		{
			feature:   "none",
			wantFiles: []string{"go.mod", "README.md", "internal/demo/demo.go"},
			notFiles:  []string{"main.go", "utils/doc.go"},
		},
		{
			feature: "http",
			wantFiles: []string{
				"main.go",
				"utils/doc.go",
				"utils/server.go",
				"utils/health.go",
				"utils/middleware/logging.go",
			},
			notFiles: []string{"utils/dedupe.go"},
		},
		{
			feature:   "pubsub",
			wantFiles: []string{"main.go", "utils/dedupe.go", "utils/envelope.go"},
			notFiles:  []string{"utils/health.go", "utils/middleware/logging.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.feature, func(t *testing.T) {
			tmpDir, cleanup := testutil.TempDir(t)
			defer cleanup()
			target := filepath.Join(tmpDir, "demo")

			result, err := generate(t, GenerateOptions{
				ProjectName: "demo",
				TargetDir:   target,
				Feature:     tt.feature,
			})
			require.NoError(t, err)

			assert.Equal(t, feature.Feature(tt.feature), result.Feature)
			assert.Equal(t, target, result.TargetDir)
			for _, f := range tt.wantFiles {
				assert.Contains(t, result.Files, f)
				assert.FileExists(t, filepath.Join(target, f))
			}
			for _, f := range tt.notFiles {
				assert.NotContains(t, result.Files, f)
			}
			assert.NoDirExists(t, hook.StagingDir(target))
			require.NotNil(t, result.Hook)
			assert.True(t, result.Hook.StagingRemoved)
		})
	}
}

func TestGenerate_RendersFragmentContent(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()
	target := filepath.Join(tmpDir, "svc")

	_, err := generate(t, GenerateOptions{
		ProjectName:  "svc",
		TargetDir:    target,
		Feature:      "http",
		ModulePrefix: "github.com/acme",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(target, "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"github.com/acme/svc/utils"`)
}

func TestGenerate_KeepStaging(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()
	target := filepath.Join(tmpDir, "demo")

	result, err := generate(t, GenerateOptions{
		ProjectName: "demo",
		TargetDir:   target,
		Feature:     "pubsub",
		KeepStaging: true,
	})
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(hook.StagingDir(target), "ff_http"))
	assert.DirExists(t, filepath.Join(hook.StagingDir(target), "ff_pubsub"))
	assert.Contains(t, result.Files, "_cookie_features/ff_http/main.go")
	assert.False(t, result.Hook.StagingRemoved)
}

func TestGenerate_QuietStillWritesLogFile(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()
	target := filepath.Join(tmpDir, "demo")

	stderr := testutil.CaptureStderr(t, func() {
		_, err := NewGenerator(GenerateOptions{
			ProjectName: "demo",
			TargetDir:   target,
			Feature:     "http",
			LogFile:     true,
			Quiet:       true,
		}).Generate()
		require.NoError(t, err)
	})
	assert.NotContains(t, stderr, "post-generation hook")

	data, err := os.ReadFile(filepath.Join(target, hook.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting post-generation hook")
}

func TestGenerate_ValidationFailsBeforeWriting(t *testing.T) {
	tests := []struct {
		name string
		opts GenerateOptions
	}{
		{"invalid feature", GenerateOptions{ProjectName: "demo", Feature: "grpc"}},
		{"invalid name", GenerateOptions{ProjectName: "2demo", Feature: "http"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir, cleanup := testutil.TempDir(t)
			defer cleanup()
			tt.opts.TargetDir = filepath.Join(tmpDir, "out")

			_, err := generate(t, tt.opts)
			require.Error(t, err)
			assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
			assert.NoDirExists(t, tt.opts.TargetDir)
		})
	}
}

func TestGenerate_TargetDirectory(t *testing.T) {
	t.Run("non-empty directory is refused", func(t *testing.T) {
		tmpDir, cleanup := testutil.TempDir(t)
		defer cleanup()
		testutil.WriteFile(t, tmpDir, "keep.txt", "mine")

		_, err := generate(t, GenerateOptions{ProjectName: "demo", TargetDir: tmpDir})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
		assert.NoFileExists(t, filepath.Join(tmpDir, "go.mod"))
	})

	t.Run("force generates into a non-empty directory", func(t *testing.T) {
		tmpDir, cleanup := testutil.TempDir(t)
		defer cleanup()
		testutil.WriteFile(t, tmpDir, "keep.txt", "mine")

		result, err := generate(t, GenerateOptions{ProjectName: "demo", TargetDir: tmpDir, Force: true})
		require.NoError(t, err)
		assert.Contains(t, result.Files, "keep.txt")
		assert.Contains(t, result.Files, "go.mod")
	})

	t.Run("empty directory is accepted", func(t *testing.T) {
		tmpDir, cleanup := testutil.TempDir(t)
		defer cleanup()

		_, err := generate(t, GenerateOptions{ProjectName: "demo", TargetDir: tmpDir})
		require.NoError(t, err)
	})

	t.Run("file is refused", func(t *testing.T) {
		tmpDir, cleanup := testutil.TempDir(t)
		defer cleanup()
		file := testutil.WriteFile(t, tmpDir, "demo", "x")

		_, err := generate(t, GenerateOptions{ProjectName: "demo", TargetDir: file, Force: true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})

	t.Run("defaults to the project name", func(t *testing.T) {
		tmpDir, cleanup := testutil.TempDir(t)
		defer cleanup()
		t.Chdir(tmpDir)

		result, err := generate(t, GenerateOptions{ProjectName: "demo"})
		require.NoError(t, err)
		assert.Equal(t, "demo", result.TargetDir)
		assert.FileExists(t, filepath.Join(tmpDir, "demo", "go.mod"))
	})
}

func TestGenerate_RenderFailureRemovesTarget(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()
	target := filepath.Join(tmpDir, "demo")

	_, err := generate(t, GenerateOptions{
		ProjectName:       "demo",
		TargetDir:         target,
		CopyWithoutRender: []string{"["},
	})
	require.Error(t, err)
	assert.NoDirExists(t, target)
}

func TestGenerate_HookFailureLeavesProject(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()
	// utils as a file collides with the fragment's utils directory.
	testutil.WriteFile(t, tmpDir, "utils", "not a directory")

	_, err := generate(t, GenerateOptions{
		ProjectName: "demo",
		TargetDir:   tmpDir,
		Feature:     "http",
		Force:       true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrFilesystem))
	assert.Contains(t, err.Error(), tmpDir)

	assert.FileExists(t, filepath.Join(tmpDir, "go.mod"))
	assert.DirExists(t, hook.StagingDir(tmpDir))
}
