// Package hook implements the post-generation hook: it merges the selected
// feature fragment from the staging directory into a freshly rendered project
// and then removes the staging directory unless asked to keep it.
package hook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	oerrors "github.com/opmodel/cookie/internal/errors"
	"github.com/opmodel/cookie/internal/feature"
	"github.com/opmodel/cookie/internal/output"
	"github.com/opmodel/cookie/internal/overlay"
)

const (
	// StagingDirName is the directory under the project root holding all fragments.
	StagingDirName = "_cookie_features"

	// LogFileName is the hook log written to the project root when enabled.
	LogFileName = ".post_gen.log"

	logScope = "post-gen"
)

// Options configures a hook run.
type Options struct {
	// ProjectRoot is the rendered project directory. It must exist.
	ProjectRoot string

	// Feature is the selected feature.
	Feature feature.Feature

	// KeepStaging leaves the staging directory in place after merging.
	KeepStaging bool

	// LogFile additionally writes hook log lines to <ProjectRoot>/.post_gen.log.
	LogFile bool

	// Logger overrides the hook logger. Defaults to a scoped output logger.
	Logger *log.Logger

	// Quiet keeps log lines off stderr, for example while a spinner owns the
	// terminal. The log file still receives them. Errors are returned as usual.
	Quiet bool
}

// Result describes what a hook run did.
type Result struct {
	ProjectRoot    string          `json:"projectRoot"`
	Feature        feature.Feature `json:"feature"`
	Fragment       string          `json:"fragment,omitempty"`
	Merged         []overlay.Entry `json:"merged,omitempty"`
	Bytes          int64           `json:"bytes"`
	StagingRemoved bool            `json:"stagingRemoved"`
}

// StagingDir returns the staging directory of a project root.
func StagingDir(projectRoot string) string {
	return filepath.Join(projectRoot, StagingDirName)
}

// Run resolves the feature, merges its fragment and cleans up the staging
// directory. An invalid feature fails before anything on disk changes.
// Filesystem errors abort the run and leave the project as it is.
func Run(opts Options) (*Result, error) {
	fragment, selected, err := feature.Resolve(opts.Feature)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(opts.ProjectRoot)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("project root %s does not exist", opts.ProjectRoot),
			opts.ProjectRoot,
			"Render the project template before running the hook.")
	}
	if err != nil {
		return nil, oerrors.NewFilesystemError("stat", opts.ProjectRoot, err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("project root %s is not a directory", opts.ProjectRoot),
			opts.ProjectRoot, "")
	}

	logger, closeLog, err := hookLogger(opts)
	if err != nil {
		return nil, err
	}
	defer closeLog()

	result := &Result{
		ProjectRoot: opts.ProjectRoot,
		Feature:     opts.Feature,
	}

	logger.Info("starting post-generation hook", "root", opts.ProjectRoot, "feature", opts.Feature)

	if selected {
		result.Fragment = fragment.String()
		fragmentRoot := filepath.Join(StagingDir(opts.ProjectRoot), fragment.String())

		err := overlay.Merge(fragmentRoot, opts.ProjectRoot, overlay.WithRecorder(func(e overlay.Entry) {
			logger.Debug("copied", "path", e.Path, "size", humanize.Bytes(uint64(e.Size)))
			result.Merged = append(result.Merged, e)
			result.Bytes += e.Size
		}))
		if err != nil {
			logger.Error("merging fragment failed", "fragment", fragment, "err", err)
			return result, err
		}

		if len(result.Merged) == 0 {
			logger.Warn("fragment has no staged content", "fragment", fragment)
		} else {
			logger.Info("merged fragment",
				"fragment", fragment,
				"files", len(result.Merged),
				"size", humanize.Bytes(uint64(result.Bytes)))
		}
	}

	if opts.KeepStaging {
		logger.Debug("keeping staging directory", "path", StagingDir(opts.ProjectRoot))
		return result, nil
	}

	for _, other := range feature.Fragments() {
		if other != fragment {
			logger.Debug("discarding unselected fragment", "fragment", other)
		}
	}
	if err := os.RemoveAll(StagingDir(opts.ProjectRoot)); err != nil {
		err = oerrors.NewFilesystemError("remove", StagingDir(opts.ProjectRoot), err)
		logger.Error("removing staging directory failed", "err", err)
		return result, err
	}
	result.StagingRemoved = true
	logger.Debug("removed staging directory", "path", StagingDir(opts.ProjectRoot))

	return result, nil
}

// hookLogger returns the logger for a run and a function releasing its resources.
// LogFile takes precedence over a custom Logger.
func hookLogger(opts Options) (*log.Logger, func(), error) {
	if !opts.LogFile {
		switch {
		case opts.Logger != nil:
			return opts.Logger, func() {}, nil
		case opts.Quiet:
			return output.ScopedLoggerTo(logScope, io.Discard), func() {}, nil
		}
		return output.ScopedLogger(logScope), func() {}, nil
	}

	path := filepath.Join(opts.ProjectRoot, LogFileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, oerrors.NewFilesystemError("open", path, err)
	}
	if opts.Quiet {
		return output.ScopedLoggerTo(logScope, f), func() { _ = f.Close() }, nil
	}
	return output.ScopedLogger(logScope, f), func() { _ = f.Close() }, nil
}
