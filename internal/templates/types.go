// Package templates renders the embedded project skeleton and drives the
// cookie new pipeline.
package templates

import (
	"github.com/opmodel/cookie/internal/feature"
	"github.com/opmodel/cookie/internal/hook"
)

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// ProjectName is the project name as given on the command line (e.g., "my-app").
	ProjectName string

	// PkgCleanName is the Go package name derived from ProjectName (e.g., "my_app").
	PkgCleanName string

	// ModulePath is the Go module path of the generated project.
	ModulePath string

	// Feature is the selected feature name.
	Feature string

	// KeepStaging mirrors the keep-features-dir choice.
	KeepStaging bool

	// Author is optional and only shows up in the README.
	Author string

	// Version is the cookie version that generated the project.
	Version string
}

// RenderOptions configures skeleton rendering.
type RenderOptions struct {
	// CopyWithoutRender lists extra doublestar globs, relative to the project
	// root, whose files are copied verbatim instead of rendered.
	CopyWithoutRender []string
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// ProjectName names the project and, by default, its directory.
	ProjectName string

	// TargetDir is the directory to generate the project in.
	// Defaults to ProjectName in the working directory.
	TargetDir string

	// Feature is the raw feature selection. Empty means none.
	Feature string

	// KeepStaging leaves _cookie_features in the generated project.
	KeepStaging bool

	// LogFile writes the hook log to the generated project.
	LogFile bool

	// Quiet keeps hook log lines off stderr.
	Quiet bool

	// Force allows generating into a non-empty directory.
	Force bool

	// ModulePrefix prefixes the generated Go module path.
	ModulePrefix string

	// Author is passed through to the templates.
	Author string

	// Version is passed through to the templates.
	Version string

	// CopyWithoutRender is passed through to Render.
	CopyWithoutRender []string
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// ProjectName is the generated project's name.
	ProjectName string `json:"projectName"`

	// TargetDir is the directory where the project was created.
	TargetDir string `json:"targetDir"`

	// Feature is the selected feature.
	Feature feature.Feature `json:"feature"`

	// Files lists the final project files, slash-separated and sorted.
	Files []string `json:"files"`

	// Hook is the post-generation hook result.
	Hook *hook.Result `json:"hook,omitempty"`
}
