package templates

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	oerrors "github.com/opmodel/cookie/internal/errors"
)

// DefaultModulePrefix is used when no module prefix is configured.
const DefaultModulePrefix = "example.com"

// ValidateProjectName checks if a project name is valid.
// Project names become directory names, so they allow hyphens and underscores
// but must start with a letter.
func ValidateProjectName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("project name cannot be empty", "", "")
	}

	for _, r := range name {
		if r > unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_') {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid project name %q: contains invalid character %q", name, r),
				name,
				"Use letters, digits, hyphens and underscores.")
		}
	}

	if !unicode.IsLetter(rune(name[0])) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid project name %q: must start with a letter", name),
			name, "")
	}

	return nil
}

// PackageName converts a project name to a Go package name.
func PackageName(name string) string {
	pkg := strcase.ToSnake(name)
	if pkg == "" {
		return "app"
	}
	return pkg
}

// ModulePath joins a module prefix and a project name.
func ModulePath(prefix, name string) string {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = DefaultModulePrefix
	}
	return prefix + "/" + name
}

// NewTemplateData derives the template data for a project from generation options.
func NewTemplateData(opts GenerateOptions) TemplateData {
	return TemplateData{
		ProjectName:  opts.ProjectName,
		PkgCleanName: PackageName(opts.ProjectName),
		ModulePath:   ModulePath(opts.ModulePrefix, opts.ProjectName),
		Feature:      strings.ToLower(strings.TrimSpace(opts.Feature)),
		KeepStaging:  opts.KeepStaging,
		Author:       opts.Author,
		Version:      opts.Version,
	}
}
