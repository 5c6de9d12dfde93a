// Package config provides configuration loading and management.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/opmodel/cookie/internal/feature"
)

// fileHeader is written above generated config files.
const fileHeader = "# cookie configuration\n# Flags and COOKIE_* environment variables override these values.\n\n"

// DefaultsConfig holds defaults for cookie new and cookie hook flags.
type DefaultsConfig struct {
	// Feature is the default feature selection.
	// Env: COOKIE_FEATURE, Default: "none"
	Feature string `json:"feature,omitempty" yaml:"feature" mapstructure:"feature"`

	// KeepFeaturesDir keeps _cookie_features after generation.
	// Env: COOKIE_KEEP_FEATURES_DIR, Default: false
	KeepFeaturesDir *bool `json:"keepFeaturesDir,omitempty" yaml:"keepFeaturesDir" mapstructure:"keepFeaturesDir"`
}

// TemplateConfig holds values passed to the project skeleton.
type TemplateConfig struct {
	// Author is shown in the generated README.
	// Env: COOKIE_AUTHOR
	Author string `json:"author,omitempty" yaml:"author" mapstructure:"author"`

	// ModulePrefix prefixes generated Go module paths.
	// Env: COOKIE_MODULE_PREFIX, Default: "example.com"
	ModulePrefix string `json:"modulePrefix,omitempty" yaml:"modulePrefix" mapstructure:"modulePrefix"`

	// CopyWithoutRender lists doublestar globs copied verbatim.
	CopyWithoutRender []string `json:"copyWithoutRender,omitempty" yaml:"copyWithoutRender" mapstructure:"copyWithoutRender"`
}

// HookConfig holds post-generation hook settings.
type HookConfig struct {
	// LogFile writes .post_gen.log into the generated project.
	// Env: COOKIE_LOG_FILE, Default: false
	LogFile bool `json:"logFile,omitempty" yaml:"logFile" mapstructure:"logFile"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps" mapstructure:"timestamps"`
}

// Config represents the cookie configuration.
// Loaded from ~/.cookie/config.yaml, validated against an embedded CUE schema.
type Config struct {
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults" mapstructure:"defaults"`
	Template TemplateConfig `json:"template" yaml:"template" mapstructure:"template"`
	Hook     HookConfig     `json:"hook" yaml:"hook" mapstructure:"hook"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `cookie config init` to generate the initial config file.
func DefaultConfig() *Config {
	keep := false
	timestamps := true
	return &Config{
		Defaults: DefaultsConfig{
			Feature:         string(feature.None),
			KeepFeaturesDir: &keep,
		},
		Template: TemplateConfig{
			ModulePrefix:      "example.com",
			CopyWithoutRender: []string{".github/workflows/*"},
		},
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}

// Marshal renders c as a commented YAML config file.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return append([]byte(fileHeader), data...), nil
}
