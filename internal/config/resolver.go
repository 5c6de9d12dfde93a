package config

import (
	"fmt"
	"os"
	"strconv"

	oerrors "github.com/opmodel/cookie/internal/errors"
	"github.com/opmodel/cookie/internal/feature"
	"github.com/opmodel/cookie/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with its source and the lower
// precedence values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// candidate is one possible source of a value, in precedence order.
type candidate struct {
	source ConfigSource
	value  string
	set    bool
}

// resolve picks the first set candidate and records the set ones it shadows.
func resolve(key string, candidates ...candidate) ResolvedValue {
	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	found := false
	for _, c := range candidates {
		if !c.set {
			continue
		}
		if !found {
			result.Value = c.value
			result.Source = c.source
			found = true
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// ResolveOptions holds the raw flag values for resolution.
type ResolveOptions struct {
	// FeatureFlag is the --feature value.
	FeatureFlag string
	// FeatureFlagSet reports whether --feature was given.
	FeatureFlagSet bool

	// KeepFlag is the --keep-features-dir value.
	KeepFlag bool
	// KeepFlagSet reports whether --keep-features-dir was given.
	KeepFlagSet bool

	// Config is the loaded config file. May be nil.
	Config *Config
}

// ResolvedConfig holds the resolved feature selection and keep flag.
type ResolvedConfig struct {
	Feature         feature.Feature
	KeepFeaturesDir bool

	// Values records how each value was resolved.
	Values []ResolvedValue
}

// Resolve resolves the feature and keep-features-dir using precedence:
// (1) flag, (2) COOKIE_* env, (3) config file, (4) built-in default.
// Values are validated after resolution, whatever their source.
func Resolve(opts ResolveOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	envFeature, envFeatureSet := os.LookupEnv(EnvFeature)
	featureValue := resolve("feature",
		candidate{SourceFlag, opts.FeatureFlag, opts.FeatureFlagSet},
		candidate{SourceEnv, envFeature, envFeatureSet && envFeature != ""},
		candidate{SourceConfig, cfg.Defaults.Feature, cfg.Defaults.Feature != ""},
		candidate{SourceDefault, string(feature.None), true},
	)

	f, err := feature.Parse(featureValue.Value)
	if err != nil {
		return nil, fmt.Errorf("resolving feature from %s: %w", featureValue.Source, err)
	}

	var cfgKeep string
	if cfg.Defaults.KeepFeaturesDir != nil {
		cfgKeep = strconv.FormatBool(*cfg.Defaults.KeepFeaturesDir)
	}
	envKeep, envKeepSet := os.LookupEnv(EnvKeepFeaturesDir)
	keepValue := resolve("keepFeaturesDir",
		candidate{SourceFlag, strconv.FormatBool(opts.KeepFlag), opts.KeepFlagSet},
		candidate{SourceEnv, envKeep, envKeepSet && envKeep != ""},
		candidate{SourceConfig, cfgKeep, cfg.Defaults.KeepFeaturesDir != nil},
		candidate{SourceDefault, "false", true},
	)

	keep, err := strconv.ParseBool(keepValue.Value)
	if err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("invalid keepFeaturesDir value %q from %s", keepValue.Value, keepValue.Source),
			EnvKeepFeaturesDir,
			"Use true or false.")
	}

	return &ResolvedConfig{
		Feature:         f,
		KeepFeaturesDir: keep,
		Values:          []ResolvedValue{featureValue, keepValue},
	}, nil
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) COOKIE_CONFIG env, (3) ~/.cookie/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	envValue := os.Getenv(EnvConfig)
	return resolve("config",
		candidate{SourceFlag, opts.FlagValue, opts.FlagValue != ""},
		candidate{SourceEnv, envValue, envValue != ""},
		candidate{SourceDefault, paths.ConfigFile, true},
	), nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
