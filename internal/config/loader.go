package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for cookie configuration.
const envPrefix = "COOKIE"

// Loader handles loading configuration from a file and the environment.
// Feature and keep-features-dir are resolved separately by Resolve so their
// precedence can be reported.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("template.author", "COOKIE_AUTHOR")
	_ = v.BindEnv("template.modulePrefix", "COOKIE_MODULE_PREFIX")
	_ = v.BindEnv("hook.logFile", "COOKIE_LOG_FILE")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and fills unset values with defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}

// WithDefaults returns a copy of c with unset values taken from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.Defaults.Feature == "" {
		out.Defaults.Feature = def.Defaults.Feature
	}
	if out.Defaults.KeepFeaturesDir == nil {
		out.Defaults.KeepFeaturesDir = def.Defaults.KeepFeaturesDir
	}
	if out.Template.ModulePrefix == "" {
		out.Template.ModulePrefix = def.Template.ModulePrefix
	}
	if out.Template.CopyWithoutRender == nil {
		out.Template.CopyWithoutRender = def.Template.CopyWithoutRender
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	return &out
}
