package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Environment variables read outside viper.
const (
	EnvConfig          = "COOKIE_CONFIG"
	EnvFeature         = "COOKIE_FEATURE"
	EnvKeepFeaturesDir = "COOKIE_KEEP_FEATURES_DIR"
)

// Paths contains standard filesystem paths for cookie.
type Paths struct {
	// ConfigFile is the path to the config file (~/.cookie/config.yaml).
	ConfigFile string

	// HomeDir is the cookie home directory (~/.cookie).
	HomeDir string
}

// DefaultPaths returns the default paths for cookie.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cookieHome := filepath.Join(homeDir, ".cookie")

	return &Paths{
		ConfigFile: filepath.Join(cookieHome, "config.yaml"),
		HomeDir:    cookieHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If COOKIE_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
