package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/cookie/internal/errors"
	"github.com/opmodel/cookie/internal/feature"
)

func boolPtr(b bool) *bool { return &b }

// clearEnv unsets the resolver env vars for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvFeature, "")
	t.Setenv(EnvKeepFeaturesDir, "")
}

func TestResolve_FeaturePrecedence(t *testing.T) {
	fileCfg := &Config{Defaults: DefaultsConfig{Feature: "pubsub"}}

	tests := []struct {
		name       string
		flag       string
		flagSet    bool
		env        string
		cfg        *Config
		want       feature.Feature
		wantSource ConfigSource
	}{
		{"flag beats everything", "http", true, "pubsub", fileCfg, feature.HTTP, SourceFlag},
		{"env beats config", "", false, "http", fileCfg, feature.HTTP, SourceEnv},
		{"config beats default", "", false, "", fileCfg, feature.PubSub, SourceConfig},
		{"default", "", false, "", nil, feature.None, SourceDefault},
		{"explicit empty flag selects none", "", true, "http", fileCfg, feature.None, SourceFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvFeature, tt.env)

			got, err := Resolve(ResolveOptions{
				FeatureFlag:    tt.flag,
				FeatureFlagSet: tt.flagSet,
				Config:         tt.cfg,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Feature)
			assert.Equal(t, tt.wantSource, got.Values[0].Source)
		})
	}
}

func TestResolve_RecordsShadowedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFeature, "pubsub")

	got, err := Resolve(ResolveOptions{
		FeatureFlag:    "http",
		FeatureFlagSet: true,
		Config:         &Config{Defaults: DefaultsConfig{Feature: "none"}},
	})
	require.NoError(t, err)

	v := got.Values[0]
	assert.Equal(t, "feature", v.Key)
	assert.Equal(t, "http", v.Value)
	assert.Equal(t, "pubsub", v.Shadowed[SourceEnv])
	assert.Equal(t, "none", v.Shadowed[SourceConfig])
	assert.Equal(t, "none", v.Shadowed[SourceDefault])
	assert.NotContains(t, v.Shadowed, SourceFlag)
}

func TestResolve_KeepFeaturesDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    bool
		flagSet bool
		env     string
		cfg     *Config
		want    bool
		source  ConfigSource
	}{
		{"default is false", false, false, "", nil, false, SourceDefault},
		{"config", false, false, "", &Config{Defaults: DefaultsConfig{KeepFeaturesDir: boolPtr(true)}}, true, SourceConfig},
		{"env beats config", false, false, "false", &Config{Defaults: DefaultsConfig{KeepFeaturesDir: boolPtr(true)}}, false, SourceEnv},
		{"flag beats env", true, true, "false", nil, true, SourceFlag},
		{"explicit false flag beats config", false, true, "", &Config{Defaults: DefaultsConfig{KeepFeaturesDir: boolPtr(true)}}, false, SourceFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvKeepFeaturesDir, tt.env)

			got, err := Resolve(ResolveOptions{KeepFlag: tt.flag, KeepFlagSet: tt.flagSet, Config: tt.cfg})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.KeepFeaturesDir)
			assert.Equal(t, tt.source, got.Values[1].Source)
		})
	}
}

func TestResolve_InvalidValues(t *testing.T) {
	t.Run("invalid feature from env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvFeature, "grpc")

		_, err := Resolve(ResolveOptions{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, feature.ErrInvalidSelection))
		assert.Contains(t, err.Error(), "env")
	})

	t.Run("invalid feature from config", func(t *testing.T) {
		clearEnv(t)

		_, err := Resolve(ResolveOptions{Config: &Config{Defaults: DefaultsConfig{Feature: "both"}}})
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	})

	t.Run("invalid keep value from env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvKeepFeaturesDir, "sometimes")

		_, err := Resolve(ResolveOptions{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")

		got, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/flag/config.yaml"})
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", got.Value)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, "/env/config.yaml", got.Shadowed[SourceEnv])
		assert.Contains(t, got.Shadowed, SourceDefault)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")

		got, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", got.Value)
		assert.Equal(t, SourceEnv, got.Source)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")

		got, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)
		assert.Equal(t, SourceDefault, got.Source)
		assert.Empty(t, got.Shadowed)
	})
}
