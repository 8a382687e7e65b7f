package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearSettingsEnv unsets all recognized settings variables for the
// duration of the test, restoring the originals afterwards.
func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ENV", "API_BASE_URL", "API_KEY", "LOG_LEVEL"} {
		t.Setenv(k, "") // registers restoration of the original value
		os.Unsetenv(k)
	}
}

// loadIsolated loads settings with both file sources pointed at
// non-existent paths.
func loadIsolated(t *testing.T, extra ...Option) (*Settings, error) {
	t.Helper()
	dir := t.TempDir()
	opts := []Option{
		WithConfigFile(filepath.Join(dir, "absent.yaml")),
		WithEnvFile(filepath.Join(dir, "absent.env")),
	}
	return Load(append(opts, extra...)...)
}

func TestLoadDefaults(t *testing.T) {
	clearSettingsEnv(t)

	s, err := loadIsolated(t)
	require.NoError(t, err)

	assert.Equal(t, DefaultEnv, s.Env)
	assert.Equal(t, DefaultAPIBaseURL, s.APIBaseURL)
	assert.Empty(t, s.APIKey)
	assert.Equal(t, DefaultLogLevel, s.LogLevel)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("ENV", "prod")
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("API_KEY", "s3cret")
	t.Setenv("LOG_LEVEL", "debug")

	s, err := loadIsolated(t)
	require.NoError(t, err)

	assert.Equal(t, "prod", s.Env)
	assert.Equal(t, "https://api.example.com", s.APIBaseURL)
	assert.Equal(t, "s3cret", s.APIKey)
	assert.Equal(t, "DEBUG", s.LogLevel, "log level is normalized to upper case")
}

func TestLoadConfigFile(t *testing.T) {
	clearSettingsEnv(t)

	path := filepath.Join(t.TempDir(), "apiprobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"env: staging\napi_base_url: https://staging.example.com\n"), 0o644))

	s, err := loadIsolated(t, WithConfigFile(path))
	require.NoError(t, err)

	assert.Equal(t, "staging", s.Env)
	assert.Equal(t, "https://staging.example.com", s.APIBaseURL)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, DefaultLogLevel, s.LogLevel)
}

func TestLoadEnvironmentBeatsConfigFile(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("API_BASE_URL", "https://env.example.com")

	path := filepath.Join(t.TempDir(), "apiprobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_base_url: https://file.example.com\n"), 0o644))

	s, err := loadIsolated(t, WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", s.APIBaseURL)
}

func TestLoadDotEnvFile(t *testing.T) {
	clearSettingsEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_KEY=from-dotenv\n"), 0o644))

	s, err := loadIsolated(t, WithEnvFile(path))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", s.APIKey)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	clearSettingsEnv(t)

	path := filepath.Join(t.TempDir(), "apiprobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml:::"), 0o644))

	_, err := loadIsolated(t, WithConfigFile(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadInvalidLogLevel(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := loadIsolated(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoadInvalidBaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no scheme", "example.com"},
		{"bad scheme", "ftp://example.com"},
		{"empty host", "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearSettingsEnv(t)
			t.Setenv("API_BASE_URL", tt.url)

			_, err := loadIsolated(t)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "api_base_url")
		})
	}
}

func TestLogLevelWarningAlias(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("LOG_LEVEL", "warning")

	s, err := loadIsolated(t)
	require.NoError(t, err)
	assert.Equal(t, "WARNING", s.LogLevel)
}
