// Package config provides configuration management for the apiprobe application.
//
// This package resolves the small set of settings the CLI needs:
//   - Target environment name (dev, staging, prod, ...)
//   - Base URL of the remote API
//   - Optional API key
//   - Log level
//
// Values are resolved in increasing precedence from built-in defaults, an
// optional YAML config file, a local .env file, and finally the process
// environment. Settings are constructed once per invocation and passed by
// reference to the components that need them; there is no package-level
// cached singleton.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultEnv is the default environment name.
	DefaultEnv = "dev"

	// DefaultAPIBaseURL is the default remote API base URL. httpbin.org
	// echoes query parameters back as JSON, which makes it a convenient
	// out-of-the-box target.
	DefaultAPIBaseURL = "https://httpbin.org"

	// DefaultLogLevel is the default logging severity threshold.
	DefaultLogLevel = "INFO"

	// DefaultConfigFile is the YAML config file looked up in the working
	// directory when no explicit path is given.
	DefaultConfigFile = "apiprobe.yaml"

	// DefaultEnvFile is the dotenv file looked up in the working directory.
	DefaultEnvFile = ".env"
)

// Settings holds the resolved application configuration.
//
// The struct is a plain value object: once Load returns it, nothing
// mutates it. Environment variable names are the upper-cased canonical
// keys (ENV, API_BASE_URL, API_KEY, LOG_LEVEL); YAML file keys are the
// lower-cased equivalents.
type Settings struct {
	// Env is the environment name (e.g. "dev", "prod").
	Env string `yaml:"env" envconfig:"ENV"`

	// APIBaseURL is the base URL for all outbound requests.
	// Must be an absolute http(s) URL.
	APIBaseURL string `yaml:"api_base_url" envconfig:"API_BASE_URL"`

	// APIKey is an optional API key. It is carried in the settings but
	// not attached to requests by the current operations.
	APIKey string `yaml:"api_key" envconfig:"API_KEY"`

	// LogLevel is the logging severity threshold. One of DEBUG, INFO,
	// WARN, WARNING, ERROR (case-insensitive; normalized on load).
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Option customizes how Load resolves settings. Used mainly by tests to
// point at temporary files.
type Option func(*loadOptions)

type loadOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile overrides the YAML config file path.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) { o.configFile = path }
}

// WithEnvFile overrides the dotenv file path.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) { o.envFile = path }
}

// Load resolves settings from all configured sources.
//
// Resolution order (later sources win):
//  1. Built-in defaults
//  2. YAML config file (apiprobe.yaml), if present
//  3. .env file, loaded into the process environment without overriding
//     variables that are already set
//  4. Process environment (ENV, API_BASE_URL, API_KEY, LOG_LEVEL)
//
// A missing config or .env file is not an error; a malformed one is.
// The returned settings are validated: the log level must be part of the
// severity vocabulary and the base URL must be an absolute http(s) URL.
//
// Returns:
//   - A pointer to the resolved Settings
//   - A configuration error if any source is malformed or validation fails
func Load(opts ...Option) (*Settings, error) {
	o := loadOptions{
		configFile: DefaultConfigFile,
		envFile:    DefaultEnvFile,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Settings{
		Env:        DefaultEnv,
		APIBaseURL: DefaultAPIBaseURL,
		LogLevel:   DefaultLogLevel,
	}

	if err := loadConfigFile(o.configFile, s); err != nil {
		return nil, err
	}

	// godotenv does not override variables already present in the
	// environment, so real environment values keep precedence.
	if err := godotenv.Load(o.envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file %s: %w", o.envFile, err)
	}

	if err := envconfig.Process("", s); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// loadConfigFile merges a YAML config file into s. A missing file is
// silently skipped.
func loadConfigFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the accepted severity vocabulary. WARNING is an
// accepted alias for WARN.
var validLogLevels = map[string]bool{
	"DEBUG":   true,
	"INFO":    true,
	"WARN":    true,
	"WARNING": true,
	"ERROR":   true,
}

// validate checks the resolved settings and normalizes the log level to
// its upper-case form.
func (s *Settings) validate() error {
	s.LogLevel = strings.ToUpper(strings.TrimSpace(s.LogLevel))
	if !validLogLevels[s.LogLevel] {
		return fmt.Errorf("invalid log level %q: must be one of DEBUG, INFO, WARN, ERROR", s.LogLevel)
	}

	u, err := url.Parse(s.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api_base_url %q: %w", s.APIBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api_base_url %q: must be an absolute http(s) URL", s.APIBaseURL)
	}

	return nil
}
