// Package app provides the command-line interface implementation for
// apiprobe.
//
// This package contains all CLI commands and their implementations.
// Commands are organized hierarchically with a root command and
// subcommands, each built by a New<X>Command constructor that receives
// the shared global options.
package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apiprobe/apiprobe/cmd/apiprobe/client"
	"github.com/apiprobe/apiprobe/internal/config"
	"github.com/apiprobe/apiprobe/internal/logger"
)

const (
	// cliName is the name of the CLI application
	cliName = "apiprobe"

	// cliDescription is the short description shown in help text
	cliDescription = "apiprobe - probe a JSON echo API over HTTP"
)

// GlobalOptions holds options that are common to all commands.
//
// Settings and Logger are populated by the root command's
// PersistentPreRunE before any subcommand runs, and are passed by
// reference to every command — there is no hidden global configuration
// state.
type GlobalOptions struct {
	// BaseURL overrides the configured API base URL when set.
	BaseURL string

	// Timeout is the per-request timeout. Must be positive.
	Timeout time.Duration

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Settings is the resolved application configuration.
	Settings *config.Settings

	// Logger is the configured application logger.
	Logger *zap.Logger
}

// NewAPIProbeCommand creates the root apiprobe command with all
// subcommands.
//
// The root command resolves settings, configures logging, and registers
// the subcommands. Running it without a subcommand prints the help text
// and yields exit code 1.
//
// Returns:
//   - A configured cobra.Command ready for execution
//
// Example:
//
//	cmd := NewAPIProbeCommand()
//	if err := cmd.ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
func NewAPIProbeCommand() *cobra.Command {
	opts := &GlobalOptions{
		Logger: logger.Nop(),
	}

	cmd := &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
		Long: `apiprobe is a small command-line client for HTTP JSON echo services.

It issues GET requests against a configurable base URL and prints the
JSON results to stdout. The target service is expected to echo query
parameters back as JSON, in the style of httpbin.org/get.

Configuration is read from apiprobe.yaml, a local .env file, and the
environment (ENV, API_BASE_URL, API_KEY, LOG_LEVEL).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initGlobalOptions(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help, but fail the invocation.
			_ = cmd.Help()
			return exitError{code: 1}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "",
		fmt.Sprintf("API base URL (default: %s, or API_BASE_URL)", config.DefaultAPIBaseURL))
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", client.DefaultTimeout,
		"request timeout")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "",
		"log level (DEBUG, INFO, WARN, ERROR)")

	cmd.AddCommand(
		NewPingCommand(opts),
		NewGetCommand(opts),
		NewVersionCommand(opts),
	)

	return cmd
}

// initGlobalOptions resolves settings and configures the logger. Called
// once per invocation from the root command's PersistentPreRunE.
func initGlobalOptions(opts *GlobalOptions) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if opts.Timeout <= 0 {
		return fmt.Errorf("configuration error: timeout must be positive, got %s", opts.Timeout)
	}

	level := settings.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	log, err := logger.Setup(level)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	opts.Settings = settings
	opts.Logger = log

	log.Debug("settings resolved",
		zap.String("env", settings.Env),
		zap.String("api_base_url", settings.APIBaseURL),
		zap.String("log_level", level))

	return nil
}

// getClient creates the API client for a command invocation.
//
// The base URL is taken from the --base-url flag when given, otherwise
// from the resolved settings. The returned client owns a connection
// pool; callers must Close it.
func getClient(opts *GlobalOptions) *client.Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = opts.Settings.APIBaseURL
	}

	return client.New(baseURL,
		client.WithTimeout(opts.Timeout),
		client.WithLogger(opts.Logger),
	)
}
