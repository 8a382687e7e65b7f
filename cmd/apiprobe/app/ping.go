package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewPingCommand creates the ping command.
//
// The ping command performs a best-effort connectivity check against the
// configured API and prints the resulting envelope as JSON. The check
// never aborts with a raw error: failures are reported inside the
// envelope, and the exit code reflects the outcome.
//
// Usage:
//
//	apiprobe ping
//
// Exit codes:
//   - 0 when the endpoint answered with a 2xx status
//   - 1 otherwise
//
// Parameters:
//   - globalOpts: Global options shared across commands
//
// Returns:
//   - A configured cobra.Command for the connectivity check
func NewPingCommand(globalOpts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Test connection to the API",
		Long: `Test connectivity to the configured API base URL.

Issues a GET request against {base_url}/get and prints a JSON envelope
with the status code, response headers, and a diagnostic message. The
command never fails with a raw error; unreachable endpoints produce a
structured failure envelope and exit code 1.`,
		Example: `  # Check the default endpoint
  apiprobe ping

  # Check a specific endpoint
  apiprobe --base-url https://httpbin.org ping`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPing(cmd.Context(), globalOpts)
		},
	}

	return cmd
}

// runPing executes the ping command logic.
func runPing(ctx context.Context, opts *GlobalOptions) error {
	opts.Logger.Info("executing ping command")

	c := getClient(opts)
	defer c.Close()

	result := c.Ping(ctx)
	if err := printJSON(os.Stdout, result); err != nil {
		return err
	}

	if !result.Success {
		opts.Logger.Error("ping failed", zap.String("message", result.Message))
		return exitError{code: 1}
	}
	return nil
}
