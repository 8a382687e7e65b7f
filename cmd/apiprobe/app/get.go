package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// GetOptions holds options for the get command
type GetOptions struct {
	*GlobalOptions

	// Params are the raw KEY=VALUE tokens from repeated --params flags.
	Params []string
}

// NewGetCommand creates the get command.
//
// The get command issues a GET request with optional query parameters
// and prints the raw JSON response body. Unlike ping, request failures
// are loud: the command prints an error object and exits non-zero.
//
// Usage:
//
//	apiprobe get [--params KEY=VALUE ...]
//
// Each --params token is coerced to a typed value before being sent:
// "true"/"false" become booleans, all-digit values become integers,
// values with exactly one dot and digits otherwise become floats, and
// everything else stays a string. Malformed tokens abort the command
// before any network call.
//
// Parameters:
//   - globalOpts: Global options shared across commands
//
// Returns:
//   - A configured cobra.Command for the GET operation
func NewGetCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &GetOptions{
		GlobalOptions: globalOpts,
	}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Make a GET request with optional parameters",
		Long: `Make a GET request against {base_url}/get and print the JSON response.

Query parameters are passed as repeatable --params KEY=VALUE flags and
are coerced to booleans, integers, floats, or strings. On duplicate
keys the last occurrence wins.`,
		Example: `  # Plain request
  apiprobe get

  # Typed query parameters
  apiprobe get --params name=alice --params count=3 --params debug=true`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Params, "params", nil,
		"query parameter as KEY=VALUE (repeatable; last value wins on duplicate keys)")

	return cmd
}

// runGet executes the get command logic.
func runGet(ctx context.Context, opts *GetOptions) error {
	params, err := ParseParams(opts.Params)
	if err != nil {
		opts.Logger.Error("parameter parsing error", zap.Error(err))
		return err
	}

	opts.Logger.Info("executing get command", zap.Any("params", params))

	c := getClient(opts.GlobalOptions)
	defer c.Close()

	result, err := c.GetWithParams(ctx, params)
	if err != nil {
		opts.Logger.Error("get command failed", zap.Error(err))
		if perr := printJSON(os.Stdout, errorEnvelope{Error: err.Error()}); perr != nil {
			return perr
		}
		return exitError{code: 1}
	}

	return printJSON(os.Stdout, result)
}

// errorEnvelope is the JSON object printed when a request fails.
type errorEnvelope struct {
	Error string `json:"error"`
}
