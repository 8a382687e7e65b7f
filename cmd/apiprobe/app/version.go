package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, set at build time via -ldflags, e.g.:
//
//	-ldflags "-X 'github.com/apiprobe/apiprobe/cmd/apiprobe/app.Version=1.2.3'"
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "none"
)

// VersionOptions holds options for the version command
type VersionOptions struct {
	*GlobalOptions

	// JSON prints version information as a JSON document
	JSON bool
}

// NewVersionCommand creates the version command.
//
// Usage:
//
//	apiprobe version [--json]
//
// Parameters:
//   - globalOpts: Global options shared across commands
//
// Returns:
//   - A configured cobra.Command for displaying version info
func NewVersionCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &VersionOptions{
		GlobalOptions: globalOpts,
	}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false,
		"print version information as JSON")

	return cmd
}

// runVersion executes the version command logic.
func runVersion(opts *VersionOptions) error {
	if opts.JSON {
		return printJSON(os.Stdout, map[string]any{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
			"go":         runtime.Version(),
			"go_os":      runtime.GOOS,
			"go_arch":    runtime.GOARCH,
		})
	}

	fmt.Println("Client Version:")
	fmt.Printf("  Version:    %s\n", Version)
	fmt.Printf("  Build Time: %s\n", BuildTime)
	fmt.Printf("  Git Commit: %s\n", GitCommit)
	return nil
}
