// Command apiprobe is a CLI client for HTTP JSON echo services.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/apiprobe/apiprobe/cmd/apiprobe/app"
)

const exitCodeInterrupt = 130

// exitCoder lets errors choose the process exit code.
type exitCoder interface {
	ExitCode() int
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := app.NewAPIProbeCommand()
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "Operation cancelled by user")
		return exitCodeInterrupt
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		fmt.Fprintln(os.Stderr, "Error: "+msg)
	}

	var ec exitCoder
	if errors.As(err, &ec) && ec.ExitCode() != 0 {
		return ec.ExitCode()
	}
	return 1
}
