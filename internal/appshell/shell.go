// Package appshell runs a CLI entrypoint under an interrupt-aware context.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitInterrupted is returned when SIGINT/SIGTERM stopped the run.
const ExitInterrupted = 130

// RunFunc is a CLI body: argv in, exit code out.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main calls run with the process arguments and exits with its code.
// SIGINT or SIGTERM cancels ctx.
func Main(run RunFunc) {
	os.Exit(Exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

// Exec is Main without os.Exit.
func Exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = ExitInterrupted
	}
	return code
}
