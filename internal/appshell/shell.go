// internal/appshell/shell.go

// Package appshell is the process wrapper shared by the prip binaries:
// it wires OS signals into a context, hands stdio to the application,
// and turns the returned code into the process exit status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is an application entry point: argv excludes the program name.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// ExitCanceled is the exit status after SIGINT/SIGTERM, unless the app
// already chose a nonzero code.
const ExitCanceled = 130

// Main runs the application with signal-aware cancellation. It does not
// return. Empty argv is passed through as-is: prip answers it with usage,
// prip-rules lints its default file.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = ExitCanceled
	}

	// os.Exit skips deferred calls, so release the signal handler first.
	stop()
	os.Exit(code)
}
