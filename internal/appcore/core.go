// internal/appcore/core.go

// Package appcore is the shared run loop behind the prip binaries: it
// drives a session's pairwise evaluation, streams kept pairs through a
// writer goroutine, and maps every failure mode onto the tool's exit
// codes (0 ok, 2 bad selection, 3 write/runtime, 130 canceled).
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"prip-core/engine"
	"prip-core/pdb"
	"prip-core/report"
	"prip-core/session"
	"prip/internal/cmdutil"
	"prip/internal/writers"
)

// Options carries the run knobs that survive CLI parsing.
type Options struct {
	Quiet           bool
	NoMatchExitCode int // exit code when no rule matched anything

	// BufSize is the writer channel capacity; <= 0 selects a default.
	BufSize int

	// Post runs after a successful evaluation with the finished report,
	// before the exit code is decided. Export and history hooks go here;
	// a Post error exits 3.
	Post func(*report.Report) error
}

// VisitorFunc inspects one evaluated pair and decides what (if anything)
// the writer should receive for it.
type VisitorFunc[T any] func(engine.Pair) (keep bool, out T, err error)

// WriterFactory starts the output goroutine for a run.
type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run evaluates ses and streams the result. The session must be fully
// configured (structure, rules, selection) before the call.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	ses *session.Session,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	bufSize := o.BufSize
	if bufSize <= 0 {
		bufSize = 64
	}
	inCh, writeErr := wf.Start(outw, bufSize)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	rep, _, perr := cmdutil.RunStream[T](ctx, ses, visit, func(x T) error {
		select {
		case inCh <- x:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		if errors.Is(perr, pdb.ErrSelection) || errors.Is(perr, session.ErrNoStructure) {
			return 2
		}
		return 3
	}

	if o.Post != nil {
		if err := o.Post(rep); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if rep.MatchTotal() == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
