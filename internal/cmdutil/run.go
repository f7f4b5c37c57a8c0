// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"prip-core/engine"
	"prip-core/report"
	"prip-core/session"
)

// RunStream evaluates the selected chain, applies a visitor to every pair,
// and streams kept outputs via send. It returns the finished report, the
// number of outputs sent, and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	ses *session.Session,
	visit func(engine.Pair) (bool, T, error),
	send func(T) error,
) (*report.Report, int, error) {
	total := 0
	rep, err := ses.Run(func(p engine.Pair) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		keep, out, vErr := visit(p)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return rep, total, err
}
