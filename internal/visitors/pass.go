// internal/visitors/pass.go

// Package visitors holds the per-pair filters the run loop applies before
// a pair reaches the writer.
package visitors

import "prip-core/engine"

// PassThrough emits every evaluated pair unchanged.
type PassThrough struct{}

func (PassThrough) Visit(p engine.Pair) (keep bool, out engine.Pair, err error) {
	return true, p, nil
}
