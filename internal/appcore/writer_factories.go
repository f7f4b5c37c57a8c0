// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"prip-core/engine"
	"prip/internal/writers"
)

// pairWriterFactory adapts the shared pair writer to the generic run loop.
type pairWriterFactory struct {
	cfg writers.Config
}

// NewPairWriterFactory returns a factory that renders pairs in the format
// named by cfg (text, json, jsonl or summary).
func NewPairWriterFactory(cfg writers.Config) WriterFactory[engine.Pair] {
	return pairWriterFactory{cfg: cfg}
}

func (f pairWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Pair, <-chan error) {
	return writers.StartPairWriter(out, f.cfg, bufSize)
}
