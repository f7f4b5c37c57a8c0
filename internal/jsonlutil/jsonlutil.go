// internal/jsonlutil/jsonlutil.go

// Package jsonlutil runs the encoder goroutine behind every JSONL stream
// the prip tools emit.
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// Start launches a writer goroutine that encodes each received value as
// one JSON line. encode converts a value to its wire form and writes it;
// isBroken recognizes broken-pipe errors, which are reported as success
// (a downstream `head` closing early is not a failure). The error channel
// yields exactly once, after the input channel closes or encoding stops.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)

		var err error
		for v := range in {
			if err = encode(enc, v); err != nil {
				break
			}
		}
		// Keep consuming after a mid-stream failure so the producer can
		// finish instead of blocking on a full channel.
		for range in {
		}
		if err == nil {
			err = bw.Flush()
		}
		if isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
