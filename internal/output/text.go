// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"prip-core/engine"
)

// WriteText prints one row per pair, in slice order.
func WriteText(w io.Writer, list []engine.Pair, ruleNames []string, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, HeaderTSV(ruleNames)); err != nil {
			return err
		}
	}
	for i, p := range list {
		if _, err := fmt.Fprintln(w, FormatPairTSV(i+1, p, ruleNames)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText renders pairs as they arrive; rows are numbered in arrival
// order, so a filtered stream still counts 1..n.
func StreamText(w io.Writer, in <-chan engine.Pair, ruleNames []string, header bool) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	if header {
		if _, err := fmt.Fprintln(bw, HeaderTSV(ruleNames)); err != nil {
			return err
		}
	}
	n := 0
	for p := range in {
		n++
		if _, err := fmt.Fprintln(bw, FormatPairTSV(n, p, ruleNames)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
