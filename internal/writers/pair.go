// internal/writers/pair.go
package writers

import (
	"fmt"
	"io"

	"prip-core/engine"
	"prip-core/report"
	"prip-core/rule"
	"prip/internal/output"
)

// Config tells a pair writer how to render its stream.
type Config struct {
	Format    string
	Header    bool
	Rules     []rule.Rule    // full set, parsable or not
	RuleNames []string       // marker column order, parsable rules only
	Meta      output.RunMeta // report metadata for the json format
}

// StartPairWriter spins up a writer goroutine for evaluated pairs.
// text and jsonl stream; json and summary buffer until the channel closes
// because they need the whole table.
func StartPairWriter(out io.Writer, cfg Config, bufSize int) (chan<- engine.Pair, <-chan error) {
	if cfg.Format == output.FormatJSONL {
		return StartPairJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Pair, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch cfg.Format {
		case output.FormatText:
			err = output.StreamText(out, in, cfg.RuleNames, cfg.Header)

		case output.FormatJSON:
			var buf []engine.Pair
			for p := range in {
				buf = append(buf, p)
			}
			rep := report.Build(buf, cfg.Rules)
			err = output.WriteReportJSON(out, output.BuildReportV1(cfg.Meta, rep, cfg.Rules))

		case output.FormatSummary:
			var buf []engine.Pair
			for p := range in {
				buf = append(buf, p)
			}
			err = output.WriteSummary(out, report.Build(buf, cfg.Rules))

		default:
			err = fmt.Errorf("unsupported output %q", cfg.Format)
		}
		// Keep consuming after an early failure so the producer can
		// finish instead of blocking on a full channel.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
