// internal/output/summary.go
package output

import (
	"io"

	"prip-core/report"
)

// WriteSummary prints the per-rule match count block, e.g.
//
//	Matches:
//	Salt bridge: 3
func WriteSummary(w io.Writer, rep *report.Report) error {
	_, err := io.WriteString(w, rep.Summary)
	return err
}
