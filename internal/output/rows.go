// internal/output/rows.go
package output

import (
	"fmt"
	"strings"

	"prip-core/engine"
)

// FormatPairTSV returns one table row (no trailing newline). row is the
// 1-based row number within the table being rendered; rule columns carry
// "X" when the pair satisfies that rule and stay empty otherwise.
func FormatPairTSV(row int, p engine.Pair, ruleNames []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\t%s\t%s\t%s\t%s\t%.3f",
		row,
		p.Residue1.Code, p.Residue1.SeqID,
		p.Residue2.Code, p.Residue2.SeqID,
		p.Distance,
	)
	for _, name := range ruleNames {
		b.WriteByte('\t')
		if p.Matches(name) {
			b.WriteByte('X')
		}
	}
	return b.String()
}
