// internal/output/common.go
package output

import "strings"

// BaseTSVHeader is the fixed prefix of the text/TSV header row.
// Keep this as the single source of truth; rule columns are appended per run.
const BaseTSVHeader = "row\tresidue1\tresidue1_id\tresidue2\tresidue2_id\tdistance"

// HeaderTSV returns the full header row for a run, one extra column per rule.
func HeaderTSV(ruleNames []string) string {
	if len(ruleNames) == 0 {
		return BaseTSVHeader
	}
	return BaseTSVHeader + "\t" + strings.Join(ruleNames, "\t")
}
