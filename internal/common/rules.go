// internal/common/rules.go
package common

import (
	"fmt"
	"strings"

	"prip-core/rule"
)

// Describe renders one rule's validation outcome for diagnostics, e.g.
//
//	rule 1 (Salt bridge): ok
//	rule 2 (Broken): distance "close" is not a number
//
// position is the rule's 1-based slot in its set.
func Describe(position int, r rule.Rule) string {
	if r.Valid {
		return fmt.Sprintf("rule %d (%s): ok", position, r.Name)
	}
	return fmt.Sprintf("rule %d (%s): %s", position, r.Name, strings.Join(r.Problems, "; "))
}

// GroupText joins group tokens back into the comma form they were entered in.
func GroupText(tokens []string) string {
	return strings.Join(tokens, ",")
}
