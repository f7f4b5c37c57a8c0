// core/rule/rule.go

// Package rule holds proximity rules: two amino-acid groups plus a maximum
// CA-CA distance. Rules come from raw user text and are never rejected
// outright; validation marks them parsable or not and a rule set carries
// both kinds, only parsable ones reach the matcher.
package rule

import (
	"fmt"
	"strconv"
	"strings"

	"prip-core/residue"
)

// Rule is one proximity criterion. Group tokens are kept as entered
// (trimmed, upper-cased) so a saved rule reads back the way it was typed;
// matching normalizes them separately.
type Rule struct {
	Name        string
	Group1      []string
	Group2      []string
	MaxDistance float64 // set only when Valid
	RawDistance string  // distance text as entered
	Valid       bool
	Problems    []string
}

// Validate builds a Rule from raw user input. position is the rule's
// 1-based slot, used to synthesize "Rule N" names. It never fails: every
// problem is collected on the rule and Valid is cleared, so the caller can
// show all of them at once.
func Validate(position int, name, group1, group2, distance string) Rule {
	r := Rule{Name: strings.TrimSpace(name)}
	if r.Name == "" {
		r.Name = fmt.Sprintf("Rule %d", position)
	}

	var problems []string
	r.Group1, problems = cleanGroup(1, group1, problems)
	r.Group2, problems = cleanGroup(2, group2, problems)

	r.RawDistance = strings.TrimSpace(distance)
	d, err := strconv.ParseFloat(r.RawDistance, 64)
	switch {
	case err != nil:
		problems = append(problems, fmt.Sprintf("distance %q is not a number", r.RawDistance))
	case d <= 0:
		problems = append(problems, fmt.Sprintf("distance must be positive, got %s", r.RawDistance))
	default:
		r.MaxDistance = d
	}

	r.Problems = problems
	r.Valid = len(problems) == 0
	return r
}

// cleanGroup splits a comma-separated group, trims and upper-cases tokens,
// and drops empties. Every unknown code is reported, not just the first.
func cleanGroup(n int, raw string, problems []string) ([]string, []string) {
	var tokens []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
		if !residue.Accepted(tok) {
			problems = append(problems, fmt.Sprintf("group %d: unknown amino acid %q", n, tok))
		}
	}
	if len(tokens) == 0 {
		problems = append(problems, fmt.Sprintf("group %d is empty", n))
	}
	return tokens, problems
}
