// core/engine/engine.go

// Package engine walks every unique residue pair of a chain and evaluates
// proximity rules against the CA-CA distance. Enumeration order is the
// chain's file order with i < j, so output is deterministic and each
// unordered pair appears exactly once.
package engine

import (
	"gonum.org/v1/gonum/spatial/r3"

	"prip-core/pdb"
	"prip-core/residue"
	"prip-core/rule"
)

// ResidueRef identifies one side of an emitted pair the way reports render
// it.
type ResidueRef struct {
	Code  string
	SeqID string
}

// Pair is one surviving residue pair: both CA positions existed. Matched
// holds the names of the rules the pair satisfies, in rule order; a pair
// with no matches is still emitted.
type Pair struct {
	Residue1 ResidueRef
	Residue2 ResidueRef
	Distance float64
	Matched  []string
}

// Matches reports whether the pair satisfied the named rule.
func (p Pair) Matches(name string) bool {
	for _, m := range p.Matched {
		if m == name {
			return true
		}
	}
	return false
}

// matcher is one compiled rule: canonical three-letter membership sets plus
// the exclusive distance bound.
type matcher struct {
	name string
	grp1 map[string]bool
	grp2 map[string]bool
	max  float64
}

// match is symmetric in the residues and in the groups; the bound is
// strict, a pair at exactly max distance does not match.
func (m matcher) match(c1, c2 string, d float64) bool {
	if d >= m.max {
		return false
	}
	return (m.grp1[c1] && m.grp2[c2]) || (m.grp1[c2] && m.grp2[c1])
}

// Engine evaluates a fixed rule list over chains.
type Engine struct {
	rules []matcher
}

// New compiles the parsable rules in order. Unparsable rules are dropped
// here as well, so a caller passing an unfiltered list gets the same
// outcome: invalid rules contribute nothing.
func New(rules []rule.Rule) *Engine {
	e := &Engine{}
	for _, r := range rules {
		if !r.Valid {
			continue
		}
		e.rules = append(e.rules, matcher{
			name: r.Name,
			grp1: groupSet(r.Group1),
			grp2: groupSet(r.Group2),
			max:  r.MaxDistance,
		})
	}
	return e
}

// groupSet normalizes group tokens to three-letter codes. Structures name
// residues in three-letter form, so one-letter entries would otherwise
// never match.
func groupSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if three, ok := residue.Normalize(t); ok {
			set[three] = true
		}
	}
	return set
}

// RuleNames lists the compiled rule names in order.
func (e *Engine) RuleNames() []string {
	out := make([]string, len(e.rules))
	for i, m := range e.rules {
		out[i] = m.name
	}
	return out
}

// EvaluateChain emits every unique residue pair of ch in index order
// through visit. Residues without a CA position are skipped silently; that
// is a data condition, not an error. A visit error aborts the walk and is
// returned as-is.
func (e *Engine) EvaluateChain(ch *pdb.Chain, visit func(Pair) error) error {
	res := ch.Residues
	for i := 0; i < len(res); i++ {
		if res[i].CA == nil {
			continue
		}
		for j := i + 1; j < len(res); j++ {
			if res[j].CA == nil {
				continue
			}
			d := r3.Norm(r3.Sub(*res[i].CA, *res[j].CA))
			p := Pair{
				Residue1: ResidueRef{Code: res[i].Name, SeqID: res[i].SeqID()},
				Residue2: ResidueRef{Code: res[j].Name, SeqID: res[j].SeqID()},
				Distance: d,
			}
			for _, m := range e.rules {
				if m.match(res[i].Name, res[j].Name, d) {
					p.Matched = append(p.Matched, m.name)
				}
			}
			if err := visit(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// Evaluate collects the whole walk into a slice.
func (e *Engine) Evaluate(ch *pdb.Chain) []Pair {
	var out []Pair
	_ = e.EvaluateChain(ch, func(p Pair) error {
		out = append(out, p)
		return nil
	})
	return out
}
