// core/rule/set.go
package rule

import "errors"

// DefaultMaxRules is the rule-slot capacity used when callers pass none.
const DefaultMaxRules = 12

// ErrCapacity is returned by Set.Add once the set is full.
var ErrCapacity = errors.New("rule capacity reached")

// Set is an ordered, capacity-bounded rule collection. Insertion order is
// load-bearing: it fixes report column order and sheet order.
type Set struct {
	max   int
	rules []Rule
}

// NewSet returns an empty set holding at most max rules; max <= 0 selects
// DefaultMaxRules.
func NewSet(max int) *Set {
	if max <= 0 {
		max = DefaultMaxRules
	}
	return &Set{max: max}
}

// Add appends r, or returns ErrCapacity when the set is full.
func (s *Set) Add(r Rule) error {
	if len(s.rules) >= s.max {
		return ErrCapacity
	}
	s.rules = append(s.rules, r)
	return nil
}

func (s *Set) Len() int { return len(s.rules) }
func (s *Set) Max() int { return s.max }

// Clear drops all rules, keeping the capacity.
func (s *Set) Clear() { s.rules = nil }

// Rules returns a copy of all rules in insertion order.
func (s *Set) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Valid returns the parsable rules in insertion order.
func (s *Set) Valid() []Rule {
	var out []Rule
	for _, r := range s.rules {
		if r.Valid {
			out = append(out, r)
		}
	}
	return out
}

// Invalid returns the unparsable rules in insertion order.
func (s *Set) Invalid() []Rule {
	var out []Rule
	for _, r := range s.rules {
		if !r.Valid {
			out = append(out, r)
		}
	}
	return out
}
