// internal/visitors/matched.go
package visitors

import "prip-core/engine"

// MatchedOnly keeps only pairs that satisfied at least one rule.
type MatchedOnly struct{}

func (MatchedOnly) Visit(p engine.Pair) (keep bool, out engine.Pair, err error) {
	return len(p.Matched) > 0, p, nil
}
