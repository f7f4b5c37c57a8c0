// internal/visitors/visitors_test.go
package visitors

import (
	"testing"

	"prip-core/engine"
)

func TestPassThroughKeepsEverything(t *testing.T) {
	for _, p := range []engine.Pair{
		{Distance: 3.0, Matched: []string{"r"}},
		{Distance: 9.5},
	} {
		keep, out, err := PassThrough{}.Visit(p)
		if err != nil || !keep {
			t.Fatalf("PassThrough(%+v) = %v, %v", p, keep, err)
		}
		if out.Distance != p.Distance {
			t.Errorf("pair altered: %+v", out)
		}
	}
}

func TestMatchedOnlyFilters(t *testing.T) {
	keep, _, _ := MatchedOnly{}.Visit(engine.Pair{Matched: []string{"r"}})
	if !keep {
		t.Error("matched pair dropped")
	}
	keep, _, _ = MatchedOnly{}.Visit(engine.Pair{})
	if keep {
		t.Error("unmatched pair kept")
	}
}
