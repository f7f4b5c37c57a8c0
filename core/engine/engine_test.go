// core/engine/engine_test.go
package engine

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"prip-core/pdb"
	"prip-core/rule"
)

func res(name string, seq int, x, y, z float64) pdb.Residue {
	return pdb.Residue{Name: name, SeqNum: seq, CA: &r3.Vec{X: x, Y: y, Z: z}}
}

func resNoCA(name string, seq int) pdb.Residue {
	return pdb.Residue{Name: name, SeqNum: seq}
}

func mustRule(t *testing.T, pos int, name, g1, g2, dist string) rule.Rule {
	t.Helper()
	r := rule.Validate(pos, name, g1, g2, dist)
	if !r.Valid {
		t.Fatalf("fixture rule %q invalid: %v", name, r.Problems)
	}
	return r
}

// The worked scenario: three residues with pairwise distances 3, 5 and 4,
// one rule with a 4.0 bound. Exactly the (ALA 1, GLY 2) pair matches.
func TestEvaluateScenario(t *testing.T) {
	ch := &pdb.Chain{ID: "A", Residues: []pdb.Residue{
		res("ALA", 1, 0, 0, 0),
		res("GLY", 2, 3, 0, 0),
		res("SER", 3, 3, 4, 0),
	}}
	e := New([]rule.Rule{mustRule(t, 1, "R1", "ALA", "GLY,SER", "4.0")})

	pairs := e.Evaluate(ch)
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}

	want := []struct {
		r1, r2  string
		d       float64
		matched bool
	}{
		{"ALA", "GLY", 3.0, true},
		{"ALA", "SER", 5.0, false},
		{"GLY", "SER", 4.0, false}, // both in group2, and the bound is strict
	}
	for i, w := range want {
		p := pairs[i]
		if p.Residue1.Code != w.r1 || p.Residue2.Code != w.r2 {
			t.Errorf("pair %d = %s-%s, want %s-%s", i, p.Residue1.Code, p.Residue2.Code, w.r1, w.r2)
		}
		if p.Distance != w.d {
			t.Errorf("pair %d distance = %v, want %v", i, p.Distance, w.d)
		}
		if p.Matches("R1") != w.matched {
			t.Errorf("pair %d matched = %v, want %v", i, !w.matched, w.matched)
		}
	}
	if pairs[0].Residue1.SeqID != "1" || pairs[0].Residue2.SeqID != "2" {
		t.Errorf("pair 0 ids = %s,%s", pairs[0].Residue1.SeqID, pairs[0].Residue2.SeqID)
	}
}

func TestStrictBoundary(t *testing.T) {
	ch := &pdb.Chain{Residues: []pdb.Residue{
		res("ALA", 1, 0, 0, 0),
		res("GLY", 2, 4, 0, 0),
	}}
	at := New([]rule.Rule{mustRule(t, 1, "edge", "ALA", "GLY", "4")})
	if got := at.Evaluate(ch); len(got) != 1 || got[0].Matches("edge") {
		t.Fatalf("distance == max must not match: %+v", got)
	}
	over := New([]rule.Rule{mustRule(t, 1, "edge", "ALA", "GLY", "4.0001")})
	if got := over.Evaluate(ch); !got[0].Matches("edge") {
		t.Fatalf("distance just under max must match: %+v", got)
	}
}

func TestGroupOrderIrrelevant(t *testing.T) {
	ch := &pdb.Chain{Residues: []pdb.Residue{
		res("GLY", 1, 0, 0, 0), // the group2 code comes first on the chain
		res("ALA", 2, 1, 0, 0),
	}}
	e := New([]rule.Rule{mustRule(t, 1, "sym", "ALA", "GLY", "2")})
	pairs := e.Evaluate(ch)
	if len(pairs) != 1 || !pairs[0].Matches("sym") {
		t.Fatalf("chain order must not matter, got %+v", pairs)
	}

	flipped := New([]rule.Rule{mustRule(t, 1, "sym", "GLY", "ALA", "2")})
	if got := flipped.Evaluate(ch); !got[0].Matches("sym") {
		t.Fatalf("rule with swapped groups should match identically: %+v", got)
	}
}

func TestOneLetterGroupCodesMatch(t *testing.T) {
	ch := &pdb.Chain{Residues: []pdb.Residue{
		res("ALA", 1, 0, 0, 0),
		res("GLY", 2, 1, 0, 0),
	}}
	e := New([]rule.Rule{mustRule(t, 1, "short", "A", "G", "2")})
	pairs := e.Evaluate(ch)
	if len(pairs) != 1 || !pairs[0].Matches("short") {
		t.Fatalf("one-letter group codes must be normalized for matching: %+v", pairs)
	}
}

func TestCompleteness(t *testing.T) {
	var rs []pdb.Residue
	for i := 0; i < 7; i++ {
		rs = append(rs, res("ALA", i+1, float64(i), 0, 0))
	}
	ch := &pdb.Chain{Residues: rs}
	pairs := New(nil).Evaluate(ch)
	if want := 7 * 6 / 2; len(pairs) != want {
		t.Fatalf("got %d pairs, want %d", len(pairs), want)
	}
	seen := map[string]bool{}
	for _, p := range pairs {
		key := p.Residue1.SeqID + "-" + p.Residue2.SeqID
		if seen[key] {
			t.Fatalf("duplicate pair %s", key)
		}
		seen[key] = true
	}
}

func TestMissingCASkipped(t *testing.T) {
	ch := &pdb.Chain{Residues: []pdb.Residue{
		res("ALA", 1, 0, 0, 0),
		resNoCA("GLY", 2),
		res("SER", 3, 1, 0, 0),
	}}
	pairs := New(nil).Evaluate(ch)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1 (GLY has no CA)", len(pairs))
	}
	if pairs[0].Residue1.Code != "ALA" || pairs[0].Residue2.Code != "SER" {
		t.Errorf("pair = %+v", pairs[0])
	}
}

func TestInvalidRulesDropped(t *testing.T) {
	bad := rule.Validate(1, "bad", "ZZZ", "GLY", "3")
	if bad.Valid {
		t.Fatal("fixture should be invalid")
	}
	e := New([]rule.Rule{bad, mustRule(t, 2, "good", "ALA", "GLY", "3")})
	if got := e.RuleNames(); !reflect.DeepEqual(got, []string{"good"}) {
		t.Fatalf("RuleNames = %v", got)
	}
}

func TestVisitErrorAborts(t *testing.T) {
	var rs []pdb.Residue
	for i := 0; i < 5; i++ {
		rs = append(rs, res("ALA", i+1, float64(i), 0, 0))
	}
	ch := &pdb.Chain{Residues: rs}
	stop := errors.New("stop")
	n := 0
	err := New(nil).EvaluateChain(ch, func(Pair) error {
		n++
		if n == 3 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("err = %v, want stop", err)
	}
	if n != 3 {
		t.Fatalf("visit called %d times after abort, want 3", n)
	}
}

func TestDeterministicOrder(t *testing.T) {
	ch := &pdb.Chain{Residues: []pdb.Residue{
		res("ALA", 1, 0, 0, 0),
		res("GLY", 2, 1, 0, 0),
		res("SER", 3, 2, 0, 0),
		res("TRP", 4, 3, 0, 0),
	}}
	e := New([]rule.Rule{mustRule(t, 1, "r", "ALA,GLY,SER,TRP", "ALA,GLY,SER,TRP", "10")})
	first := fmt.Sprintf("%+v", e.Evaluate(ch))
	for i := 0; i < 3; i++ {
		if again := fmt.Sprintf("%+v", e.Evaluate(ch)); again != first {
			t.Fatalf("run %d differs:\n%s\n%s", i, first, again)
		}
	}
}
