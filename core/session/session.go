// core/session/session.go

// Package session ties a loaded structure, a rule set and the evaluator
// into one analysis lifecycle. A Session is not goroutine-safe: callers
// run one evaluation at a time.
package session

import (
	"errors"

	"prip-core/engine"
	"prip-core/pdb"
	"prip-core/report"
	"prip-core/rule"
)

// State is where the session is in its lifecycle. It is derived from what
// the session holds, so it can never desync from the data.
type State int

const (
	StateNoStructure State = iota
	StateStructureLoaded
	StateRuleConfigured
	StateEvaluated
)

func (s State) String() string {
	switch s {
	case StateNoStructure:
		return "NoStructure"
	case StateStructureLoaded:
		return "StructureLoaded"
	case StateRuleConfigured:
		return "RuleConfigured"
	case StateEvaluated:
		return "Evaluated"
	}
	return "Unknown"
}

// ErrNoStructure is returned by Run before any structure was loaded.
var ErrNoStructure = errors.New("no structure loaded")

// Session is the mutable analysis context. Rules may be configured before
// or after the structure; editing anything after a run drops the cached
// report, so a stale result can never be observed.
type Session struct {
	structure *pdb.Structure
	rules     *rule.Set

	model int    // requested model serial, 0 = first
	chain string // requested chain id, "" = first

	rep       *report.Report
	pairCount int
	runModel  int    // resolved on the last successful run
	runChain  string //
}

// New returns an empty session holding at most maxRules rules
// (rule.DefaultMaxRules when maxRules <= 0).
func New(maxRules int) *Session {
	return &Session{rules: rule.NewSet(maxRules)}
}

// State derives the lifecycle position from the session contents.
func (s *Session) State() State {
	switch {
	case s.structure == nil:
		return StateNoStructure
	case s.rep != nil:
		return StateEvaluated
	case s.rules.Len() > 0:
		return StateRuleConfigured
	}
	return StateStructureLoaded
}

// LoadStructure installs (or replaces) the structure. Selection and cached
// results reset; configured rules survive a reload.
func (s *Session) LoadStructure(st *pdb.Structure) {
	s.structure = st
	s.model = 0
	s.chain = ""
	s.invalidate()
}

// Structure returns the loaded structure, nil before LoadStructure.
func (s *Session) Structure() *pdb.Structure { return s.structure }

// AddRule appends a validated rule, honoring the set capacity.
func (s *Session) AddRule(r rule.Rule) error {
	if err := s.rules.Add(r); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// SetRules replaces the whole rule collection; the session owns the set
// afterwards.
func (s *Session) SetRules(set *rule.Set) {
	s.rules = set
	s.invalidate()
}

// ClearRules drops all rules, keeping the capacity.
func (s *Session) ClearRules() {
	s.rules.Clear()
	s.invalidate()
}

// Rules returns all configured rules in insertion order.
func (s *Session) Rules() []rule.Rule { return s.rules.Rules() }

// ValidRules returns the parsable rules in insertion order.
func (s *Session) ValidRules() []rule.Rule { return s.rules.Valid() }

// InvalidRules returns the unparsable rules in insertion order.
func (s *Session) InvalidRules() []rule.Rule { return s.rules.Invalid() }

// MaxRules is the rule-slot capacity.
func (s *Session) MaxRules() int { return s.rules.Max() }

// SelectModel requests a model serial for the next run; 0 selects the
// first model.
func (s *Session) SelectModel(serial int) {
	s.model = serial
	s.invalidate()
}

// SelectChain requests a chain id for the next run; "" selects the first
// chain of the selected model.
func (s *Session) SelectChain(id string) {
	s.chain = id
	s.invalidate()
}

// Run resolves the selection, walks all residue pairs and caches the
// aggregated report. visit (optional) sees every pair in enumeration
// order; a visit error aborts the run, leaving no cached report. A
// selection miss aborts wholesale with a *pdb.SelectionError and the
// session state is untouched.
func (s *Session) Run(visit func(engine.Pair) error) (*report.Report, error) {
	if s.structure == nil {
		return nil, ErrNoStructure
	}
	m, ch, err := s.structure.Select(s.model, s.chain)
	if err != nil {
		return nil, err
	}

	eng := engine.New(s.rules.Rules())
	var pairs []engine.Pair
	walk := func(p engine.Pair) error {
		pairs = append(pairs, p)
		if visit != nil {
			return visit(p)
		}
		return nil
	}
	if err := eng.EvaluateChain(ch, walk); err != nil {
		return nil, err
	}

	s.rep = report.Build(pairs, s.rules.Rules())
	s.pairCount = len(pairs)
	s.runModel = m.Serial
	s.runChain = ch.ID
	return s.rep, nil
}

// Report returns the cached result of the last run, nil when the session
// is not in StateEvaluated.
func (s *Session) Report() *report.Report { return s.rep }

// PairCount is the number of pairs emitted by the last run.
func (s *Session) PairCount() int { return s.pairCount }

// Selection reports the model serial and chain id resolved by the last
// successful run.
func (s *Session) Selection() (model int, chain string) { return s.runModel, s.runChain }

func (s *Session) invalidate() {
	s.rep = nil
	s.pairCount = 0
}
