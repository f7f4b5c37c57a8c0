// core/pdb/select.go
package pdb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSelection marks every model/chain lookup failure; match it with
// errors.Is when only the category matters.
var ErrSelection = errors.New("selection unavailable")

// SelectionError reports a model or chain that the structure does not have,
// along with what it does have. Evaluation aborts wholesale on it, there is
// no partial output.
type SelectionError struct {
	Kind string // "model" or "chain"
	Want string // requested id, "" when the structure is empty
	Have []string
}

func (e *SelectionError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("structure has no %ss", e.Kind)
	}
	if len(e.Have) == 0 {
		return fmt.Sprintf("%s %s unavailable (structure has none)", e.Kind, e.Want)
	}
	return fmt.Sprintf("%s %s unavailable (have: %s)", e.Kind, e.Want, strings.Join(e.Have, ", "))
}

func (e *SelectionError) Unwrap() error { return ErrSelection }

// ModelSerials lists serial numbers in file order.
func (s *Structure) ModelSerials() []int {
	out := make([]int, len(s.Models))
	for i := range s.Models {
		out[i] = s.Models[i].Serial
	}
	return out
}

// Model returns the model with the given serial number.
func (s *Structure) Model(serial int) (*Model, error) {
	for i := range s.Models {
		if s.Models[i].Serial == serial {
			return &s.Models[i], nil
		}
	}
	have := make([]string, len(s.Models))
	for i, n := range s.ModelSerials() {
		have[i] = strconv.Itoa(n)
	}
	return nil, &SelectionError{Kind: "model", Want: strconv.Itoa(serial), Have: have}
}

// DefaultModel returns the first model in file order.
func (s *Structure) DefaultModel() (*Model, error) {
	if len(s.Models) == 0 {
		return nil, &SelectionError{Kind: "model"}
	}
	return &s.Models[0], nil
}

// ChainIDs lists chain identifiers in file order.
func (m *Model) ChainIDs() []string {
	out := make([]string, len(m.Chains))
	for i := range m.Chains {
		out[i] = m.Chains[i].ID
	}
	return out
}

// Chain returns the chain with the given id.
func (m *Model) Chain(id string) (*Chain, error) {
	for i := range m.Chains {
		if m.Chains[i].ID == id {
			return &m.Chains[i], nil
		}
	}
	return nil, &SelectionError{Kind: "chain", Want: id, Have: m.ChainIDs()}
}

// DefaultChain returns the first chain of the model.
func (m *Model) DefaultChain() (*Chain, error) {
	if len(m.Chains) == 0 {
		return nil, &SelectionError{Kind: "chain"}
	}
	return &m.Chains[0], nil
}

// Select resolves a model/chain request in one step: serial 0 means the
// first model, chain "" the first chain of the resolved model.
func (s *Structure) Select(serial int, chain string) (*Model, *Chain, error) {
	var (
		m   *Model
		err error
	)
	if serial == 0 {
		m, err = s.DefaultModel()
	} else {
		m, err = s.Model(serial)
	}
	if err != nil {
		return nil, nil, err
	}
	var ch *Chain
	if chain == "" {
		ch, err = m.DefaultChain()
	} else {
		ch, err = m.Chain(chain)
	}
	if err != nil {
		return nil, nil, err
	}
	return m, ch, nil
}
