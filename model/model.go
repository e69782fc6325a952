// Package model implements the immutable Kripke structure the ctl solver
// evaluates formulas against: an indexed set of states, each labeled with
// the atomic propositions true there, plus the successor/predecessor
// adjacency derived from the caller's edge specification.
package model

import "fmt"

// Label is the set of atomic propositions true at a state.
type Label map[string]struct{}

// NewLabel builds a Label from a list of propositions.
func NewLabel(props ...string) Label {
	l := make(Label, len(props))
	for _, p := range props {
		l[p] = struct{}{}
	}
	return l
}

// Has reports whether p is true in the label.
func (l Label) Has(p string) bool {
	_, ok := l[p]
	return ok
}

// State is a named vertex of a Kripke structure together with the atomic
// propositions that hold there. Names must be non-empty and unique within
// a Model; labels are immutable once the Model is built.
type State struct {
	Name  string
	Label Label
}

// NewState builds a State, copying props into a fresh Label.
func NewState(name string, props ...string) State {
	return State{Name: name, Label: NewLabel(props...)}
}

// ErrDuplicateStateName is returned by New when two states share a name.
type ErrDuplicateStateName struct {
	Name string
}

func (e *ErrDuplicateStateName) Error() string {
	return fmt.Sprintf("model: duplicate state name %q", e.Name)
}

// ErrUnknownStateName is returned by New when an edge refers to a state
// name that was never declared.
type ErrUnknownStateName struct {
	Name string
}

func (e *ErrUnknownStateName) Error() string {
	return fmt.Sprintf("model: unknown state name %q", e.Name)
}

// Model is a finite, immutable Kripke structure. States are indexed
// 0..N-1 in the order they were supplied to New; succ/pred are computed
// once at construction and never mutated afterward (no incremental
// model mutation, per spec).
type Model struct {
	states      []State
	nameToIndex map[string]int
	succ        [][]int
	pred        [][]int
}

// New builds a Model from an ordered list of states and an edge
// specification mapping a state name to the names of its successors.
//
// It fails with *ErrDuplicateStateName if two states share a name, or
// *ErrUnknownStateName if an edge (on either side) names a state that
// wasn't declared in states.
func New(states []State, edges map[string][]string) (*Model, error) {
	nameToIndex := make(map[string]int, len(states))
	for i, s := range states {
		if _, exists := nameToIndex[s.Name]; exists {
			return nil, &ErrDuplicateStateName{Name: s.Name}
		}
		nameToIndex[s.Name] = i
	}

	succ := make([][]int, len(states))
	for from, tos := range edges {
		fromIdx, ok := nameToIndex[from]
		if !ok {
			return nil, &ErrUnknownStateName{Name: from}
		}
		for _, to := range tos {
			toIdx, ok := nameToIndex[to]
			if !ok {
				return nil, &ErrUnknownStateName{Name: to}
			}
			succ[fromIdx] = append(succ[fromIdx], toIdx)
		}
	}

	pred := make([][]int, len(states))
	for from, tos := range succ {
		for _, to := range tos {
			pred[to] = append(pred[to], from)
		}
	}

	return &Model{
		states:      states,
		nameToIndex: nameToIndex,
		succ:        succ,
		pred:        pred,
	}, nil
}

// Len returns the number of states.
func (m *Model) Len() int { return len(m.states) }

// State returns the state at index i. Panics if i is out of range --
// callers only ever hold indexes handed out by this Model, which are
// always valid by construction.
func (m *Model) State(i int) State { return m.states[i] }

// IndexOf returns the index of the named state and whether it was found.
func (m *Model) IndexOf(name string) (int, bool) {
	i, ok := m.nameToIndex[name]
	return i, ok
}

// Succ returns the successor indices of state i.
func (m *Model) Succ(i int) []int { return m.succ[i] }

// Pred returns the predecessor indices of state i.
func (m *Model) Pred(i int) []int { return m.pred[i] }

// IndexSet is a set of state indexes, the internal currency of every
// query below. Set operations over ints are cheap and allocation-light
// compared to threading names through the solver's hot fixed-point loops.
type IndexSet map[int]struct{}

// NewIndexSet builds an IndexSet from the given indexes.
func NewIndexSet(idxs ...int) IndexSet {
	s := make(IndexSet, len(idxs))
	for _, i := range idxs {
		s[i] = struct{}{}
	}
	return s
}

// Contains reports whether i is in s.
func (s IndexSet) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Clone returns a shallow copy of s.
func (s IndexSet) Clone() IndexSet {
	out := make(IndexSet, len(s))
	for i := range s {
		out[i] = struct{}{}
	}
	return out
}

// Equal reports whether s and other contain exactly the same indexes.
func (s IndexSet) Equal(other IndexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if _, ok := other[i]; !ok {
			return false
		}
	}
	return true
}

// All returns the index set of every state.
func (m *Model) All() IndexSet {
	out := make(IndexSet, len(m.states))
	for i := range m.states {
		out[i] = struct{}{}
	}
	return out
}

// Containing returns the indexes of states labeled with p.
func (m *Model) Containing(p string) IndexSet {
	out := make(IndexSet)
	for i, s := range m.states {
		if s.Label.Has(p) {
			out[i] = struct{}{}
		}
	}
	return out
}

// Complement returns {0..N-1} \ s.
func (m *Model) Complement(s IndexSet) IndexSet {
	out := make(IndexSet, len(m.states)-len(s))
	for i := range m.states {
		if _, ok := s[i]; !ok {
			out[i] = struct{}{}
		}
	}
	return out
}

// PreE is the existential predecessor image: the set of states with at
// least one successor in s.
func (m *Model) PreE(s IndexSet) IndexSet {
	out := make(IndexSet)
	for i := range s {
		for _, p := range m.pred[i] {
			out[p] = struct{}{}
		}
	}
	return out
}

// PreA is the universal predecessor image: the set of states all of
// whose successors are in s. A state with no successors vacuously
// satisfies this for every s, per the pinned reading of the spec's open
// question -- deadlocked states belong to every AX/AF result.
func (m *Model) PreA(s IndexSet) IndexSet {
	out := make(IndexSet)
	for i := range m.states {
		succs := m.succ[i]
		all := true
		for _, t := range succs {
			if _, ok := s[t]; !ok {
				all = false
				break
			}
		}
		if all {
			out[i] = struct{}{}
		}
	}
	return out
}

// NamesOf translates an index set to the corresponding state names.
func (m *Model) NamesOf(s IndexSet) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for i := range s {
		out[m.states[i].Name] = struct{}{}
	}
	return out
}
