package safa

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// SAFA is a Symbolic Alternating Finite Automaton: a finite set of states, an
// initial state, a set of final states, and an index from each state to its
// outgoing transitions. It is immutable once built — every operation on it
// (Normalize, Union, Intersect) returns a new value.
//
// The dense per-state arena below indexes transitions by source state; each
// slot holds a slice of Transition, since a guard predicate and a target
// formula do not have a fixed width the way a plain (dest, min, max) triple
// would.
type SAFA struct {
	present    *bitset.BitSet // states actually declared
	initial    int
	finals     *bitset.BitSet
	finalsSet  *FrozenStateSet
	movesFrom  [][]Transition // arena indexed 0..maxStateID
	maxStateID int
	numTrans   int
}

// Initial returns the initial state.
func (s *SAFA) Initial() int { return s.initial }

// MaxStateID returns the largest state identifier ever seen.
func (s *SAFA) MaxStateID() int { return s.maxStateID }

// StateCount returns the number of declared states.
func (s *SAFA) StateCount() int {
	return int(s.present.Count())
}

// TransitionCount returns the total number of stored transitions.
func (s *SAFA) TransitionCount() int { return s.numTrans }

// HasState reports whether state was declared in this SAFA.
func (s *SAFA) HasState(state int) bool {
	if state < 0 || state > s.maxStateID {
		return false
	}
	return s.present.Test(uint(state))
}

// IsFinal reports whether state is a final state.
func (s *SAFA) IsFinal(state int) bool {
	if state < 0 || state > s.maxStateID {
		return false
	}
	return s.finals.Test(uint(state))
}

// Finals returns the final-state set as a FrozenStateSet, suitable for
// StateExpression.HasModel.
func (s *SAFA) Finals() *FrozenStateSet { return s.finalsSet }

// MovesFrom returns the transitions leaving state, in insertion order. The
// returned slice must not be mutated.
func (s *SAFA) MovesFrom(state int) []Transition {
	if state < 0 || state > s.maxStateID {
		return nil
	}
	return s.movesFrom[state]
}

// States returns every declared state in ascending order.
func (s *SAFA) States() []int {
	out := make([]int, 0, s.StateCount())
	for i, ok := s.present.NextSet(0); ok; i, ok = s.present.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// String renders one line per transition plus the initial/final markers, for
// debugging only — it carries no semantic weight and is not a serialization
// format.
func (s *SAFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "initial: %d\n", s.initial)
	fmt.Fprintf(&b, "finals: %v\n", s.finalsSet.GetArray())
	for _, st := range s.States() {
		for _, t := range s.MovesFrom(st) {
			fmt.Fprintf(&b, "  %d -[%v]-> %s\n", t.From, t.Guard, t.To)
		}
	}
	return b.String()
}

// safaBuilder assembles a SAFA's arena incrementally. It performs no
// satisfiability checks itself — NewSAFA is the only checked entry point.
// Normalize builds its result through this builder directly, since every
// minterm guard the algebra returns is satisfiable; the binary-product
// operations go through NewSAFA.
type safaBuilder struct {
	present  *bitset.BitSet
	finals   *bitset.BitSet
	moves    [][]Transition
	maxState int
	numTrans int
}

func newSAFABuilder() *safaBuilder {
	return &safaBuilder{
		present: bitset.New(8),
		finals:  bitset.New(8),
	}
}

func (b *safaBuilder) declare(state int) error {
	if state < 0 {
		return fmt.Errorf("%w: negative state id %d", ErrIllegalArgument, state)
	}
	if state > b.maxState {
		b.maxState = state
	}
	b.present.Set(uint(state))
	b.moves = grow(b.moves, state+1)
	return nil
}

func (b *safaBuilder) addFinal(state int) error {
	if err := b.declare(state); err != nil {
		return err
	}
	b.finals.Set(uint(state))
	return nil
}

// addTransition records t, assuming the caller already knows t.Guard is
// satisfiable.
func (b *safaBuilder) addTransition(t Transition) error {
	if err := b.declare(t.From); err != nil {
		return err
	}
	toStates := t.To.States()
	for _, s := range toStates.GetArray() {
		if err := b.declare(s); err != nil {
			return err
		}
	}
	b.moves[t.From] = append(b.moves[t.From], t)
	b.numTrans++
	return nil
}

func (b *safaBuilder) build(initial int) (*SAFA, error) {
	if err := b.declare(initial); err != nil {
		return nil, err
	}
	finalStates := NewStateSetBuilder()
	for i, ok := b.finals.NextSet(0); ok; i, ok = b.finals.NextSet(i + 1) {
		finalStates.Add(int(i))
	}
	return &SAFA{
		present:    b.present,
		initial:    initial,
		finals:     b.finals,
		finalsSet:  finalStates.Freeze(),
		movesFrom:  b.moves,
		maxStateID: b.maxState,
		numTrans:   b.numTrans,
	}, nil
}

// NewSAFA declares initial and finals, inserts each transition after a
// satisfiability check against ba (dropping unsatisfiable ones silently
// rather than treating them as errors), and returns the result of Normalize
// on the assembled automaton.
func NewSAFA(transitions []Transition, initial int, finals []int, ba PredicateAlgebra) (*SAFA, error) {
	b := newSAFABuilder()
	if err := b.declare(initial); err != nil {
		return nil, err
	}
	for _, f := range finals {
		if err := b.addFinal(f); err != nil {
			return nil, err
		}
	}
	for _, t := range transitions {
		sat, err := ba.IsSatisfiable(t.Guard)
		if err != nil {
			return nil, wrapTimeout(err)
		}
		if !sat {
			continue
		}
		if err := b.addTransition(t); err != nil {
			return nil, err
		}
	}
	raw, err := b.build(initial)
	if err != nil {
		return nil, err
	}
	return raw.Normalize(ba)
}

// Empty returns a SAFA with a single state (the initial state), no
// transitions, and no final states — it accepts the empty language.
// MaxStateID is 0, matching the single declared state; nothing downstream
// depends on an inflated arena size, so none is allocated.
func Empty(ba PredicateAlgebra) *SAFA {
	b := newSAFABuilder()
	_ = b.declare(0)
	safa, _ := b.build(0)
	return safa
}
