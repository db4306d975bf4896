package safa

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ErrSolverTimeout wraps any error a PredicateAlgebra's SAT oracle returns
// from IsSatisfiable or Minterms. It is never constructed directly outside
// this package; every caller that invokes the algebra wraps the returned
// error with it via wrapTimeout so that errors.Is(err, ErrSolverTimeout)
// works regardless of which component surfaced the failure.
var ErrSolverTimeout = errors.New("safa: solver timeout")

// ErrIllegalArgument reports a structurally invalid SAFA: the initial state,
// a final state or a transition names a negative state id. Any nonnegative
// id a constructor meets is declared on the spot. StateExpression.Substitute
// also panics with it when its table lacks an entry for an atom.
var ErrIllegalArgument = errors.New("safa: illegal argument")

func wrapTimeout(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrSolverTimeout, err)
}

// Predicate is an opaque value belonging to the caller's Boolean algebra. The
// core never inspects its structure; it is only ever passed back to the
// PredicateAlgebra that produced it.
type Predicate any

// Symbol is an opaque concrete alphabet element, passed to Eval when running
// a SAFA over a concrete word (see SAFA.Accepts).
type Symbol any

// Minterm is one entry of PredicateAlgebra.Minterms: a satisfiable
// conjunction of a chosen polarity for each input predicate. Positive has one
// bit set per input predicate index that is required true; all others are
// required false. Guard is the predicate representing exactly that
// conjunction.
type Minterm struct {
	Guard    Predicate
	Positive *bitset.BitSet
}

// PredicateAlgebra is the abstract Boolean algebra of guards the core is
// parameterized over. Implementations own the concrete symbol domain
// (characters, integers, tuples, ...); this package only ever calls the
// capability set below.
//
// The Mk* constructors are total. IsSatisfiable and Minterms may fail with a
// solver timeout; such errors are wrapped in ErrSolverTimeout and propagated
// unchanged to the caller of NewSAFA, Normalize, Union, Intersect, or
// IsEquivalent.
type PredicateAlgebra interface {
	MkAnd(p, q Predicate) Predicate
	MkOr(p, q Predicate) Predicate
	MkNot(p Predicate) Predicate
	MkTrue() Predicate
	MkFalse() Predicate

	IsSatisfiable(p Predicate) (bool, error)

	// Minterms enumerates all satisfiable conjunctions of ±preds. The union
	// of returned guards is MkTrue(); any two are pairwise unsatisfiable;
	// every satisfiable combination of polarities appears exactly once.
	Minterms(preds []Predicate) ([]Minterm, error)

	// Eval tests a concrete symbol against a predicate; used only by
	// SAFA.Accepts, the reference "run on a word" semantics.
	Eval(p Predicate, sym Symbol) (bool, error)
}
