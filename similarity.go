package safa

import (
	"fmt"

	"github.com/crillab/gophersat/bf"
)

// SimilarityRelation is a monotone set of (left, right) StateExpression pairs
// closed under Boolean congruence. It backs IsEquivalent's worklist: Add
// records a pair the checker has already visited, and IsMember answers
// whether a new pair is implied by everything recorded so far — the
// mechanism that makes the worklist terminate on automata whose reachable
// configuration space would otherwise be infinite.
//
// The congruence query is discharged with a real SAT solver
// (github.com/crillab/gophersat/bf): each recorded pair and the query are
// encoded as Boolean formulas over per-state variables, and
// (⋀ recorded Li⇔Ri) ∧ ¬(L⇔R) is handed to the solver — unsatisfiable means
// L⇔R is entailed, i.e. IsMember holds.
type SimilarityRelation struct {
	seen     *HashMap[bool] // syntactic fast path, avoids a SAT call on repeats
	recorded []pairFormula
}

type pairFormula struct {
	l, r *StateExpression
}

type pairKey struct {
	l, r *StateExpression
}

func (p pairKey) Hash() uint64 {
	return combine(p.l.Hash(), p.r.Hash())
}

func (p pairKey) Equals(other Hashable) bool {
	o, ok := other.(pairKey)
	return ok && p.l.Equals(o.l) && p.r.Equals(o.r)
}

// NewSimilarityRelation returns an empty relation.
func NewSimilarityRelation() *SimilarityRelation {
	return &SimilarityRelation{seen: NewHashMap[bool](WithCapacity(16))}
}

// Add records (l, r) as a known-similar pair.
func (s *SimilarityRelation) Add(l, r *StateExpression) {
	s.seen.Set(pairKey{l, r}, true)
	s.recorded = append(s.recorded, pairFormula{l, r})
}

// IsMember reports whether (l, r) is in the congruence closure of the
// recorded set: whether L⇔R follows from the conjunction of Li⇔Ri over every
// recorded pair.
func (s *SimilarityRelation) IsMember(l, r *StateExpression) bool {
	if _, ok := s.seen.Get(pairKey{l, r}); ok {
		return true
	}
	return s.congruenceHolds(l, r)
}

// congruenceHolds compares l against r's left-drawn recorded formulas and r
// against right-drawn ones under distinct variable namespaces ("L"/"R"
// prefixes): l and r are configurations of two independently-numbered
// automata, so state id 3 on the left and state id 3 on the right name
// unrelated variables and must never be unified by the SAT encoding.
func (s *SimilarityRelation) congruenceHolds(l, r *StateExpression) bool {
	premise := constTrue()
	for _, p := range s.recorded {
		premise = bf.And(premise, bf.Eq(toFormula(p.l, "L"), toFormula(p.r, "R")))
	}
	query := bf.And(premise, bf.Not(bf.Eq(toFormula(l, "L"), toFormula(r, "R"))))
	model := bf.Solve(query)
	return model == nil
}

// Equal compares two StateExpressions over the same state universe for
// semantic (not merely syntactic) equality, via the same SAT encoding
// congruenceHolds uses. Both sides share one variable namespace here, unlike
// congruenceHolds's left/right split, because a and b are formulas over the
// same automaton's states.
func Equal(a, b *StateExpression) bool {
	model := bf.Solve(bf.Not(bf.Eq(toFormula(a, ""), toFormula(b, ""))))
	return model == nil
}

func constTrue() bf.Formula {
	v := bf.Var("safa$tautology")
	return bf.Or(v, bf.Not(v))
}

// toFormula encodes e as a Boolean formula over per-state variables, each
// named prefix+"s"+id so that callers comparing formulas drawn from distinct
// state universes (e.g. two different automata) can keep their variables
// from colliding by passing distinct prefixes.
func toFormula(e *StateExpression, prefix string) bf.Formula {
	switch e.kind {
	case KindFalse:
		v := bf.Var("safa$tautology")
		return bf.And(v, bf.Not(v))
	case KindTrue:
		return constTrue()
	case KindAtom:
		return bf.Var(fmt.Sprintf("%ss%d", prefix, e.state))
	case KindOr:
		return bf.Or(toFormula(e.left, prefix), toFormula(e.right, prefix))
	case KindAnd:
		return bf.And(toFormula(e.left, prefix), toFormula(e.right, prefix))
	}
	panic(fmt.Sprintf("safa: unknown StateExpression kind %d", e.kind))
}
