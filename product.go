package safa

// Union returns a SAFA accepting L(a1) ∪ L(a2).
func Union(a1, a2 *SAFA, ba PredicateAlgebra) (*SAFA, error) {
	return binaryProduct(a1, a2, ba, false)
}

// Intersect returns a SAFA accepting L(a1) ∩ L(a2).
func Intersect(a1, a2 *SAFA, ba PredicateAlgebra) (*SAFA, error) {
	return binaryProduct(a1, a2, ba, true)
}

// binaryProduct renumbers a2's states past a1's, copies every transition of
// both automata unchanged (up to the renumbering), fuses a fresh initial
// state onto the two original initial transitions (unioning them for Union,
// pairwise-AND-ing guards and AND-ing successors for Intersect), and
// renormalizes via NewSAFA.
func binaryProduct(a1, a2 *SAFA, ba PredicateAlgebra, intersection bool) (*SAFA, error) {
	offset := a1.MaxStateID() + 1
	newInitial := a1.MaxStateID() + a2.MaxStateID() + 2

	var transitions []Transition
	for _, st := range a1.States() {
		transitions = append(transitions, a1.MovesFrom(st)...)
	}
	for _, st := range a2.States() {
		for _, t := range a2.MovesFrom(st) {
			transitions = append(transitions, Transition{
				From:  t.From + offset,
				Guard: t.Guard,
				To:    t.To.Offset(offset),
			})
		}
	}

	if intersection {
		for _, t1 := range a1.MovesFrom(a1.Initial()) {
			for _, t2 := range a2.MovesFrom(a2.Initial()) {
				guard := ba.MkAnd(t1.Guard, t2.Guard)
				sat, err := ba.IsSatisfiable(guard)
				if err != nil {
					return nil, wrapTimeout(err)
				}
				if !sat {
					continue
				}
				to := t1.To.And(t2.To.Offset(offset))
				transitions = append(transitions, Transition{From: newInitial, Guard: guard, To: to})
			}
		}
	} else {
		for _, t := range a1.MovesFrom(a1.Initial()) {
			transitions = append(transitions, Transition{From: newInitial, Guard: t.Guard, To: t.To})
		}
		for _, t := range a2.MovesFrom(a2.Initial()) {
			transitions = append(transitions, Transition{From: newInitial, Guard: t.Guard, To: t.To.Offset(offset)})
		}
	}

	finals := make([]int, 0, a1.StateCount()+a2.StateCount())
	finals = append(finals, a1.Finals().GetArray()...)
	for _, f := range a2.Finals().GetArray() {
		finals = append(finals, f+offset)
	}

	return NewSAFA(transitions, newInitial, finals, ba)
}
