package safa

// equivCfg is a pair of StateExpressions tracking where each automaton's
// computation has gotten to so far: left's over left's states, right's over
// right's. The EquivalenceChecker worklist is built from these pairs.
type equivCfg struct {
	left, right *StateExpression
}

// IsEquivalent decides language equivalence of left and right via a forward
// worklist bisimulation-up-to-congruence over pairs of StateExpressions.
//
// It seeds the worklist with (Atom(left.Initial), Atom(right.Initial)) and,
// for every pair it pops, asks left "what are every way you can continue
// reading a symbol from this configuration" via TransitionTables, then asks
// right the same question constrained to each of left's refined guards in
// turn — so every (left-guard, right-guard) combination actually explored is
// jointly satisfiable by construction. A refined pair whose left and right
// acceptance verdicts disagree is a witness of inequivalence; otherwise the
// successor pair is pushed unless a SimilarityRelation already covers it,
// which is what keeps the search finite.
func IsEquivalent(left, right *SAFA, ba PredicateAlgebra) (bool, error) {
	leftCfg := Atom(left.Initial())
	rightCfg := Atom(right.Initial())

	sim := NewSimilarityRelation()
	sim.Add(leftCfg, rightCfg)

	queue := []equivCfg{{leftCfg, rightCfg}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		leftTables, err := left.TransitionTables(cur.left.States().GetArray(), ba.MkTrue(), ba)
		if err != nil {
			return false, err
		}

		for _, lrow := range leftTables {
			lPrime := cur.left.Substitute(lrow.Table.ToMap(cur.left.States().GetArray()))
			lAccepts := lPrime.HasModel(left.Finals())

			rightTables, err := right.TransitionTables(cur.right.States().GetArray(), lrow.Guard, ba)
			if err != nil {
				return false, err
			}

			for _, rrow := range rightTables {
				rPrime := cur.right.Substitute(rrow.Table.ToMap(cur.right.States().GetArray()))
				rAccepts := rPrime.HasModel(right.Finals())

				if lAccepts != rAccepts {
					return false, nil
				}

				if sim.IsMember(lPrime, rPrime) {
					continue
				}
				sim.Add(lPrime, rPrime)
				queue = append(queue, equivCfg{lPrime, rPrime})
			}
		}
	}

	return true, nil
}
