package safa

// Normalize rebuilds the automaton so that every state's outgoing guards form
// a minterm partition — pairwise unsatisfiable and covering the whole
// alphabet: a region no original guard covered gets its own transition
// targeting False. A state with no outgoing transitions keeps none. It is
// idempotent up to
// StateExpression equivalence and is applied automatically by NewSAFA, so
// callers rarely need to invoke it directly; it is exposed because binary
// products and other structural rewrites also need to renormalize their
// result.
func (s *SAFA) Normalize(ba PredicateAlgebra) (*SAFA, error) {
	b := newSAFABuilder()
	if err := b.declare(s.initial); err != nil {
		return nil, err
	}
	for _, f := range s.finalsSet.GetArray() {
		if err := b.addFinal(f); err != nil {
			return nil, err
		}
	}
	// Every previously-declared state stays declared even if normalization
	// leaves it with no outgoing transitions at all.
	for _, st := range s.States() {
		if err := b.declare(st); err != nil {
			return nil, err
		}
	}

	for _, st := range s.States() {
		transitions := s.MovesFrom(st)
		if len(transitions) == 0 {
			continue
		}

		guards := make([]Predicate, len(transitions))
		for i, t := range transitions {
			guards[i] = t.Guard
		}

		minterms, err := ba.Minterms(guards)
		if err != nil {
			return nil, wrapTimeout(err)
		}

		for _, m := range minterms {
			combined := falseExpr
			for i, t := range transitions {
				if m.Positive.Test(uint(i)) {
					combined = combined.Or(t.To)
				}
			}

			// Every minterm gets a transition, even ones no original guard
			// contributed to: leaving a region of the alphabet with no
			// transition at all is not the same as routing it to False, and
			// a caller enumerating this state's transitions under some
			// constraint needs to see the False target rather than silence.
			if err := b.addTransition(Transition{From: st, Guard: m.Guard, To: combined}); err != nil {
				return nil, err
			}
		}
	}

	return b.build(s.initial)
}
