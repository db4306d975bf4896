package safa

// Accepts runs the automaton backward over word: this is the reference
// semantics used for testing normalization, union, intersection, and
// equivalence against concrete words. The equivalence algorithm itself never
// calls this — it is exponentially cheaper to compare configurations
// symbolically than to enumerate words.
//
// Starting from the final states, each symbol (read in reverse) is used to
// pull back the current configuration through every transition whose guard
// evaluates true on that symbol and whose target formula has a model in the
// current configuration. If no transition contributes anything, the word is
// rejected outright — the predecessor set actually computed is always what
// gets returned and tested, even when empty, rather than treating "empty" as
// a distinct nil case.
func (s *SAFA) Accepts(word []Symbol, ba PredicateAlgebra) (bool, error) {
	current := s.finalsSet

	for i := len(word) - 1; i >= 0; i-- {
		sym := word[i]
		next := NewStateSetBuilder()
		matched := false

		for from, transitions := range s.movesFrom {
			for _, t := range transitions {
				ok, err := ba.Eval(t.Guard, sym)
				if err != nil {
					return false, err
				}
				if !ok {
					continue
				}
				if t.To.HasModel(current) {
					next.Add(from)
					matched = true
				}
			}
		}

		if !matched {
			return false, nil
		}
		current = next.Freeze()
	}

	return current.Contains(s.initial), nil
}
