package safa

// Transition is a triple (from state, guard predicate, target formula). A
// stored Transition's Guard is always satisfiable in the owning SAFA's
// algebra: NewSAFA drops unsatisfiable transitions rather than storing them.
type Transition struct {
	From  int
	Guard Predicate
	To    *StateExpression
}
