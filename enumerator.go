package safa

// Table is a per-state successor table: for each state in the query set that
// produced this table, the StateExpression it transitions to under the
// table's associated guard. Entries are addressed by state id directly, in an
// arena-indexed array sized to maxStateID+1 for O(1) substitution; an absent
// entry is the sentinel "False".
//
// Table is immutable: With returns a new table rather than mutating the
// receiver, and never shares its backing array between two tables, so cloning
// one table can never alias another's entries.
type Table struct {
	entries []*StateExpression
}

func newTable(maxStateID int) *Table {
	return &Table{entries: make([]*StateExpression, maxStateID+1)}
}

// With returns a new table equal to t except that state now maps to to.
func (t *Table) With(state int, to *StateExpression) *Table {
	entries := make([]*StateExpression, len(t.entries))
	copy(entries, t.entries)
	entries[state] = to
	return &Table{entries: entries}
}

// Get returns the successor formula for state, or the False sentinel if
// state was never assigned an entry.
func (t *Table) Get(state int) *StateExpression {
	if state < 0 || state >= len(t.entries) || t.entries[state] == nil {
		return falseExpr
	}
	return t.entries[state]
}

// ToMap builds the substitution table StateExpression.Substitute expects,
// restricted to the given states — callers must only substitute atoms they
// queried the enumerator with.
func (t *Table) ToMap(states []int) map[int]*StateExpression {
	m := make(map[int]*StateExpression, len(states))
	for _, s := range states {
		m[s] = t.Get(s)
	}
	return m
}

// RefinedTable pairs a refined guard with the per-state successor table that
// produced it.
type RefinedTable struct {
	Guard Predicate
	Table *Table
}

// TransitionTables enumerates, from a set of source states and a constraining
// guard, every (refined-guard, per-state-successor-table) pair: it refines
// the constraint one state at a time by conjoining each outgoing transition's
// guard and pruning unsatisfiable combinations. The refined guards returned
// are pairwise unsatisfiable and their disjunction is equivalent to
// constraint restricted to the combinations that have at least one surviving
// transition per state.
func (s *SAFA) TransitionTables(states []int, constraint Predicate, ba PredicateAlgebra) ([]RefinedTable, error) {
	result := []RefinedTable{{Guard: constraint, Table: newTable(s.maxStateID)}}

	for _, st := range states {
		var next []RefinedTable
		for _, cur := range result {
			for _, t := range s.MovesFrom(st) {
				guard := ba.MkAnd(cur.Guard, t.Guard)
				sat, err := ba.IsSatisfiable(guard)
				if err != nil {
					return nil, wrapTimeout(err)
				}
				if !sat {
					continue
				}
				next = append(next, RefinedTable{Guard: guard, Table: cur.Table.With(st, t.To)})
			}
		}
		result = next
	}

	return result, nil
}
