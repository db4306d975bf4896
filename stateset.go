package safa

import "slices"

var _ IntSet = &StateSetBuilder{}

// StateSetBuilder accumulates the set of atoms seen while walking a
// StateExpression (Or/And recurse into both sides, Atom contributes one
// state). Freeze turns the accumulation into an immutable, hashable
// FrozenStateSet once the walk is done.
type StateSetBuilder struct {
	inner       map[int]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSetBuilder() *StateSetBuilder {
	return &StateSetBuilder{
		inner: make(map[int]struct{}),
	}
}

func (s *StateSetBuilder) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(len(s.inner))
	for k := range s.inner {
		s.hashCode += uint64(mix(k))
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSetBuilder) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return s.Hash() == is.Hash()
}

func (s *StateSetBuilder) GetArray() []int {
	keys := make([]int, 0, len(s.inner))
	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSetBuilder) Size() int {
	return len(s.inner)
}

func (s *StateSetBuilder) keyChanged() {
	s.hashUpdated = false
}

// Add records state as a member.
func (s *StateSetBuilder) Add(state int) {
	if _, ok := s.inner[state]; !ok {
		s.inner[state] = struct{}{}
		s.keyChanged()
	}
}

// Freeze returns the immutable snapshot of the accumulated set.
func (s *StateSetBuilder) Freeze() *FrozenStateSet {
	return NewFrozenStateSet(s.GetArray(), s.Hash())
}
