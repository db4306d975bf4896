package safa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateExpressionConstantSimplification(t *testing.T) {
	assert.Equal(t, KindAtom, Atom(3).Or(False()).kind)
	assert.Equal(t, KindAtom, False().Or(Atom(3)).kind)
	assert.Equal(t, KindTrue, Atom(3).Or(True()).kind)
	assert.Equal(t, KindAtom, Atom(3).And(True()).kind)
	assert.Equal(t, KindFalse, Atom(3).And(False()).kind)
}

func TestStateExpressionStates(t *testing.T) {
	e := Atom(1).Or(Atom(2)).And(Atom(3))
	assert.Equal(t, []int{1, 2, 3}, e.States().GetArray())

	// constants contribute no free variables.
	assert.Equal(t, 0, False().States().Size())
	assert.Equal(t, 0, True().States().Size())
}

func TestStateExpressionHasModel(t *testing.T) {
	e := Atom(1).Or(Atom(2))
	b := NewStateSetBuilder()
	b.Add(2)
	final := b.Freeze()

	assert.True(t, e.HasModel(final))

	empty := NewStateSetBuilder().Freeze()
	assert.False(t, e.HasModel(empty))
	assert.True(t, True().HasModel(empty))
	assert.False(t, False().HasModel(empty))
}

func TestStateExpressionOffset(t *testing.T) {
	e := Atom(1).Or(Atom(2).And(Atom(3)))
	shifted := e.Offset(10)
	assert.Equal(t, []int{11, 12, 13}, shifted.States().GetArray())
}

func TestStateExpressionSubstitute(t *testing.T) {
	e := Atom(1).Or(Atom(2))
	table := map[int]*StateExpression{
		1: Atom(10),
		2: False(),
	}
	got := e.Substitute(table)
	assert.True(t, got.Equals(Atom(10)))
}

func TestStateExpressionSubstituteMissingEntryPanics(t *testing.T) {
	e := Atom(1)
	assert.Panics(t, func() {
		e.Substitute(map[int]*StateExpression{})
	})
}

func TestStateExpressionEqualsSyntactic(t *testing.T) {
	a := Atom(1).Or(Atom(2))
	b := Atom(1).Or(Atom(2))
	c := Atom(2).Or(Atom(1))

	assert.True(t, a.Equals(b))
	// syntactic equality does not know Or is commutative.
	assert.False(t, a.Equals(c))
}

func TestEqualSemantic(t *testing.T) {
	a := Atom(1).Or(Atom(2))
	c := Atom(2).Or(Atom(1))

	assert.True(t, Equal(a, c), "Or is semantically commutative")
	assert.False(t, Equal(a, Atom(1)))
}
