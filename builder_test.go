// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableIsMemoized(t *testing.T) {
	b := New()
	x0 := b.Variable(0)
	x0again := b.Variable(0)
	assert.Same(t, x0, x0again)
}

func TestVariableNegativeIndexIsInvalidInput(t *testing.T) {
	b := New()
	n := b.Variable(-1)
	assert.Nil(t, n)
	require.Error(t, b.Err())
	var ie *InvalidInputError
	assert.ErrorAs(t, b.Err(), &ie)
}

func TestAndIsDeterministic(t *testing.T) {
	b := New()
	x, y := b.Variable(0), b.Variable(1)
	a1 := b.And(x, y)
	a2 := b.And(x, y)
	assert.Same(t, a1, a2)
}

func TestAndIsCommutative(t *testing.T) {
	b := New()
	x, y := b.Variable(0), b.Variable(1)
	assert.Same(t, b.And(x, y), b.And(y, x))
}

func TestAndIsAssociative(t *testing.T) {
	b := New()
	x, y, z := b.Variable(0), b.Variable(1), b.Variable(2)
	left := b.And(b.And(x, y), z)
	right := b.And(x, b.And(y, z))
	nary := b.And(x, y, z)
	assert.Same(t, left, right)
	assert.Same(t, left, nary)
}

func TestNotIsInvolutive(t *testing.T) {
	b := New()
	x := b.Variable(0)
	assert.Same(t, x, b.Not(b.Not(x)))
}

func TestAndOfOppositesIsFalse(t *testing.T) {
	b := New()
	x := b.Variable(0)
	assert.Same(t, b.False(), b.And(x, b.Not(x)))
}

func TestOrOfOppositesIsTrue(t *testing.T) {
	b := New()
	x := b.Variable(0)
	assert.Same(t, b.True(), b.Or(x, b.Not(x)))
}

func TestRestrictEliminatesVariableFromSupport(t *testing.T) {
	b := New()
	x, y := b.Variable(0), b.Variable(1)
	and := b.And(x, y)
	restricted := b.Restrict(and, 0, true)
	assert.Equal(t, []int{1}, b.Support(restricted))
	assert.Same(t, y, restricted)
}

func TestRestrictFalseOfAndIsFalse(t *testing.T) {
	b := New()
	x, y := b.Variable(0), b.Variable(1)
	and := b.And(x, y)
	assert.Same(t, b.False(), b.Restrict(and, 0, false))
}

func TestRestrictOnAbsentVariableIsIdentity(t *testing.T) {
	b := New()
	x := b.Variable(0)
	assert.Same(t, x, b.Restrict(x, 5, true))
}

func TestXorMatchesAndOrDefinition(t *testing.T) {
	b := New()
	x, y := b.Variable(0), b.Variable(1)
	xor := b.Xor(x, y)
	expected := b.Or(b.And(b.Not(x), y), b.And(x, b.Not(y)))
	assert.Same(t, expected, xor)
}

func TestIteWithTrueConditionIsThenBranch(t *testing.T) {
	b := New()
	x, y := b.Variable(0), b.Variable(1)
	assert.Same(t, x, b.Ite(b.True(), x, y))
	assert.Same(t, y, b.Ite(b.False(), x, y))
}

func TestOperationAcrossBuildersIsBuilderMismatch(t *testing.T) {
	b1, b2 := New(), New()
	x1 := b1.Variable(0)
	n := b2.Not(x1)
	assert.Nil(t, n)
	var me *BuilderMismatchError
	assert.ErrorAs(t, b2.Err(), &me)
}

func TestSupportIsSortedAndDeduplicated(t *testing.T) {
	b := New()
	x, y, z := b.Variable(2), b.Variable(0), b.Variable(1)
	n := b.And(x, b.And(y, z))
	assert.Equal(t, []int{0, 1, 2}, b.Support(n))
}
