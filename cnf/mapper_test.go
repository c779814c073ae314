// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package cnf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalzilio/robdd"
)

// evalDNF brute-forces a satisfying assignment search for a tiny clause set
// over the given number of variables, used to cross-check a diagram's own
// semantics against its CNF encoding without needing an external solver.
func evalDNF(clauses [][]int, numVars int) bool {
	assign := make([]bool, numVars+1)
	var try func(i int) bool
	try = func(i int) bool {
		if i > numVars {
			for _, c := range clauses {
				ok := false
				for _, lit := range c {
					v := lit
					if v < 0 {
						v = -v
					}
					if (lit > 0) == assign[v] {
						ok = true
						break
					}
				}
				if !ok {
					return false
				}
			}
			return true
		}
		assign[i] = true
		if try(i + 1) {
			return true
		}
		assign[i] = false
		return try(i + 1)
	}
	return try(1)
}

func TestEncodeConstantTrueIsSatisfiable(t *testing.T) {
	b := robdd.New()
	clauses, n := Encode(b, b.True())
	assert.True(t, evalDNF(clauses, n))
}

func TestEncodeConstantFalseIsUnsatisfiable(t *testing.T) {
	b := robdd.New()
	clauses, n := Encode(b, b.False())
	assert.False(t, evalDNF(clauses, n))
}

func TestEncodeVariableIsSatisfiable(t *testing.T) {
	b := robdd.New()
	x := b.Variable(0)
	clauses, n := Encode(b, x)
	assert.True(t, evalDNF(clauses, n))
}

func TestEncodeConjunctionOfOppositesIsUnsatisfiable(t *testing.T) {
	b := robdd.New()
	x := b.Variable(0)
	conj := b.And(x, b.Not(x))
	require.True(t, b.IsConstant(conj))
	clauses, n := Encode(b, conj)
	assert.False(t, evalDNF(clauses, n))
}

func TestEncodeSharesSubgraphLiterals(t *testing.T) {
	b := robdd.New()
	x, y := b.Variable(0), b.Variable(1)
	and1 := b.And(x, y)
	and2 := b.And(y, x) // same node by canonicity
	m := NewMapper(b)
	l1 := m.Encode(and1)
	l2 := m.Encode(and2)
	assert.Equal(t, l1, l2)
}

func TestWriteDIMACSHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDIMACS(&buf, [][]int{{1, -2}, {2}}, 2))
	assert.Contains(t, buf.String(), "p cnf 2 2")
}

func TestEncodePlainVariableUsesLeafShortcut(t *testing.T) {
	b := robdd.New()
	x := b.Variable(0)
	m := NewMapper(b)
	lit := m.Encode(x)
	sv, ok := m.Remap(0)
	require.True(t, ok)
	assert.Equal(t, sv, lit)
	assert.Empty(t, m.Clauses()) // no gate clauses, no true/false unit clause
}

func TestEncodeNegatedVariableUsesLeafShortcut(t *testing.T) {
	b := robdd.New()
	x := b.Variable(0)
	notX := b.Not(x)
	m := NewMapper(b)
	lit := m.Encode(notX)
	sv, ok := m.Remap(0)
	require.True(t, ok)
	assert.Equal(t, -sv, lit)
	assert.Empty(t, m.Clauses())
}

func TestRemapUnknownSourceVariable(t *testing.T) {
	b := robdd.New()
	m := NewMapper(b)
	_, ok := m.Remap(0)
	assert.False(t, ok)
}

func TestProjectModelRecoversSourceVariables(t *testing.T) {
	b := robdd.New()
	x, y := b.Variable(0), b.Variable(1)
	conj := b.And(x, y)
	m := NewMapper(b)
	m.Assert(conj)

	model := make(map[int]bool, m.NumVars())
	for v := 1; v <= m.NumVars(); v++ {
		model[v] = true
	}
	source := m.ProjectModel(model)
	assert.True(t, source[0])
	assert.True(t, source[1])
}
