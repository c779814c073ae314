// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package satsolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/cnf"
)

// Builds and(var(0), var(1)), encodes it, submits it to a real Backend, and
// checks that projecting the solver's model back through the Mapper
// recovers both source variables as true.
func TestRoundTripAndOfTwoVariablesIsSatisfiableWithBothTrue(t *testing.T) {
	b := robdd.New()
	x, y := b.Variable(0), b.Variable(1)
	conj := b.And(x, y)

	mapper := cnf.NewMapper(b)
	mapper.Assert(conj)

	backend := &GiniBackend{}
	res, err := backend.Solve(context.Background(), mapper.Clauses(), mapper.NumVars())
	require.NoError(t, err)
	require.True(t, res.Satisfiable)

	source := mapper.ProjectModel(res.Model)
	assert.True(t, source[0])
	assert.True(t, source[1])
}

func TestRoundTripUnsatisfiableConjunctionOfOpposites(t *testing.T) {
	b := robdd.New()
	x := b.Variable(0)
	conj := b.And(x, b.Not(x))

	mapper := cnf.NewMapper(b)
	mapper.Assert(conj)

	backend := &GiniBackend{}
	res, err := backend.Solve(context.Background(), mapper.Clauses(), mapper.NumVars())
	require.NoError(t, err)
	assert.False(t, res.Satisfiable)
}
