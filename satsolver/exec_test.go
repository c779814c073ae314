// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package satsolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecBackendSatisfiable(t *testing.T) {
	b := &ExecBackend{Path: "testdata/fake-sat.sh"}
	res, err := b.Solve(context.Background(), [][]int{{1, -2}}, 2)
	require.NoError(t, err)
	assert.True(t, res.Satisfiable)
	assert.Equal(t, map[int]bool{1: true, 2: false}, res.Model)
}

func TestExecBackendUnsatisfiable(t *testing.T) {
	b := &ExecBackend{Path: "testdata/fake-unsat.sh"}
	res, err := b.Solve(context.Background(), [][]int{{1}, {-1}}, 1)
	require.NoError(t, err)
	assert.False(t, res.Satisfiable)
}

func TestExecBackendUnexpectedExitCodeIsFailure(t *testing.T) {
	b := &ExecBackend{Path: "testdata/fake-broken.sh"}
	_, err := b.Solve(context.Background(), [][]int{{1}}, 1)
	require.Error(t, err)
	var bf *BackendFailureError
	assert.ErrorAs(t, err, &bf)
}

func TestExecBackendMissingExecutableIsFailure(t *testing.T) {
	b := &ExecBackend{Path: "testdata/does-not-exist.sh"}
	_, err := b.Solve(context.Background(), [][]int{{1}}, 1)
	require.Error(t, err)
	var bf *BackendFailureError
	assert.ErrorAs(t, err, &bf)
}
