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

func TestGiniBackendSatisfiable(t *testing.T) {
	b := &GiniBackend{}
	res, err := b.Solve(context.Background(), [][]int{{1, 2}, {-1}}, 2)
	require.NoError(t, err)
	require.True(t, res.Satisfiable)
	assert.False(t, res.Model[1])
	assert.True(t, res.Model[2])
}

func TestGiniBackendUnsatisfiable(t *testing.T) {
	b := &GiniBackend{}
	res, err := b.Solve(context.Background(), [][]int{{1}, {-1}}, 1)
	require.NoError(t, err)
	assert.False(t, res.Satisfiable)
}

func TestGiniBackendRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := &GiniBackend{}
	_, err := b.Solve(ctx, [][]int{{1}}, 1)
	require.Error(t, err)
	var bf *BackendFailureError
	assert.ErrorAs(t, err, &bf)
}
