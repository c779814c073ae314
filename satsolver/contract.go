// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package satsolver

import (
	"context"
	"fmt"
)

// Backend solves a CNF formula given as DIMACS clauses over variables
// numbered 1..numVars.
type Backend interface {
	Solve(ctx context.Context, clauses [][]int, numVars int) (*Result, error)
}

// Result reports the outcome of one Solve call. Model is populated only
// when Satisfiable is true, and maps DIMACS variables to the truth values
// the solver assigned them; a variable the solver did not report (possible
// with ExecBackend) is absent from the map.
type Result struct {
	Satisfiable bool
	Model       map[int]bool
}

// BackendFailureError reports that a Backend could not produce an answer at
// all: a missing or non-executable solver binary, a malformed exit code, a
// killed or timed-out process, or an internal solver error. It is distinct
// from an UNSAT result, which is a valid answer, not a failure.
type BackendFailureError struct {
	Backend string
	Err     error
}

func (e *BackendFailureError) Error() string {
	return fmt.Sprintf("satsolver: %s backend failed: %s", e.Backend, e.Err)
}

func (e *BackendFailureError) Unwrap() error { return e.Err }

func newBackendFailure(backend string, err error) *BackendFailureError {
	return &BackendFailureError{Backend: backend, Err: err}
}
