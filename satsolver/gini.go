// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package satsolver

import (
	"context"
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"
)

// GiniBackend solves a formula in-process using an embedded gini instance,
// avoiding the process-spawn and file round trip ExecBackend pays for.
type GiniBackend struct {
	Logger *logrus.Entry
}

func (g *GiniBackend) logger() *logrus.Entry {
	if g.Logger != nil {
		return g.Logger
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

const (
	giniSat     = 1
	giniUnsat   = -1
	giniUnknown = 0
)

// Solve implements Backend. gini itself solves synchronously; ctx is
// honored only at the boundary, by refusing to start once already
// cancelled, since interrupting a running solve would require instrumenting
// gini's own search loop.
func (g *GiniBackend) Solve(ctx context.Context, clauses [][]int, numVars int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, newBackendFailure("gini", err)
	}

	s := gini.New()
	for _, clause := range clauses {
		for _, lit := range clause {
			s.Add(z.Dimacs2Lit(lit))
		}
		s.Add(z.LitNull)
	}

	g.logger().WithFields(logrus.Fields{"vars": numVars, "clauses": len(clauses)}).Debug("invoking gini")

	switch s.Solve() {
	case giniSat:
		model := make(map[int]bool, numVars)
		for v := 1; v <= numVars; v++ {
			model[v] = s.Value(z.Dimacs2Lit(v))
		}
		return &Result{Satisfiable: true, Model: model}, nil
	case giniUnsat:
		return &Result{Satisfiable: false}, nil
	default:
		return nil, newBackendFailure("gini", errUnknownResult)
	}
}

var errUnknownResult = errors.New("gini returned an unknown result")
