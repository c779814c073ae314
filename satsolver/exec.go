// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package satsolver

import (
	"bufio"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dalzilio/robdd/cnf"
)

// ExecBackend solves a formula by shelling out to an external SAT solver
// executable. The executable is invoked as "Path <dimacs-file>" and is
// expected to follow the conventional exit-code protocol: 10 means the
// formula is satisfiable, 20 means it is unsatisfiable, and any other exit
// status (including a non-zero status from a failed exec itself) is a
// backend failure rather than an answer. A satisfying model, if any, is
// read from "v <lit> <lit> ... 0" lines on stdout.
type ExecBackend struct {
	Path   string
	Logger *logrus.Entry
}

const (
	exitSatisfiable   = 10
	exitUnsatisfiable = 20
)

func (e *ExecBackend) logger() *logrus.Entry {
	if e.Logger != nil {
		return e.Logger
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// Solve implements Backend.
func (e *ExecBackend) Solve(ctx context.Context, clauses [][]int, numVars int) (*Result, error) {
	f, err := os.CreateTemp("", "robdd-*.cnf")
	if err != nil {
		return nil, newBackendFailure("exec", errors.Wrap(err, "creating DIMACS file"))
	}
	defer os.Remove(f.Name())

	if err := cnf.WriteDIMACS(f, clauses, numVars); err != nil {
		f.Close()
		return nil, newBackendFailure("exec", errors.Wrap(err, "writing DIMACS file"))
	}
	if err := f.Close(); err != nil {
		return nil, newBackendFailure("exec", errors.Wrap(err, "closing DIMACS file"))
	}

	e.logger().WithFields(logrus.Fields{"path": e.Path, "vars": numVars, "clauses": len(clauses)}).Debug("invoking SAT backend")

	cmd := exec.CommandContext(ctx, e.Path, f.Name())
	var stdout strings.Builder
	cmd.Stdout = &stdout
	runErr := cmd.Run()

	exitCode, ok := exitCodeOf(runErr)
	if !ok {
		return nil, newBackendFailure("exec", errors.Wrap(runErr, "running solver"))
	}

	switch exitCode {
	case exitSatisfiable:
		model, err := parseModel(stdout.String())
		if err != nil {
			return nil, newBackendFailure("exec", err)
		}
		return &Result{Satisfiable: true, Model: model}, nil
	case exitUnsatisfiable:
		return &Result{Satisfiable: false}, nil
	default:
		return nil, newBackendFailure("exec", errors.Errorf("unexpected exit code %d", exitCode))
	}
}

func exitCodeOf(err error) (int, bool) {
	if err == nil {
		return 0, true
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}

func parseModel(stdout string) (map[int]bool, error) {
	model := make(map[int]bool)
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "v") {
			continue
		}
		for _, field := range strings.Fields(line)[1:] {
			lit, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing model literal %q", field)
			}
			if lit == 0 {
				continue
			}
			if lit < 0 {
				model[-lit] = false
			} else {
				model[lit] = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading solver output")
	}
	return model, nil
}
