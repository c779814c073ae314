// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrForeignNode is the sentinel wrapped by BuilderMismatchError. It is
// exposed so callers can test for it with errors.Is without depending on the
// concrete error type.
var ErrForeignNode = errors.New("node does not belong to this builder")

// ErrUnsatisfiable is the sentinel wrapped by UnsatisfiableError.
var ErrUnsatisfiable = errors.New("no satisfying assignment")

// InvalidInputError reports a malformed argument to a Builder operation: a
// nil Node (including a pseudo-Boolean term with a nil Value) or a negative
// variable index. A Node owned by a different Builder is reported as a
// BuilderMismatchError instead.
type InvalidInputError struct {
	Op  string
	Err error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("robdd: invalid input in %s: %s", e.Op, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

func newInvalidInput(op, format string, a ...interface{}) *InvalidInputError {
	return &InvalidInputError{Op: op, Err: pkgerrors.Errorf(format, a...)}
}

// UnsatisfiableError reports that a diagram has no satisfying assignment,
// either because the root reduced to False or because a SAT backend
// returned UNSAT for the diagram's CNF encoding.
type UnsatisfiableError struct {
	Context string
}

func (e *UnsatisfiableError) Error() string {
	if e.Context == "" {
		return ErrUnsatisfiable.Error()
	}
	return fmt.Sprintf("%s: %s", e.Context, ErrUnsatisfiable)
}

func (e *UnsatisfiableError) Unwrap() error { return ErrUnsatisfiable }

// BuilderMismatchError reports that a Node produced by one Builder was
// passed into an operation on a different Builder. Node identities are only
// meaningful within their owning builder; this is a programming error,
// detected via the Node's recorded owner where feasible.
type BuilderMismatchError struct {
	Op string
}

func (e *BuilderMismatchError) Error() string {
	return fmt.Sprintf("robdd: %s: %s", e.Op, ErrForeignNode)
}

func (e *BuilderMismatchError) Unwrap() error { return ErrForeignNode }

func newBuilderMismatch(op string) *BuilderMismatchError {
	return &BuilderMismatchError{Op: op}
}
