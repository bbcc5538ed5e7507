package state

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is returned when a text doesn't decode into a valid category or board geometry.
//
// Line and Column are 1-based. They are 0 when unknown (e.g. when parsing a single letter).
type ParseError struct {
	Line, Column int
	Msg          string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "parse error: " + e.Msg
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// IllegalStateError is raised (as a panic) when a move would break one of the State invariants,
// for instance moving a token into an occupied slot.
//
// It indicates a bug in the move generator, and it is never recovered by the searchers.
type IllegalStateError struct {
	Msg string
}

// Error implements the error interface.
func (e *IllegalStateError) Error() string {
	return "illegal state: " + e.Msg
}

// illegalStatef panics with an IllegalStateError with a stack trace attached.
func illegalStatef(format string, args ...any) {
	panic(errors.WithStack(&IllegalStateError{Msg: fmt.Sprintf(format, args...)}))
}
