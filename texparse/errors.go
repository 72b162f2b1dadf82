package texparse

import (
	"errors"
	"fmt"
	"strings"
)

// JoinMarker replaces newlines of an expression in error payloads and in
// override keys.
const JoinMarker = "◆"

// FailureKind tells why a conversion has been rejected.
type FailureKind int

const (
	// UnhandledResidue indicates an input construct the tables and the pipeline
	// do not cover, e.g. an unknown command.
	UnhandledResidue FailureKind = iota
	// InternalFault indicates an unexpected fault during conversion, e.g. an
	// unbalanced bracket.
	InternalFault
	// TooDeep indicates three or more levels of nested sup/sub, which cannot be
	// expressed in print production markup.
	TooDeep
)

// String returns a human-readable representation of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case UnhandledResidue:
		return "UNHANDLED"
	case InternalFault:
		return "INTERNAL"
	case TooDeep:
		return "TOO-DEEP"
	default:
		return "UNKNOWN"
	}
}

// Sentinel causes for internal faults.
var (
	ErrBracketUnderflow = errors.New("closing bracket without matching opening bracket")
	ErrUnbalanced       = errors.New("opening bracket is never closed")
	ErrTooDeepBrackets  = errors.New("brackets nested too deeply")
)

// ConversionError is the single error type returned for rejected expressions.
// Expression always holds the original input, with newlines replaced by
// JoinMarker, never a partially transformed string.
type ConversionError struct {
	Kind       FailureKind // why the expression has been rejected
	Expression string      // original expression, newline-normalized
	Cause      error       // underlying cause, may be nil
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] failed to handle expression %q: %s", e.Kind, e.Expression, e.Cause)
	}
	return fmt.Sprintf("[%s] failed to handle expression %q", e.Kind, e.Expression)
}

// Unwrap returns the underlying cause.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Failure creates a conversion error for an expression.
func Failure(kind FailureKind, expr string, cause error) *ConversionError {
	return &ConversionError{
		Kind:       kind,
		Expression: NormalizeNewlines(expr),
		Cause:      cause,
	}
}

// NormalizeNewlines replaces every newline of expr with JoinMarker.
func NormalizeNewlines(expr string) string {
	return strings.ReplaceAll(expr, "\n", JoinMarker)
}
