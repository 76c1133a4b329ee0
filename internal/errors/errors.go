// Package errors provides sentinel errors and error types for the solitaire tool.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedBoard indicates a board definition that violates the
	// board invariants (not rectangular, bad border, unknown characters).
	ErrMalformedBoard = errors.New("malformed board")

	// ErrIllegalMove indicates a move that violates the jump rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoSolution indicates the search space was exhausted without finding
	// a winning move sequence. It is an expected outcome for most boards,
	// not a program fault.
	ErrNoSolution = errors.New("no solution found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// BoardError wraps errors with board location context. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type BoardError struct {
	Err  error  // The underlying error
	File string // Source file name (if known)
	Row  int    // Board row where the problem was found (0-based, -1 if not applicable)
	Col  int    // Board column where the problem was found (0-based, -1 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *BoardError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Row >= 0 {
		if e.Col >= 0 {
			parts = append(parts, fmt.Sprintf("row %d, column %d", e.Row, e.Col))
		} else {
			parts = append(parts, fmt.Sprintf("row %d", e.Row))
		}
	}

	context := strings.Join(parts, ": ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the BoardError wrapper.
func (e *BoardError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
