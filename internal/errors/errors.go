// Package errors provides sentinel errors and error types for the tactical
// analysis engine. It defines common error conditions and structured error
// types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates a move code outside the 4-5 character pattern
	// or one that names squares off the board.
	ErrInvalidMove = errors.New("invalid move code")

	// ErrInvalidEvaluation indicates unparseable engine evaluation text.
	ErrInvalidEvaluation = errors.New("invalid evaluation text")

	// ErrNoPiece indicates a move whose source square is empty.
	ErrNoPiece = errors.New("no piece on source square")
)

// AnalysisError wraps errors with the position and move being analysed.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type AnalysisError struct {
	Err      error  // The underlying error
	FEN      string // The position being analysed (if applicable)
	MoveText string // The move code being analysed (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *AnalysisError) Error() string {
	var parts []string
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	if context != "" {
		return context
	}
	return "analysis error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the AnalysisError wrapper.
func (e *AnalysisError) Unwrap() error {
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
