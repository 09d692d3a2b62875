package eval

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is the single error kind surfaced by Solve and
// Validate: the input cannot be parsed as a well-formed arithmetic formula.
// Use errors.Is to test for it; the concrete error carries position detail.
var ErrInvalidExpression = errors.New("invalid expression")

// ParseError reports a lexing or parsing failure with its byte offset.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid expression at offset %d: %s", e.Pos, e.Message)
}

// Unwrap lets errors.Is match ParseError against ErrInvalidExpression.
func (e *ParseError) Unwrap() error {
	return ErrInvalidExpression
}

func parseErrorf(pos int, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
