package syntax

import (
	"errors"
	"fmt"
)

// Common pattern compilation errors.
var (
	// ErrInvalidPattern indicates an empty pattern, a pattern starting with
	// a repetition operator, or an empty character class.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnmatchedBracket indicates a '[' with no closing ']' before the
	// pattern ends.
	ErrUnmatchedBracket = errors.New("unmatched '[' in pattern")

	// ErrInvalidRange indicates a character class range whose low bound has
	// a greater code point than its high bound, e.g. [z-a].
	ErrInvalidRange = errors.New("invalid character class range")
)

// A ParseError records a failed pattern compilation.
type ParseError struct {
	Pattern string // the pattern being compiled
	Pos     int    // rune offset of the offending construct
	Err     error  // one of the sentinel errors above
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax: parsing %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
