package meta

import (
	"errors"
	"fmt"
)

// Compilation errors raised by the engine itself. Syntax errors from the
// parser are wrapped unchanged, so errors.Is still sees the syntax package
// sentinels through a CompileError.
var (
	// ErrPatternTooLong indicates the pattern exceeds Config.MaxPatternLen.
	ErrPatternTooLong = errors.New("pattern too long")

	// ErrTooManyPatterns indicates a PatternSet exceeds Config.MaxSetPatterns.
	ErrTooManyPatterns = errors.New("too many patterns in set")
)

// CompileError wraps a pattern compilation failure with the pattern text.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compilation failed for pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
