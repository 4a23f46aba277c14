package meta

import (
	"unicode/utf8"

	"github.com/coregx/rematch/backtrack"
	"github.com/coregx/rematch/literal"
	"github.com/coregx/rematch/syntax"
)

// Compile compiles a pattern string into an executable Engine using the
// default configuration.
//
// Steps:
//  1. Parse the pattern into its token sequence
//  2. Extract required literal runs
//  3. Select the strategy (literal equality or backtracking)
//  4. Build the prefilter (when backtracking)
//
// Returns an error only for invalid patterns; see the syntax package for
// the error taxonomy.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MaxPatternLen = 256
//	engine, err := meta.CompileWithConfig("[0-9]+", config)
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.MaxPatternLen > 0 && utf8.RuneCountInString(pattern) > config.MaxPatternLen {
		return nil, &CompileError{Pattern: pattern, Err: ErrPatternTooLong}
	}

	tokens, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	literals := literal.Extract(tokens)

	e := &Engine{
		tokens:   tokens,
		strategy: selectStrategy(literals, config),
		config:   config,
	}

	switch e.strategy {
	case UseLiteral:
		// The whole pattern is one literal run; acceptance is equality
		// against the pattern text itself.
		e.literal = pattern
	default:
		e.backtracker = backtrack.New(tokens)
		if config.EnablePrefilter {
			e.buildPrefilter(literals)
		}
	}

	return e, nil
}
