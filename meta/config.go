// Package meta orchestrates pattern execution: it compiles patterns through
// the syntax package, analyzes the token sequence, and selects the cheapest
// strategy that decides whole-string acceptance.
//
// The engine coordinates three mechanisms:
//   - Literal fast path: patterns that are a single literal run are matched
//     by plain string equality, skipping the backtracker entirely.
//   - Prefilter: required literal runs extracted from the pattern reject
//     inputs that cannot match before any backtracking runs.
//   - Backtracker: the general trial-and-backtrack matcher.
//
// PatternSet extends the same idea to many patterns at once, using an
// Aho-Corasick automaton over the patterns' required literals to skip
// patterns whose literal is absent from the input.
package meta

import "errors"

// Configuration errors.
var (
	// ErrInvalidConfig indicates a configuration value out of range.
	ErrInvalidConfig = errors.New("invalid engine configuration")
)

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // always run the backtracker
//	engine, err := meta.CompileWithConfig("[a-z]+tail", config)
type Config struct {
	// EnableLiteralFastPath matches literal-only patterns by string
	// equality instead of backtracking.
	// Default: true
	EnableLiteralFastPath bool

	// EnablePrefilter rejects inputs missing one of the pattern's required
	// literal runs before running the backtracker.
	// Default: true
	EnablePrefilter bool

	// MinPrefilterLen is the minimum run length (in characters) used for
	// prefiltering. Shorter runs reject too little to pay for the scan.
	// Default: 2
	MinPrefilterLen int

	// MaxPatternLen caps the pattern length in runes at compile time.
	// Zero means no limit.
	// Default: 0
	MaxPatternLen int

	// MaxSetPatterns caps the number of patterns in a PatternSet.
	// Default: 1024
	MaxSetPatterns int
}

// DefaultConfig returns a configuration with sensible defaults: both fast
// paths enabled, two-character minimum prefilter runs, unlimited pattern
// length, and room for 1024 set patterns.
func DefaultConfig() Config {
	return Config{
		EnableLiteralFastPath: true,
		EnablePrefilter:       true,
		MinPrefilterLen:       2,
		MaxPatternLen:         0,
		MaxSetPatterns:        1024,
	}
}

// Validate checks that all configuration values are in range.
//
// Valid ranges:
//   - MinPrefilterLen: >= 1
//   - MaxPatternLen: >= 0
//   - MaxSetPatterns: >= 1
func (c Config) Validate() error {
	if c.MinPrefilterLen < 1 {
		return ErrInvalidConfig
	}
	if c.MaxPatternLen < 0 {
		return ErrInvalidConfig
	}
	if c.MaxSetPatterns < 1 {
		return ErrInvalidConfig
	}
	return nil
}
