// Package rematch provides a compiled matcher for a restricted
// regular-expression language, without relying on the host regexp
// facilities.
//
// Supported syntax:
//   - literal characters, compared by raw code point
//   - '.' matching any single character
//   - character classes like [a-z0-9] and [^0-9], with 'a-z' style ranges
//   - postfix '*' (zero or more) and '+' (one or more), applied to exactly
//     the single preceding atom
//
// There is no alternation, grouping, escaping, anchoring, or quantifier
// stacking. Matching is whole-string: a pattern accepts an input only when
// its tokens consume the input entirely, so there are no partial or
// substring matches.
//
// Basic usage:
//
//	re, err := rematch.Compile("a*4.+hi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("aaaaaa4uhi") // true
//	re.MatchString("4uhi")       // true
//	re.MatchString("meow")       // false
//
// Compilation is eager and one-shot: an invalid pattern fails with an error
// wrapping one of the syntax package sentinels (syntax.ErrInvalidPattern,
// syntax.ErrUnmatchedBracket, syntax.ErrInvalidRange) and no partial value
// is returned. A compiled Regex is immutable and safe for concurrent use.
package rematch

import (
	"github.com/coregx/rematch/meta"
)

// Regex represents a compiled pattern.
//
// A Regex is immutable after compilation: matching reads the token sequence
// without locking, so a single value may be shared across any number of
// goroutines.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern of the restricted language.
//
// Returns an error if the pattern is empty, begins with a repetition
// operator, contains an unclosed '[', or contains a reversed class range.
//
// Example:
//
//	re, err := rematch.Compile("[a-z]+")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at program start.
//
// Example:
//
//	var wordRe = rematch.MustCompile("[a-zA-Z]+")
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rematch: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom engine configuration.
//
// Example:
//
//	config := rematch.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := rematch.CompileWithConfig("[a-z]+tail", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default engine configuration.
//
// Users can customize this and pass it to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// CompileSet compiles several patterns into a PatternSet that matches them
// all against one input in a single call.
//
// Example:
//
//	set, err := rematch.CompileSet([]string{"[0-9]+", "[a-z]+"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	set.Matches([]byte("hello")) // [1]
func CompileSet(patterns []string) (*meta.PatternSet, error) {
	return meta.CompileSet(patterns)
}

// Match reports whether the pattern matches the entire byte slice b.
//
// Example:
//
//	re := rematch.MustCompile("[^0-9]+")
//	re.Match([]byte("12a")) // false: '1' is rejected by the class
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether the pattern matches the entire string s.
//
// Example:
//
//	re := rematch.MustCompile("[a-z]+")
//	re.MatchString("abcxyz") // true
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatchString(s)
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}
