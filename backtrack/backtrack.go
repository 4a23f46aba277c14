// Package backtrack implements whole-string matching of compiled token
// sequences by recursive trial and backtrack.
//
// The matcher explores (tokenIndex, inputIndex) states depth-first.
// Repetition is realized by scanning the longest contiguous run the repeated
// atom accepts and retrying the remainder of the pattern at every feasible
// run length. The search space is finite, so matching always terminates; worst
// case cost is exponential in the number of adjacent repetition tokens
// against highly repetitive input, which the restricted pattern language
// keeps rare in practice.
package backtrack

import "github.com/coregx/rematch/syntax"

// Backtracker matches inputs against one compiled token sequence.
//
// A Backtracker holds only the immutable token sequence and no per-search
// state, so a single instance is safe for concurrent use from multiple
// goroutines.
type Backtracker struct {
	tokens []syntax.Token
}

// New creates a Backtracker over the given token sequence. The slice is
// retained and must not be modified by the caller.
func New(tokens []syntax.Token) *Backtracker {
	return &Backtracker{tokens: tokens}
}

// IsMatch reports whether the pattern matches the entire input. Partial and
// prefix matches are rejected.
func (b *Backtracker) IsMatch(input []byte) bool {
	return b.IsMatchRunes([]rune(string(input)))
}

// IsMatchString reports whether the pattern matches the entire input string.
func (b *Backtracker) IsMatchString(input string) bool {
	return b.IsMatchRunes([]rune(input))
}

// IsMatchRunes reports whether the pattern matches all of input. Matching
// operates on code points; comparisons are raw ordinal comparisons.
func (b *Backtracker) IsMatchRunes(input []rune) bool {
	return b.match(0, 0, input)
}

// match reports whether tokens[p:] can consume exactly input[s:].
//
// Non-repeated tokens recurse at most once per input rune, so recursion
// depth is bounded by the token count plus the input length; repetition
// run scanning is iterative and adds no depth.
func (b *Backtracker) match(p, s int, input []rune) bool {
	if p == len(b.tokens) {
		return s == len(input)
	}

	t := &b.tokens[p]
	switch t.Repeat {
	case syntax.RepeatZeroOrMore:
		return b.matchStar(t, p, s, input)
	case syntax.RepeatOneOrMore:
		return b.matchPlus(t, p, s, input)
	}

	if s < len(input) && t.AcceptsRune(input[s]) {
		return b.match(p+1, s+1, input)
	}
	return false
}

// matchStar handles zero-or-more repetition: the empty branch first, then
// occurrence counts from the longest contiguous run the atom accepts down
// to one.
func (b *Backtracker) matchStar(t *syntax.Token, p, s int, input []rune) bool {
	if b.match(p+1, s, input) {
		return true
	}
	for count := b.runLength(t, s, input); count >= 1; count-- {
		if b.match(p+1, s+count, input) {
			return true
		}
	}
	return false
}

// matchPlus handles one-or-more repetition: identical to matchStar except
// that at least one occurrence must be consumed, so an empty run fails
// without trying the zero branch.
func (b *Backtracker) matchPlus(t *syntax.Token, p, s int, input []rune) bool {
	for count := b.runLength(t, s, input); count >= 1; count-- {
		if b.match(p+1, s+count, input) {
			return true
		}
	}
	return false
}

// runLength counts how many consecutive runes starting at input[s] the
// token's atom accepts.
func (b *Backtracker) runLength(t *syntax.Token, s int, input []rune) int {
	n := 0
	for s+n < len(input) && t.AcceptsRune(input[s+n]) {
		n++
	}
	return n
}
