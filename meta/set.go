package meta

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/rematch/internal/conv"
	"github.com/coregx/rematch/literal"
)

// PatternSet matches one input against many compiled patterns at once.
//
// Each pattern contributes its longest required literal run as a needle to
// a shared Aho-Corasick automaton. A single automaton scan over the input
// then marks which needles occur; patterns whose needle is absent cannot
// match and are skipped without backtracking. Patterns with no usable
// needle are always tried.
//
// A PatternSet is immutable after compilation and safe for concurrent use.
//
// Example:
//
//	set, err := meta.CompileSet([]string{"[a-z]+tail", "head[0-9]*", "exact"})
//	if err != nil {
//	    return err
//	}
//	set.Matches([]byte("headache42")) // nil: "tail" absent, prefix mismatch, not "exact"
//	set.Matches([]byte("head42"))     // [1]
type PatternSet struct {
	engines  []*Engine
	patterns []string

	// auto scans for all needles in one pass; nil when no pattern
	// produced a usable needle.
	auto *ahocorasick.Automaton

	// needles maps a needle string to the indices of the patterns that
	// require it. Indices are narrowed to uint32 to keep large sets
	// compact; conv panics if a set could ever exceed that, which
	// MaxSetPatterns rules out.
	needles map[string][]uint32

	// needed[i] is true when pattern i has a needle and may only match if
	// the automaton saw that needle.
	needed []bool
}

// CompileSet compiles all patterns into a PatternSet using the default
// configuration. Compilation stops at the first invalid pattern and returns
// its error.
func CompileSet(patterns []string) (*PatternSet, error) {
	return CompileSetWithConfig(patterns, DefaultConfig())
}

// CompileSetWithConfig compiles all patterns with a custom configuration.
//
// Fails with ErrTooManyPatterns when len(patterns) exceeds
// Config.MaxSetPatterns, or with the first pattern's compile error.
func CompileSetWithConfig(patterns []string, config Config) (*PatternSet, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(patterns) > config.MaxSetPatterns {
		return nil, ErrTooManyPatterns
	}

	set := &PatternSet{
		patterns: make([]string, len(patterns)),
		engines:  make([]*Engine, len(patterns)),
		needles:  make(map[string][]uint32),
		needed:   make([]bool, len(patterns)),
	}
	copy(set.patterns, patterns)

	for i, pattern := range patterns {
		engine, err := CompileWithConfig(pattern, config)
		if err != nil {
			return nil, err
		}
		set.engines[i] = engine
	}

	set.buildPrefilter(config)
	return set, nil
}

// Len returns the number of patterns in the set.
func (s *PatternSet) Len() int {
	return len(s.patterns)
}

// Pattern returns the i-th source pattern.
func (s *PatternSet) Pattern(i int) string {
	return s.patterns[i]
}

// IsMatch reports whether any pattern in the set matches the entire input.
func (s *PatternSet) IsMatch(input []byte) bool {
	haystack := string(input)
	candidates := s.candidates(input)
	for i, engine := range s.engines {
		if candidates != nil && !candidates[i] {
			continue
		}
		if engine.IsMatchString(haystack) {
			return true
		}
	}
	return false
}

// Matches returns the indices of all patterns that match the entire input,
// in ascending order. The result is nil when nothing matches.
func (s *PatternSet) Matches(input []byte) []int {
	haystack := string(input)
	candidates := s.candidates(input)

	var matched []int
	for i, engine := range s.engines {
		if candidates != nil && !candidates[i] {
			continue
		}
		if engine.IsMatchString(haystack) {
			matched = append(matched, i)
		}
	}
	return matched
}

// candidates scans the input once with the automaton and returns the
// per-pattern candidacy mask, or nil when every pattern must be tried.
func (s *PatternSet) candidates(input []byte) []bool {
	if s.auto == nil {
		return nil
	}

	mask := make([]bool, len(s.engines))
	for i, need := range s.needed {
		if !need {
			mask[i] = true
		}
	}

	at := 0
	for at < len(input) {
		m := s.auto.Find(input, at)
		if m == nil {
			break
		}
		for _, idx := range s.needles[string(input[m.Start:m.End])] {
			mask[idx] = true
		}
		at = m.Start + 1
	}
	return mask
}

// buildPrefilter selects each pattern's needle, minimizes the needle set,
// and builds the shared automaton. Build failure leaves auto nil, which
// degrades to trying every pattern.
func (s *PatternSet) buildPrefilter(config Config) {
	if !config.EnablePrefilter {
		return
	}

	// Longest required run per pattern; too-short runs are useless and
	// literal-strategy patterns use their full text.
	raw := make([]string, len(s.engines))
	for i, engine := range s.engines {
		if engine.Strategy() == UseLiteral {
			raw[i] = engine.literal
			continue
		}
		runs := literal.Extract(engine.Tokens())
		if run, ok := runs.Longest(); ok && run.Len() >= config.MinPrefilterLen {
			raw[i] = run.String()
		}
	}

	// The scan in candidates visits one match per start position, so it
	// can miss a needle occurrence only when a different needle occurs
	// inside it, which requires one needle to be a substring of another.
	// Reassigning each needle to the shortest needle it contains makes the
	// set substring-free and the mask sound: a substring of a required run
	// is itself required.
	orig := make([]string, len(raw))
	copy(orig, raw)
	for i := range raw {
		if orig[i] == "" {
			continue
		}
		for _, other := range orig {
			if other == "" || other == orig[i] || !strings.Contains(orig[i], other) {
				continue
			}
			if len(other) < len(raw[i]) {
				raw[i] = other
			}
		}
	}

	builder := ahocorasick.NewBuilder()
	added := make(map[string]bool)
	total := 0
	for i, needle := range raw {
		if needle == "" {
			continue
		}
		s.needed[i] = true
		s.needles[needle] = append(s.needles[needle], conv.IntToUint32(i))
		if !added[needle] {
			added[needle] = true
			builder.AddPattern([]byte(needle))
			total++
		}
	}
	if total == 0 {
		return
	}

	auto, err := builder.Build()
	if err != nil {
		// Degrade: no automaton, every pattern is a candidate.
		for i := range s.needed {
			s.needed[i] = false
		}
		s.needles = make(map[string][]uint32)
		return
	}
	s.auto = auto
}
