// Package literal extracts required literal runs from compiled token
// sequences.
//
// A run is a maximal stretch of consecutive unrepeated literal tokens.
// Every input the pattern accepts must contain each run contiguously, and a
// run starting at the first token must appear at the very start of the
// input. Runs feed the engine's prefilter (reject before backtracking) and
// the pattern-set automaton.
package literal

import "github.com/coregx/rematch/syntax"

// Run is a literal character sequence every accepted input must contain.
type Run struct {
	// Chars is the run's character sequence.
	Chars []rune

	// Prefix marks a run beginning at the first token: accepted inputs
	// must start with it, not merely contain it.
	Prefix bool
}

// Len returns the run length in characters.
func (r Run) Len() int {
	return len(r.Chars)
}

// String returns the run as a plain string.
func (r Run) String() string {
	return string(r.Chars)
}

// Seq is the ordered collection of required runs extracted from one
// pattern. It is immutable after Extract returns.
type Seq struct {
	runs     []Run
	complete bool
}

// Len returns the number of runs.
func (s *Seq) Len() int {
	return len(s.runs)
}

// IsEmpty reports whether no runs were extracted.
func (s *Seq) IsEmpty() bool {
	return len(s.runs) == 0
}

// Get returns the i-th run in pattern order.
func (s *Seq) Get(i int) Run {
	return s.runs[i]
}

// Complete reports whether the entire pattern is a single literal run, in
// which case matching reduces to string equality.
func (s *Seq) Complete() bool {
	return s.complete
}

// Longest returns the longest extracted run. The second result is false
// when the sequence is empty. Ties keep the earliest run, which tends to
// reject sooner when used as a prefilter.
func (s *Seq) Longest() (Run, bool) {
	if len(s.runs) == 0 {
		return Run{}, false
	}
	best := s.runs[0]
	for _, r := range s.runs[1:] {
		if r.Len() > best.Len() {
			best = r
		}
	}
	return best, true
}

// Extract walks tokens left to right and collects maximal runs of
// unrepeated literal tokens. Any '.', character class, or repeated token
// ends the current run and is itself excluded: repeated literals may occur
// zero or many times, so they are not required verbatim.
func Extract(tokens []syntax.Token) *Seq {
	seq := &Seq{complete: len(tokens) > 0}

	var cur []rune
	runStart := -1
	flush := func() {
		if len(cur) > 0 {
			seq.runs = append(seq.runs, Run{Chars: cur, Prefix: runStart == 0})
		}
		cur = nil
		runStart = -1
	}

	for i := range tokens {
		t := &tokens[i]
		if t.Kind == syntax.KindLiteral && t.Repeat == syntax.RepeatNone {
			if cur == nil {
				runStart = i
			}
			cur = append(cur, t.Rune)
			continue
		}
		seq.complete = false
		flush()
	}
	flush()

	return seq
}
