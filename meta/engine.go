package meta

import (
	"strings"
	"sync/atomic"

	"github.com/coregx/rematch/backtrack"
	"github.com/coregx/rematch/literal"
	"github.com/coregx/rematch/syntax"
)

// Engine decides whole-string acceptance for one compiled pattern.
//
// The compiled token sequence, the prefilter literals, and the selected
// strategy are all immutable after compilation, so a single Engine is safe
// for concurrent use from multiple goroutines. Only the statistics counters
// are mutable, and they are updated atomically.
//
// Example:
//
//	engine, err := meta.Compile("a*4.+hi")
//	if err != nil {
//	    return err
//	}
//	engine.IsMatchString("aaaaaa4uhi") // true
//	engine.IsMatchString("meow")       // false
type Engine struct {
	tokens      []syntax.Token
	backtracker *backtrack.Backtracker
	strategy    Strategy
	config      Config

	// literal is the full pattern text when strategy is UseLiteral.
	literal string

	// prefix and required are the prefilter literals: accepted inputs must
	// start with prefix (when non-empty) and contain every required run.
	prefix   string
	required []string

	stats Stats
}

// Stats tracks how often each decision path ran. Useful for verifying
// strategy selection and prefilter effectiveness in tests and tuning.
type Stats struct {
	// LiteralComparisons counts UseLiteral equality checks.
	LiteralComparisons uint64

	// PrefilterRejects counts inputs rejected by the required-literal
	// prefilter without running the backtracker.
	PrefilterRejects uint64

	// BacktrackSearches counts full backtracking searches.
	BacktrackSearches uint64
}

// Strategy returns the execution strategy selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Tokens returns the compiled token sequence. The returned slice is shared
// and must not be modified.
func (e *Engine) Tokens() []syntax.Token {
	return e.tokens
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		LiteralComparisons: atomic.LoadUint64(&e.stats.LiteralComparisons),
		PrefilterRejects:   atomic.LoadUint64(&e.stats.PrefilterRejects),
		BacktrackSearches:  atomic.LoadUint64(&e.stats.BacktrackSearches),
	}
}

// ResetStats zeroes the execution statistics.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.LiteralComparisons, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
	atomic.StoreUint64(&e.stats.BacktrackSearches, 0)
}

// IsMatch reports whether the pattern matches the entire input.
func (e *Engine) IsMatch(haystack []byte) bool {
	return e.IsMatchString(string(haystack))
}

// IsMatchString reports whether the pattern matches the entire input
// string. It never fails: any string, including the empty string, yields a
// boolean.
func (e *Engine) IsMatchString(haystack string) bool {
	if e.strategy == UseLiteral {
		atomic.AddUint64(&e.stats.LiteralComparisons, 1)
		return haystack == e.literal
	}

	if !e.prefilterAdmits(haystack) {
		atomic.AddUint64(&e.stats.PrefilterRejects, 1)
		return false
	}

	atomic.AddUint64(&e.stats.BacktrackSearches, 1)
	return e.backtracker.IsMatchString(haystack)
}

// prefilterAdmits reports whether the input could still match: it must
// start with the mandatory prefix and contain every required literal run.
// Runs are consumed by unrepeated literal tokens, so their absence proves a
// non-match; their presence proves nothing and the backtracker decides.
func (e *Engine) prefilterAdmits(haystack string) bool {
	if e.prefix != "" && !strings.HasPrefix(haystack, e.prefix) {
		return false
	}
	for _, run := range e.required {
		if !strings.Contains(haystack, run) {
			return false
		}
	}
	return true
}

// buildPrefilter fills the engine's prefilter literals from the extracted
// runs, keeping only runs long enough to be worth scanning for.
func (e *Engine) buildPrefilter(literals *literal.Seq) {
	for i := 0; i < literals.Len(); i++ {
		run := literals.Get(i)
		if run.Len() < e.config.MinPrefilterLen {
			continue
		}
		if run.Prefix {
			e.prefix = run.String()
			continue
		}
		e.required = append(e.required, run.String())
	}
}
