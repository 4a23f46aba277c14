package meta

import "github.com/coregx/rematch/literal"

// Strategy is the execution strategy selected for a compiled pattern.
//
// Selection is automatic at compile time from the extracted literals; the
// token sequence itself never changes, only how acceptance is decided.
type Strategy int

const (
	// UseBacktrack runs the trial-and-backtrack matcher, optionally guarded
	// by the required-literal prefilter. This is the general case.
	UseBacktrack Strategy = iota

	// UseLiteral decides acceptance by string equality. Selected when the
	// whole pattern is a single run of unrepeated literal characters, so
	// the only accepted input is that exact string.
	UseLiteral
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseBacktrack:
		return "Backtrack"
	case UseLiteral:
		return "Literal"
	}
	return "Unknown"
}

// selectStrategy picks the strategy for a pattern from its extracted
// literal runs.
func selectStrategy(literals *literal.Seq, config Config) Strategy {
	if config.EnableLiteralFastPath && literals.Complete() {
		return UseLiteral
	}
	return UseBacktrack
}
