// Package syntax compiles patterns of a restricted regular-expression
// language into token sequences.
//
// The language supports:
//   - literal characters, matched by code point equality
//   - '.' matching any single character
//   - bracketed character classes like [a-z0-9], with an optional leading
//     '^' for negation
//   - the postfix repetition operators '*' (zero or more) and '+' (one or
//     more), applied to exactly the single preceding atom
//
// There is no alternation, grouping, escaping, or anchoring, and repetition
// operators cannot stack. Compilation is a single left-to-right scan; the
// resulting token sequence is immutable and can be matched concurrently.
package syntax

import "strings"

// Kind identifies which atom a token matches.
type Kind uint8

const (
	// KindLiteral matches exactly one specific character.
	KindLiteral Kind = iota

	// KindAny matches any single character ('.').
	KindAny

	// KindClass matches one character against a bracketed character class.
	KindClass
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindAny:
		return "Any"
	case KindClass:
		return "Class"
	}
	return "Unknown"
}

// RepeatMode is the postfix repetition applied to a token's atom.
type RepeatMode uint8

const (
	// RepeatNone means the atom matches exactly once.
	RepeatNone RepeatMode = iota

	// RepeatZeroOrMore is the '*' operator.
	RepeatZeroOrMore

	// RepeatOneOrMore is the '+' operator.
	RepeatOneOrMore
)

// String returns the operator spelling, or "" for RepeatNone.
func (m RepeatMode) String() string {
	switch m {
	case RepeatZeroOrMore:
		return "*"
	case RepeatOneOrMore:
		return "+"
	}
	return ""
}

// RuneRange is an inclusive code point range inside a character class.
// Lo <= Hi always holds for ranges produced by Parse; reversed ranges are a
// compile error.
type RuneRange struct {
	Lo rune
	Hi rune
}

// CharClass is a bracketed character class: a non-empty union of inclusive
// code point ranges, optionally negated. Singleton members are stored as
// ranges with Lo == Hi.
type CharClass struct {
	Ranges  []RuneRange
	Negated bool
}

// Contains reports whether r falls in the class, honoring negation.
// Comparison is by raw code point ordinal; there is no Unicode-aware
// classification or locale collation.
func (c *CharClass) Contains(r rune) bool {
	in := false
	for _, rg := range c.Ranges {
		if rg.Lo <= r && r <= rg.Hi {
			in = true
			break
		}
	}
	if c.Negated {
		return !in
	}
	return in
}

// Token is one compiled unit of a pattern: an atom plus its repetition.
//
// Token is a closed tagged variant. Kind selects which atom fields are
// meaningful: Rune for KindLiteral, Class for KindClass. Repetition is a
// modifier on the token rather than a wrapper node, so a repeated token's
// atom can never itself be repeated.
type Token struct {
	Kind   Kind
	Repeat RepeatMode

	// Rune is the character matched when Kind is KindLiteral.
	Rune rune

	// Class is the character class matched when Kind is KindClass.
	Class *CharClass
}

// AcceptsRune reports whether the token's atom matches the single rune r.
// Repetition is ignored here; it is the matcher's concern.
func (t *Token) AcceptsRune(r rune) bool {
	switch t.Kind {
	case KindLiteral:
		return r == t.Rune
	case KindAny:
		return true
	case KindClass:
		return t.Class.Contains(r)
	}
	return false
}

// String returns a debug representation of the token, e.g. "Literal(a)+"
// or "Class[^0-9]*".
func (t *Token) String() string {
	var b strings.Builder
	switch t.Kind {
	case KindLiteral:
		b.WriteString("Literal(")
		b.WriteRune(t.Rune)
		b.WriteString(")")
	case KindAny:
		b.WriteString("Any")
	case KindClass:
		b.WriteString("Class[")
		if t.Class.Negated {
			b.WriteString("^")
		}
		for _, rg := range t.Class.Ranges {
			b.WriteRune(rg.Lo)
			if rg.Hi != rg.Lo {
				b.WriteString("-")
				b.WriteRune(rg.Hi)
			}
		}
		b.WriteString("]")
	}
	b.WriteString(t.Repeat.String())
	return b.String()
}
