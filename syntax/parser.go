package syntax

// Parse compiles pattern into its token sequence.
//
// The scan is a single left-to-right pass with one rune of lookahead: a '*'
// or '+' immediately following an atom folds into that atom's token, so the
// parser never backtracks. The returned slice is never mutated afterwards
// and may be shared freely.
//
// Parse fails with:
//   - ErrInvalidPattern: empty pattern, leading '*'/'+' (no atom to
//     repeat), or an empty character class
//   - ErrUnmatchedBracket: a '[' with no closing ']'
//   - ErrInvalidRange: a class range with reversed bounds, e.g. [z-a]
//
// All errors are returned as *ParseError wrapping the sentinel.
func Parse(pattern string) ([]Token, error) {
	if pattern == "" {
		return nil, &ParseError{Pattern: pattern, Pos: 0, Err: ErrInvalidPattern}
	}

	runes := []rune(pattern)
	if runes[0] == '*' || runes[0] == '+' {
		return nil, &ParseError{Pattern: pattern, Pos: 0, Err: ErrInvalidPattern}
	}

	tokens := make([]Token, 0, len(runes))
	for i := 0; i < len(runes); {
		switch runes[i] {
		case '[':
			end := i + 1
			for end < len(runes) && runes[end] != ']' {
				end++
			}
			if end == len(runes) {
				return nil, &ParseError{Pattern: pattern, Pos: i, Err: ErrUnmatchedBracket}
			}

			class, err := parseClass(pattern, runes[i+1:end], i+1)
			if err != nil {
				return nil, err
			}

			tok := Token{Kind: KindClass, Class: class}
			i = end + 1
			if i < len(runes) {
				if mode := repeatModeFor(runes[i]); mode != RepeatNone {
					tok.Repeat = mode
					i++
				}
			}
			tokens = append(tokens, tok)

		case '*', '+':
			// Already folded into the preceding atom by its lookahead.
			// Unreachable for well-formed scans except stacked operators
			// like a**, which the language does not give meaning to.
			i++

		default:
			tok := Token{Kind: KindLiteral, Rune: runes[i]}
			if runes[i] == '.' {
				tok = Token{Kind: KindAny}
			}
			if i+1 < len(runes) {
				if mode := repeatModeFor(runes[i+1]); mode != RepeatNone {
					tok.Repeat = mode
					i++
				}
			}
			i++
			tokens = append(tokens, tok)
		}
	}

	return tokens, nil
}

// parseClass parses the body between '[' and ']' into a CharClass.
// start is the rune offset of body[0] within the full pattern, used for
// error positions.
//
// Grouping follows the class grammar: characters are taken three at a time
// when the middle rune of a triple is '-' (a range), otherwise one at a
// time as singletons. A '-' that is not the middle of a triple is a plain
// member, so [a-] contains 'a' and '-'.
func parseClass(pattern string, body []rune, start int) (*CharClass, error) {
	class := &CharClass{}
	if len(body) > 0 && body[0] == '^' {
		class.Negated = true
		body = body[1:]
		start++
	}
	if len(body) == 0 {
		return nil, &ParseError{Pattern: pattern, Pos: start, Err: ErrInvalidPattern}
	}

	for i := 0; i < len(body); {
		if i+2 < len(body) && body[i+1] == '-' {
			lo, hi := body[i], body[i+2]
			if lo > hi {
				return nil, &ParseError{Pattern: pattern, Pos: start + i, Err: ErrInvalidRange}
			}
			class.Ranges = append(class.Ranges, RuneRange{Lo: lo, Hi: hi})
			i += 3
		} else {
			class.Ranges = append(class.Ranges, RuneRange{Lo: body[i], Hi: body[i]})
			i++
		}
	}

	return class, nil
}

// repeatModeFor maps a rune to the repetition operator it spells, or
// RepeatNone if it is not an operator.
func repeatModeFor(r rune) RepeatMode {
	switch r {
	case '*':
		return RepeatZeroOrMore
	case '+':
		return RepeatOneOrMore
	}
	return RepeatNone
}
