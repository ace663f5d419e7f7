package bracket

import "fmt"

// Heuristic selects the angle-bracket disambiguation tier. Angle
// brackets double as comparison and shift operators, so deciding
// whether a given '<' or '>' is structural is necessarily heuristic.
type Heuristic uint8

const (
	// HeuristicStrict is the default tier. On top of the loose checks
	// it rejects spaced comparisons between operands and verifies that
	// a candidate '<' has a same-line matching '>' spanning something
	// that plausibly reads as type arguments.
	HeuristicStrict Heuristic = iota

	// HeuristicLoose is a compatibility tier that only inspects the
	// characters adjacent to the candidate. It misclassifies plain
	// comparisons such as "a < b" as generics.
	HeuristicLoose
)

// String returns the configuration name of the heuristic.
func (h Heuristic) String() string {
	switch h {
	case HeuristicStrict:
		return "strict"
	case HeuristicLoose:
		return "loose"
	default:
		return fmt.Sprintf("Heuristic(%d)", uint8(h))
	}
}

// ParseHeuristic parses a heuristic name from configuration.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "", "strict":
		return HeuristicStrict, nil
	case "loose":
		return HeuristicLoose, nil
	default:
		return 0, fmt.Errorf("unknown heuristic %q; valid heuristics: strict, loose", name)
	}
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordByte(c byte) bool {
	return isAlphaByte(c) || isDigitByte(c) || c == '_'
}

// isOperandByte reports whether c can end (or start) an operand of a
// comparison: identifiers, literals, closing delimiters, quotes.
func isOperandByte(c byte) bool {
	switch {
	case isWordByte(c):
		return true
	case c == ')' || c == ']' || c == '}':
		return true
	case c == '"' || c == '\'' || c == '`':
		return true
	default:
		return false
	}
}

// prevNonSpace returns the index of the nearest non-whitespace byte at
// or before i, or -1.
func prevNonSpace(text []byte, i int) int {
	for ; i >= 0; i-- {
		if !isSpaceByte(text[i]) {
			return i
		}
	}
	return -1
}

// nextNonSpace returns the index of the nearest non-whitespace byte at
// or after i, or -1.
func nextNonSpace(text []byte, i int) int {
	for ; i < len(text); i++ {
		if !isSpaceByte(text[i]) {
			return i
		}
	}
	return -1
}

// angleOpenAccepted decides whether the '<' at offset i acts as a
// generic/template opener rather than an operator.
func angleOpenAccepted(text []byte, i int, h Heuristic) bool {
	// Character-pair operators: <=, <<, =<.
	if i+1 < len(text) && (text[i+1] == '=' || text[i+1] == '<') {
		return false
	}
	if i > 0 && (text[i-1] == '<' || text[i-1] == '=') {
		return false
	}

	prev := prevNonSpace(text, i-1)
	next := nextNonSpace(text, i+1)

	if h == HeuristicStrict {
		// A '<' separated from a neighbor by whitespace with operands
		// on both sides reads as a comparison. The whitespace condition
		// keeps List<Item> out of this rule: generic arguments hug
		// their delimiters, comparisons rarely do.
		spaced := (i > 0 && isSpaceByte(text[i-1])) ||
			(i+1 < len(text) && isSpaceByte(text[i+1]))
		if spaced && prev >= 0 && next >= 0 &&
			isOperandByte(text[prev]) && isOperandByte(text[next]) {
			return false
		}
	}

	// Plausible generic-open shape: a type-ish thing before (or start
	// of document), a type-ish thing after.
	if prev >= 0 {
		c := text[prev]
		if !isWordByte(c) && c != ')' && c != ']' && c != '>' {
			return false
		}
	}
	if next < 0 {
		return false
	}
	if c := text[next]; !isWordByte(c) && c != '?' && c != '(' {
		return false
	}

	if h == HeuristicStrict {
		return angleSpanPlausible(text, i)
	}
	return true
}

// angleSpanPlausible scans forward from the '<' at open, on the same
// line, looking for the matching '>' while tracking nested depth. The
// generic-open reading is rejected when the span starts with a digit,
// never closes on this line, contains operator characters, or contains
// no letters at all.
func angleSpanPlausible(text []byte, open int) bool {
	next := nextNonSpace(text, open+1)
	if next < 0 || isDigitByte(text[next]) {
		return false
	}

	depth := 1
	hasAlpha := false
	for j := open + 1; j < len(text); j++ {
		c := text[j]
		if c == '\n' || c == '\r' {
			return false
		}
		switch c {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return hasAlpha
			}
		case '|', '&', '=', '+', '-', '*', '/', ':', '!':
			return false
		}
		if isAlphaByte(c) {
			hasAlpha = true
		}
	}
	return false
}

// angleCloseOperator reports whether the '>' at offset i reads as part
// of an operator. It is consulted only when the bracket stack does not
// have an open angle on top; a '>' closing a generic is accepted
// unconditionally so that '>>' can close two nested generics.
func angleCloseOperator(text []byte, i int, h Heuristic) bool {
	if i > 0 && (text[i-1] == '-' || text[i-1] == '=' || text[i-1] == '>') {
		return true
	}
	if i+1 < len(text) && (text[i+1] == '=' || text[i+1] == '>') {
		return true
	}
	if h == HeuristicStrict {
		prev := prevNonSpace(text, i-1)
		next := nextNonSpace(text, i+1)
		if prev >= 0 && next >= 0 &&
			isOperandByte(text[prev]) && isOperandByte(text[next]) {
			return true
		}
	}
	return false
}
