// Package bracket colors matching bracket pairs by nesting depth.
//
// The scanner decides, for every bracket-like character of a source
// text, whether it is a structural bracket or an operator use (the
// distinction only matters for angle brackets), assigns it a cyclic
// color level from its nesting depth, and recovers from the unbalanced
// nesting that documents routinely contain while being edited. For
// C-family input a line-oriented preprocessor evaluator additionally
// suppresses brackets inside dead conditional branches.
//
// A scan is a pure function over an immutable snapshot: it performs no
// I/O, holds no state between calls, and never fails on malformed
// input. Concurrent scans of different documents are safe because all
// state is call-local.
package bracket

// DefaultLevelCount is the default number of color levels; nesting
// depth wraps around the level count rather than growing unbounded.
const DefaultLevelCount = 9

// Range is a single highlighted bracket character. End is exclusive
// and always Start+1: brackets are colored one character at a time,
// not as matched spans.
type Range struct {
	Start int
	End   int
	Level int
}

// Options controls one scan pass.
type Options struct {
	// LevelCount is the number of color levels. Values below 1 fall
	// back to DefaultLevelCount; configuration validation should have
	// rejected them long before a scan runs.
	LevelCount int

	// Kinds selects which bracket kinds produce ranges. Disabled kinds
	// still take part in nesting bookkeeping, so disabling one kind
	// does not shift the levels assigned to the others.
	Kinds KindSet

	// Heuristic selects the angle-bracket disambiguation tier.
	Heuristic Heuristic

	// NoPreprocessor disables the inactive-region scan.
	NoPreprocessor bool
}

// DefaultOptions returns the options used when a caller has no
// configuration: all kinds enabled, nine levels, strict heuristic.
func DefaultOptions() Options {
	return Options{
		LevelCount: DefaultLevelCount,
		Kinds:      AllKinds(),
		Heuristic:  HeuristicStrict,
	}
}

func (o Options) normalized() Options {
	if o.LevelCount < 1 {
		o.LevelCount = DefaultLevelCount
	}
	return o
}

// Scan classifies and colors the brackets of text, returning the
// fully-materialized range list in ascending offset order.
//
// tokens may be nil, in which case every character is a candidate (no
// comment or string exclusion is possible). langID may be empty when
// the language is unknown; the preprocessor scan then runs
// speculatively, since its false positives only suppress coloring in a
// plausibly-dead region.
func Scan(text []byte, tokens []Token, langID string, opts Options) []Range {
	opts = opts.normalized()

	var inactive []InactiveRange
	if !opts.NoPreprocessor && (langID == "" || CFamily(langID)) {
		inactive = InactiveRanges(text)
	}

	n := newNesting(opts.LevelCount, opts.Kinds)
	cursor := inactiveCursor{ranges: inactive}

	if tokens == nil {
		scanSpan(text, 0, len(text), n, &cursor, opts.Heuristic)
		return n.out
	}

	for _, tok := range tokens {
		if tok.Excluded() {
			continue
		}
		start, end := tok.Start, tok.End
		if start < 0 {
			start = 0
		}
		if end > len(text) {
			end = len(text)
		}
		scanSpan(text, start, end, n, &cursor, opts.Heuristic)
	}
	return n.out
}

// scanSpan feeds the bracket characters of text[start:end] into the
// nesting engine. Angle brackets pass through the operator heuristics
// first; a '<' or '>' classified as an operator produces no event at
// all, not even an unmatched-close range.
func scanSpan(text []byte, start, end int, n *nesting, cursor *inactiveCursor, h Heuristic) {
	for i := start; i < end; i++ {
		kind, role, ok := Classify(text[i])
		if !ok || cursor.covers(i) {
			continue
		}

		if kind == Angle {
			if role == RoleOpen {
				if angleOpenAccepted(text, i, h) {
					n.open(Angle, i)
				}
				continue
			}
			// A '>' with an open angle on top of the stack closes it
			// unconditionally, letting '>>' close two nested generics.
			if n.topIs(Angle) || !angleCloseOperator(text, i, h) {
				n.close(Angle, i)
			}
			continue
		}

		if role == RoleOpen {
			n.open(kind, i)
		} else {
			n.close(kind, i)
		}
	}
}

// inactiveCursor walks a sorted inactive-range list alongside the
// monotonically increasing candidate offsets.
type inactiveCursor struct {
	ranges []InactiveRange
	idx    int
}

func (c *inactiveCursor) covers(offset int) bool {
	for c.idx < len(c.ranges) && c.ranges[c.idx].End < offset {
		c.idx++
	}
	return c.idx < len(c.ranges) && c.ranges[c.idx].Contains(offset)
}
