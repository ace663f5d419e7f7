package bracket

import "strings"

// InactiveRange is a byte span of source text lying inside a dead
// conditional-compilation branch. Start and End are inclusive offsets;
// ranges cover whole lines and never split one.
type InactiveRange struct {
	Start int
	End   int
}

// Contains reports whether offset falls inside the range.
func (r InactiveRange) Contains(offset int) bool {
	return offset >= r.Start && offset <= r.End
}

// CFamily reports whether the language identifier names a C-family
// language, the only family whose preprocessor conditionals are
// understood by the inactive-region scanner.
func CFamily(langID string) bool {
	id := strings.ToLower(strings.TrimSpace(langID))
	switch id {
	case "c", "h":
		return true
	}
	for _, s := range [...]string{"c++", "cpp", "c#", "csharp", "objective", "objc"} {
		if strings.Contains(id, s) {
			return true
		}
	}
	return false
}

// condValue is the tri-state result of evaluating a preprocessor
// condition. Unknown conditions resolve as active (fail open): the
// scanner would rather color brackets in truly-dead code than suppress
// them in live code it cannot understand.
type condValue uint8

const (
	condFalse condValue = iota
	condTrue
	condUnknown
)

// ppFrame tracks one #if/#endif block during the scan.
type ppFrame struct {
	// active is whether the branch currently being read is live.
	active bool

	// conditionKnown is false when the #if condition evaluated to
	// unknown; #elif and #else then leave the state untouched.
	conditionKnown bool

	// trueBranchTaken flips once the first branch of the block is
	// known-true; every later branch is then dead.
	trueBranchTaken bool
}

// ppState is the per-pass scanner state: the frame stack plus the
// defined-symbol bookkeeping mutated by #define and #undef. None of it
// survives the pass.
type ppState struct {
	frames []ppFrame

	// defined maps a symbol to its current definedness; known records
	// that the symbol was mentioned at all, distinguishing known-false
	// from never-seen (which evaluates unknown).
	defined map[string]bool
	known   map[string]bool
}

func (s *ppState) anyInactive() bool {
	for _, f := range s.frames {
		if !f.active {
			return true
		}
	}
	return false
}

// InactiveRanges scans text line by line, evaluating C-preprocessor
// conditionals, and returns the dead-branch byte ranges sorted by
// start offset. The result is non-overlapping by construction.
func InactiveRanges(text []byte) []InactiveRange {
	state := &ppState{
		defined: make(map[string]bool),
		known:   make(map[string]bool),
	}

	var ranges []InactiveRange
	regionStart := -1

	lineStart := 0
	for lineStart < len(text) {
		lineEnd := lineStart
		for lineEnd < len(text) && text[lineEnd] != '\n' {
			lineEnd++
		}
		nextLine := lineEnd
		if nextLine < len(text) {
			nextLine++ // past the newline
		}

		line := text[lineStart:lineEnd]
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}

		if keyword, arg, ok := parseDirective(line); ok {
			before := state.anyInactive()
			state.apply(keyword, arg)
			after := state.anyInactive()

			// Regions open immediately after the directive line that
			// deactivated them and close immediately before the line
			// that reactivates them.
			if !before && after {
				regionStart = nextLine
			} else if before && !after && regionStart >= 0 {
				if regionStart <= lineStart-1 {
					ranges = append(ranges, InactiveRange{Start: regionStart, End: lineStart - 1})
				}
				regionStart = -1
			}
		}

		lineStart = nextLine
	}

	// Document ended mid-block; the region runs to the end.
	if regionStart >= 0 && regionStart <= len(text)-1 {
		ranges = append(ranges, InactiveRange{Start: regionStart, End: len(text) - 1})
	}

	return ranges
}

// apply executes one recognized directive against the scanner state.
func (s *ppState) apply(keyword, arg string) {
	switch keyword {
	case "define":
		if !s.anyInactive() {
			if name := firstWord(arg); name != "" {
				s.defined[name] = true
				s.known[name] = true
			}
		}

	case "undef":
		if !s.anyInactive() {
			if name := firstWord(arg); name != "" {
				s.defined[name] = false
				s.known[name] = true
			}
		}

	case "if":
		cond := s.evalConditionish(arg)
		s.push(cond)

	case "ifdef":
		s.push(s.lookup(firstWord(arg), false))

	case "ifndef":
		s.push(s.lookup(firstWord(arg), true))

	case "elif":
		s.branch(s.evalConditionish(arg))

	case "else":
		s.branch(condTrue)

	case "endif":
		if len(s.frames) > 0 {
			s.frames = s.frames[:len(s.frames)-1]
		}
	}
}

func (s *ppState) push(cond condValue) {
	s.frames = append(s.frames, ppFrame{
		active:          cond != condFalse,
		conditionKnown:  cond != condUnknown,
		trueBranchTaken: cond == condTrue,
	})
}

// branch handles #elif and #else; #else is an #elif with an implicit
// always-true condition.
func (s *ppState) branch(cond condValue) {
	if len(s.frames) == 0 {
		return // stray directive
	}
	top := &s.frames[len(s.frames)-1]

	if !top.conditionKnown {
		// The block's condition was never understood; stay in the
		// current state rather than guess (fail open).
		return
	}

	if top.trueBranchTaken {
		// A known-true branch already fired, so this one is dead. This
		// is the one place the scanner fails closed.
		top.active = false
		return
	}

	switch cond {
	case condTrue:
		top.active = true
		top.trueBranchTaken = true
	case condFalse:
		top.active = false
	case condUnknown:
		top.active = true
		top.conditionKnown = false
	}
}

// lookup evaluates definedness of a symbol, returning unknown for
// symbols no #define or #undef ever mentioned.
func (s *ppState) lookup(name string, negate bool) condValue {
	if name == "" || !s.known[name] {
		return condUnknown
	}
	if s.defined[name] != negate {
		return condTrue
	}
	return condFalse
}

// evalConditionish evaluates the restricted set of condition shapes the
// scanner understands: 0/1/false/true literals, defined(NAME) and
// defined NAME, bare NAME, and !NAME. Anything else is unknown; full
// expression arithmetic is out of scope.
func (s *ppState) evalConditionish(expr string) condValue {
	expr = strings.TrimSpace(expr)

	switch expr {
	case "0", "false":
		return condFalse
	case "1", "true":
		return condTrue
	}

	if rest, ok := strings.CutPrefix(expr, "defined"); ok {
		rest = strings.TrimSpace(rest)
		if inner, ok := strings.CutPrefix(rest, "("); ok {
			inner, ok = strings.CutSuffix(inner, ")")
			if !ok {
				return condUnknown
			}
			return s.lookup(identOnly(strings.TrimSpace(inner)), false)
		}
		if name := identOnly(rest); name != "" {
			return s.lookup(name, false)
		}
		return condUnknown
	}

	if rest, ok := strings.CutPrefix(expr, "!"); ok {
		if name := identOnly(strings.TrimSpace(rest)); name != "" {
			return s.lookup(name, true)
		}
		return condUnknown
	}

	if name := identOnly(expr); name != "" {
		return s.lookup(name, false)
	}

	return condUnknown
}

// parseDirective recognizes lines of the form
//
//	[ws] # [ws] keyword [ws argument...]
//
// returning ok only for the keywords the scanner acts on.
func parseDirective(line []byte) (keyword, arg string, ok bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) || line[i] != '#' {
		return "", "", false
	}
	i++
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}

	start := i
	for i < len(line) && line[i] >= 'a' && line[i] <= 'z' {
		i++
	}
	keyword = string(line[start:i])

	switch keyword {
	case "define", "undef", "if", "ifdef", "ifndef", "elif", "else", "endif":
	default:
		return "", "", false
	}

	arg = strings.TrimSpace(string(line[i:]))
	return keyword, arg, true
}

// firstWord returns the leading identifier of s, or "".
func firstWord(s string) string {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && isWordByte(s[end]) {
		end++
	}
	return s[:end]
}

// identOnly returns s when it is a bare identifier, else "".
func identOnly(s string) string {
	if s == "" {
		return ""
	}
	for i := 0; i < len(s); i++ {
		if !isWordByte(s[i]) {
			return ""
		}
	}
	return s
}
