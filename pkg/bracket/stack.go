package bracket

// stackEntry records one unmatched open bracket and its assigned level.
type stackEntry struct {
	kind  Kind
	level int
}

// nesting assigns color levels to bracket events in document order.
// It is scratch state for a single scan pass: the stack starts empty,
// is discarded when the pass ends, and is never shared between scans.
//
// The engine is a recovery machine, not a validator. Documents are
// edited interactively and are routinely unbalanced mid-keystroke, so
// every event resolves to a coloring decision and none aborts the scan.
type nesting struct {
	levelCount int
	enabled    KindSet
	stack      []stackEntry
	out        []Range
}

func newNesting(levelCount int, enabled KindSet) *nesting {
	return &nesting{
		levelCount: levelCount,
		enabled:    enabled,
	}
}

// depth returns the number of unmatched opens currently on the stack.
func (n *nesting) depth() int {
	return len(n.stack)
}

// topIs reports whether the innermost unmatched open has kind k.
func (n *nesting) topIs(k Kind) bool {
	return len(n.stack) > 0 && n.stack[len(n.stack)-1].kind == k
}

// open pushes an open bracket, assigning it the cyclic level for the
// current depth.
func (n *nesting) open(k Kind, offset int) {
	level := len(n.stack) % n.levelCount
	n.stack = append(n.stack, stackEntry{kind: k, level: level})
	n.emit(k, offset, level)
}

// close resolves a close bracket against the stack. A matching top is
// a normal pop. A lone close on an empty stack is colored at level 0
// rather than dropped, so punctuation does not flicker unstyled while
// the user is mid-edit. On a kind mismatch the stack is unwound to the
// nearest open of the same kind; the skipped entries are dropped
// without ranges for their unresolved opens.
func (n *nesting) close(k Kind, offset int) {
	if len(n.stack) == 0 {
		n.emit(k, offset, 0)
		return
	}

	if top := n.stack[len(n.stack)-1]; top.kind == k {
		n.stack = n.stack[:len(n.stack)-1]
		n.emit(k, offset, top.level)
		return
	}

	for i := len(n.stack) - 1; i >= 0; i-- {
		if n.stack[i].kind == k {
			level := n.stack[i].level
			n.stack = n.stack[:i]
			n.emit(k, offset, level)
			return
		}
	}

	n.stack = n.stack[:0]
	n.emit(k, offset, 0)
}

// emit records a single-character range unless the kind is disabled.
// Disabled kinds still reach open/close, so they keep consuming stack
// depth and the levels of enabled kinds are unaffected.
func (n *nesting) emit(k Kind, offset, level int) {
	if !n.enabled.Has(k) {
		return
	}
	n.out = append(n.out, Range{Start: offset, End: offset + 1, Level: level})
}
