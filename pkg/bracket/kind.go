package bracket

import (
	"fmt"
	"strings"
)

// Kind identifies one of the four bracket pairs.
type Kind uint8

// Bracket kinds, in stack-entry and configuration order.
const (
	Round  Kind = iota // ( )
	Curly              // { }
	Square             // [ ]
	Angle              // < >

	numKinds
)

// String returns the lowercase kind name used in configuration and output.
func (k Kind) String() string {
	switch k {
	case Round:
		return "round"
	case Curly:
		return "curly"
	case Square:
		return "square"
	case Angle:
		return "angle"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Open returns the opening character of the pair.
func (k Kind) Open() byte {
	return [numKinds]byte{'(', '{', '[', '<'}[k]
}

// Close returns the closing character of the pair.
func (k Kind) Close() byte {
	return [numKinds]byte{')', '}', ']', '>'}[k]
}

// ParseKind parses a kind name as it appears in configuration files and
// the --kinds flag.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "round", "paren", "parentheses":
		return Round, nil
	case "curly", "brace", "braces":
		return Curly, nil
	case "square", "bracket", "brackets":
		return Square, nil
	case "angle":
		return Angle, nil
	default:
		return 0, fmt.Errorf("unknown bracket kind %q; valid kinds: round, curly, square, angle", name)
	}
}

// Role says whether a bracket character opens or closes its pair.
type Role uint8

// Bracket roles.
const (
	RoleOpen Role = iota
	RoleClose
)

// Classify maps a byte to its bracket kind and role. The third result
// is false for non-bracket characters.
func Classify(c byte) (Kind, Role, bool) {
	switch c {
	case '(':
		return Round, RoleOpen, true
	case ')':
		return Round, RoleClose, true
	case '{':
		return Curly, RoleOpen, true
	case '}':
		return Curly, RoleClose, true
	case '[':
		return Square, RoleOpen, true
	case ']':
		return Square, RoleClose, true
	case '<':
		return Angle, RoleOpen, true
	case '>':
		return Angle, RoleClose, true
	default:
		return 0, 0, false
	}
}

// KindSet is a bit set of bracket kinds.
type KindSet uint8

// AllKinds returns a set containing every bracket kind.
func AllKinds() KindSet {
	return 1<<numKinds - 1
}

// With returns a copy of the set with k added.
func (s KindSet) With(k Kind) KindSet {
	return s | 1<<k
}

// Without returns a copy of the set with k removed.
func (s KindSet) Without(k Kind) KindSet {
	return s &^ (1 << k)
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// Kinds returns the members of the set in declaration order.
func (s KindSet) Kinds() []Kind {
	var kinds []Kind
	for k := Round; k < numKinds; k++ {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
