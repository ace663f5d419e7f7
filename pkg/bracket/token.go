package bracket

import "strings"

// Token is one unit of an externally supplied lexical token stream.
// Tokens cover the document contiguously and without gaps; Start and
// End are byte offsets with End exclusive.
type Token struct {
	// Start is the byte offset of the first character of the token.
	Start int

	// End is the byte offset just past the last character.
	End int

	// Tags are the tokenizer's semantic category names for this token
	// (for example "CommentSingle" or "LiteralStringDouble"). Naming
	// varies across tokenizers, so exclusion matches substrings rather
	// than exact names.
	Tags []string
}

// excludedTagParts remove a token's characters from bracket candidacy
// when any tag contains one of them, case-insensitively. The substring
// match is intentionally coarse: it covers CommentSingle, COMMENT_BLOCK,
// LiteralStringDoc and the rest of the naming zoo without per-language
// special cases.
var excludedTagParts = [...]string{"comment", "string", "doc"}

// Excluded reports whether the token's characters may not produce
// bracket events.
func (t Token) Excluded() bool {
	for _, tag := range t.Tags {
		lower := strings.ToLower(tag)
		for _, part := range excludedTagParts {
			if strings.Contains(lower, part) {
				return true
			}
		}
	}
	return false
}
