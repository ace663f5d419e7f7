// Package tokenize adapts chroma lexers into classifier tokens for the
// bracket scanner. Each token carries the chroma type names as tags so
// the scanner can skip comments, strings, and doc text.
package tokenize

import (
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/yaklabco/gobrackets/pkg/bracket"
)

var (
	lexerCache   = make(map[string]chroma.Lexer)
	lexerCacheMu sync.RWMutex
)

// lexerFor resolves and caches a lexer for a language identifier.
// Returns nil when no lexer matches.
func lexerFor(langID string) chroma.Lexer {
	if langID == "" {
		return nil
	}

	lexerCacheMu.RLock()
	lexer := lexerCache[langID]
	lexerCacheMu.RUnlock()

	if lexer != nil {
		return lexer
	}

	lexer = lexers.Get(langID)
	if lexer == nil {
		// Try with file extension.
		lexer = lexers.Match("file." + langID)
	}
	if lexer == nil {
		return nil
	}

	lexer = chroma.Coalesce(lexer)

	lexerCacheMu.Lock()
	lexerCache[langID] = lexer
	lexerCacheMu.Unlock()

	return lexer
}

// Tokens classifies content for the given language identifier.
// Returns nil when no lexer is available or the lexer output does not
// cover the content losslessly; callers fall back to raw scanning.
func Tokens(content []byte, langID string) []bracket.Token {
	lexer := lexerFor(langID)
	if lexer == nil {
		return nil
	}

	iterator, err := lexer.Tokenise(nil, string(content))
	if err != nil {
		return nil
	}

	chromaTokens := iterator.Tokens()
	tokens := make([]bracket.Token, 0, len(chromaTokens))

	offset := 0
	for _, tok := range chromaTokens {
		if tok.Value == "" {
			continue
		}

		end := offset + len(tok.Value)
		tokens = append(tokens, bracket.Token{
			Start: offset,
			End:   end,
			Tags:  tagsFor(tok.Type),
		})
		offset = end
	}

	// The token stream must reconstruct the input byte for byte,
	// otherwise the offsets are unusable.
	if offset != len(content) {
		return nil
	}

	return tokens
}

// tagsFor returns the chroma type names for a token type, most specific first.
func tagsFor(tokenType chroma.TokenType) []string {
	tags := []string{tokenType.String()}

	if sub := tokenType.SubCategory(); sub != tokenType {
		tags = append(tags, sub.String())
	}
	if cat := tokenType.Category(); cat != tokenType {
		tags = append(tags, cat.String())
	}

	return tags
}
