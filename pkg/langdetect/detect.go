// Package langdetect provides language detection for source files.
// It uses go-enry to resolve a lowercase language identifier from a
// filename and its content, which downstream code uses to decide
// whether preprocessor-aware scanning applies.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifiers for languages the scanner treats specially.
const (
	langC          = "c"
	langCPP        = "c++"
	langObjectiveC = "objective-c"
	langText       = "text"
	langBash       = "bash"
)

// DetectFile returns the detected language identifier for a file.
// Filename-based detection is tried first, then content detection.
// Returns "text" when nothing matches.
func DetectFile(path string, content []byte) string {
	if path != "" {
		if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
			return Normalize(lang)
		}
	}
	return DetectContent(content)
}

// DetectContent returns the detected language for raw content without
// a filename. Returns "text" if detection fails or confidence is low.
func DetectContent(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	// Strategy 1: Check shebang first (most reliable).
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return Normalize(lang)
	}

	// Strategy 2: Check for highly indicative patterns before the classifier.
	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	// Strategy 3: Use classifier with common language candidates.
	candidates := []string{
		"C", "C++", "Objective-C", "C#", "Go", "Rust", "Java",
		"Python", "JavaScript", "TypeScript", "Ruby", "Shell",
	}

	// Only use the result if confidence is high (safe == true).
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return Normalize(lang)
	}

	return langText
}

// detectByPattern checks for language-specific patterns that are highly indicative.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	contentStr := string(content)

	if lang := detectCFamily(contentStr); lang != "" {
		return lang
	}
	if bytes.HasPrefix(trimmed, []byte("package ")) {
		return "go"
	}
	if strings.Contains(contentStr, "fn main()") || strings.Contains(contentStr, "println!") {
		return "rust"
	}
	if strings.Contains(contentStr, "def ") && strings.Contains(contentStr, "):") {
		return "python"
	}

	return ""
}

// detectCFamily checks for C and C++ patterns.
func detectCFamily(contentStr string) string {
	hasInclude := strings.Contains(contentStr, "#include")

	// C++ markers.
	if strings.Contains(contentStr, "template <") ||
		strings.Contains(contentStr, "template<") ||
		strings.Contains(contentStr, "std::") ||
		strings.Contains(contentStr, "namespace ") {
		return langCPP
	}

	// Objective-C markers.
	if strings.Contains(contentStr, "@interface") || strings.Contains(contentStr, "@implementation") {
		return langObjectiveC
	}

	if hasInclude {
		return langC
	}

	return ""
}

// Normalize converts go-enry language names to lowercase identifiers.
func Normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
