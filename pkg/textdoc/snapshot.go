// Package textdoc provides an immutable view of a source text file.
// A Snapshot holds the raw bytes plus line metadata so byte offsets
// produced by the bracket scanner can be translated to line/column
// positions and back.
package textdoc

// Snapshot is an immutable, lossless view of a text file at a specific time.
type Snapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// LangID is the detected language identifier (may be empty when unknown).
	LangID string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewSnapshot creates a new Snapshot from content and builds its line index.
func NewSnapshot(path, langID string, content []byte) *Snapshot {
	return &Snapshot{
		Path:    path,
		LangID:  langID,
		Content: content,
		Lines:   BuildLines(content),
	}
}
