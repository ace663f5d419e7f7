package analysis

import "time"

// Report contains pre-computed views of a scan result.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// ByFile groups bracket statistics by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByKind groups bracket statistics by bracket kind.
	ByKind []KindAnalysis `json:"byKind,omitempty"`

	// ByLanguage groups bracket statistics by detected language.
	ByLanguage []LanguageAnalysis `json:"byLanguage,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files             int `json:"filesScanned"`
	FilesWithBrackets int `json:"filesWithBrackets"`
	FilesSkipped      int `json:"filesSkipped"`
	FilesErrored      int `json:"filesErrored"`
	Brackets          int `json:"totalBrackets"`
	MaxLevel          int `json:"maxLevel"`
	InactiveRegions   int `json:"inactiveRegions"`
}

// HasBrackets returns true if any brackets were found.
func (t Totals) HasBrackets() bool {
	return t.Brackets > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path            string   `json:"path"`
	Language        string   `json:"language,omitempty"`
	Brackets        int      `json:"brackets"`
	MaxLevel        int      `json:"maxLevel"`
	InactiveRegions int      `json:"inactiveRegions,omitempty"`
	Kinds           []string `json:"kinds,omitempty"`
}

// KindAnalysis contains aggregated data for a single bracket kind.
type KindAnalysis struct {
	Kind     string   `json:"kind"`
	Brackets int      `json:"brackets"`
	Files    []string `json:"files,omitempty"`
}

// LanguageAnalysis contains aggregated data for a detected language.
type LanguageAnalysis struct {
	Language string `json:"language"`
	Files    int    `json:"files"`
	Brackets int    `json:"brackets"`
}
