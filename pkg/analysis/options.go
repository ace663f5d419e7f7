package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by bracket count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
	// SortByDepth sorts by maximum nesting level (deepest first).
	SortByDepth SortField = "depth"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortByDepth:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeByFile includes the per-file analysis.
	IncludeByFile bool

	// IncludeByKind includes the per-kind analysis.
	IncludeByKind bool

	// IncludeByLanguage includes the per-language analysis.
	IncludeByLanguage bool

	// SortBy specifies how to sort ByFile and ByKind.
	SortBy SortField

	// SortDesc sorts in descending order (highest first).
	SortDesc bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeByFile:     true,
		IncludeByKind:     true,
		IncludeByLanguage: true,
		SortBy:            SortByCount,
		SortDesc:          true,
	}
}
