package runner

import (
	"github.com/yaklabco/gobrackets/pkg/bracket"
	"github.com/yaklabco/gobrackets/pkg/textdoc"
)

// FileOutcome holds the scan result for a single file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Doc is the snapshot of the file at scan time.
	// May be nil if the file encountered an error during processing.
	Doc *textdoc.Snapshot

	// Ranges are the colorized bracket positions, in ascending offset order.
	Ranges []bracket.Range

	// Inactive are the preprocessor inactive regions, when requested.
	Inactive []bracket.InactiveRange

	// Skipped is true when the file was passed over (binary or too large).
	Skipped bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped (binary or too large).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// RangesTotal is the total number of bracket ranges across all files.
	RangesTotal int

	// FilesWithBrackets is the number of files with at least one range.
	FilesWithBrackets int

	// RangesByLevel maps nesting levels to counts.
	RangesByLevel map[int]int

	// RangesByKind maps bracket kind names to counts.
	RangesByKind map[string]int

	// InactiveRegions is the total number of preprocessor inactive regions.
	InactiveRegions int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// NewResult builds a Result from individual file outcomes, aggregating
// statistics. Outcomes are kept in the order given.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{Stats: newStats()}
	result.Stats.FilesDiscovered = len(outcomes)

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	return result
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasBrackets reports whether any bracket ranges were produced.
func (r *Result) HasBrackets() bool {
	if r == nil {
		return false
	}
	return r.Stats.RangesTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		RangesByLevel: make(map[int]int),
		RangesByKind:  make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.RangesTotal += len(outcome.Ranges)
	r.Stats.InactiveRegions += len(outcome.Inactive)

	if len(outcome.Ranges) > 0 {
		r.Stats.FilesWithBrackets++
	}

	for _, rng := range outcome.Ranges {
		r.Stats.RangesByLevel[rng.Level]++

		if outcome.Doc != nil {
			if kind, _, ok := bracket.Classify(outcome.Doc.Content[rng.Start]); ok {
				r.Stats.RangesByKind[kind.String()]++
			}
		}
	}
}
