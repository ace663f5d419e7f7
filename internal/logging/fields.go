// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldFormat     = "format"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldLevels    = "levels"
	FieldHeuristic = "heuristic"
	FieldLang      = "lang"
	FieldJobs      = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesSkipped    = "files_skipped"
	FieldRangesTotal     = "ranges_total"
	FieldInactiveRegions = "inactive_regions"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
