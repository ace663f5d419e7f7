// Package runner provides multi-file scan orchestration.
package runner

import "github.com/yaklabco/gobrackets/pkg/config"

// Options controls multi-file scanning behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions restricts discovery to files with these extensions
	// (lowercase, with leading dot). Empty means "any file".
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// WithInactive also computes preprocessor inactive regions for
	// C-family files.
	WithInactive bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveConfig returns the config to use, defaulting if nil.
func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}
