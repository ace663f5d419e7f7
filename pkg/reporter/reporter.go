// Package reporter formats and writes bracket scan results.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/gobrackets/pkg/runner"
)

// Reporter formats and writes scan results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of bracket ranges reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatRender:
		return NewRenderReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// displayPath makes a path relative to the working directory when possible.
func displayPath(path, workingDir string) string {
	if workingDir == "" {
		return path
	}
	rel, err := filepath.Rel(workingDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}
