package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gobrackets/internal/ui/pretty"
	"github.com/yaklabco/gobrackets/pkg/runner"
)

// RenderReporter prints each file's source with brackets colorized by
// nesting level and preprocessor-inactive regions dimmed.
type RenderReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewRenderReporter creates a new render reporter.
func NewRenderReporter(opts Options) *RenderReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &RenderReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled, opts.Palette),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *RenderReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var total int

	for idx, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Skipped || file.Doc == nil {
			continue
		}

		// Header between files when scanning more than one.
		if len(result.Files) > 1 {
			if idx > 0 {
				fmt.Fprintln(r.bw)
			}
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Ranges)))
		}

		total += r.renderFile(file)
	}

	return total, nil
}

// renderFile writes the file content with styled brackets.
func (r *RenderReporter) renderFile(file runner.FileOutcome) int {
	content := file.Doc.Content
	ranges := file.Ranges
	inactive := file.Inactive

	rangeIdx := 0
	inactiveIdx := 0
	count := 0

	for offset := 0; offset < len(content); offset++ {
		// Advance past inactive regions that end before this offset.
		for inactiveIdx < len(inactive) && inactive[inactiveIdx].End < offset {
			inactiveIdx++
		}

		if rangeIdx < len(ranges) && ranges[rangeIdx].Start == offset {
			r.bw.WriteString(r.styles.LevelStyle(ranges[rangeIdx].Level).Render(string(content[offset])))
			rangeIdx++
			count++
			continue
		}

		if inactiveIdx < len(inactive) && inactive[inactiveIdx].Contains(offset) && content[offset] != '\n' {
			r.bw.WriteString(r.styles.Inactive.Render(string(content[offset])))
			continue
		}

		r.bw.WriteByte(content[offset])
	}

	// Keep the terminal tidy when the file lacks a trailing newline.
	if len(content) > 0 && content[len(content)-1] != '\n' {
		r.bw.WriteByte('\n')
	}

	return count
}
