package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gobrackets/internal/ui/pretty"
	"github.com/yaklabco/gobrackets/pkg/bracket"
	"github.com/yaklabco/gobrackets/pkg/runner"
)

// TextReporter formats results as styled terminal output, one line per
// bracket with its position, level, and kind.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled, opts.Palette),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to scan."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Skipped || file.Doc == nil || len(file.Ranges) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Ranges)))

		for _, rng := range file.Ranges {
			line, col := file.Doc.LineAt(rng.Start)
			char := file.Doc.Content[rng.Start]

			kindName := "?"
			if kind, _, ok := bracket.Classify(char); ok {
				kindName = kind.String()
			}

			fmt.Fprint(r.bw, r.styles.FormatBracketLine(line, col, char, rng.Level, kindName))

			if r.opts.ShowContext {
				fmt.Fprint(r.bw, r.styles.FormatSourceContext(string(file.Doc.LineContent(line)), col))
			}

			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
