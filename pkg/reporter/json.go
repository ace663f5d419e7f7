package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gobrackets/pkg/bracket"
	"github.com/yaklabco/gobrackets/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Language string        `json:"language,omitempty"`
	Brackets []JSONBracket `json:"brackets"`
	Inactive []JSONSpan    `json:"inactive,omitempty"`
	Skipped  bool          `json:"skipped,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// JSONBracket represents a single colorized bracket.
type JSONBracket struct {
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Char   string `json:"char"`
	Kind   string `json:"kind"`
	Level  int    `json:"level"`
}

// JSONSpan represents an inclusive byte range.
type JSONSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesScanned      int            `json:"filesScanned"`
	FilesSkipped      int            `json:"filesSkipped"`
	FilesErrored      int            `json:"filesErrored"`
	FilesWithBrackets int            `json:"filesWithBrackets"`
	TotalBrackets     int            `json:"totalBrackets"`
	ByLevel           map[string]int `json:"byLevel"`
	ByKind            map[string]int `json:"byKind"`
	InactiveRegions   int            `json:"inactiveRegions"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalBrackets, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			ByLevel: make(map[string]int),
			ByKind:  make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     displayPath(file.Path, r.opts.WorkingDir),
			Brackets: make([]JSONBracket, 0, len(file.Ranges)),
			Skipped:  file.Skipped,
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
			output.Files = append(output.Files, fileResult)
			continue
		}

		if file.Skipped {
			output.Summary.FilesSkipped++
			output.Files = append(output.Files, fileResult)
			continue
		}

		if file.Doc != nil {
			fileResult.Language = file.Doc.LangID
		}

		for _, rng := range file.Ranges {
			jsonBracket := JSONBracket{
				Offset: rng.Start,
				Level:  rng.Level,
			}

			if file.Doc != nil {
				jsonBracket.Line, jsonBracket.Column = file.Doc.LineAt(rng.Start)

				char := file.Doc.Content[rng.Start]
				jsonBracket.Char = string(char)
				if kind, _, ok := bracket.Classify(char); ok {
					jsonBracket.Kind = kind.String()
				}

				output.Summary.ByKind[jsonBracket.Kind]++
			}

			output.Summary.ByLevel[fmt.Sprintf("%d", rng.Level)]++
			fileResult.Brackets = append(fileResult.Brackets, jsonBracket)
			output.Summary.TotalBrackets++
		}

		for _, span := range file.Inactive {
			fileResult.Inactive = append(fileResult.Inactive, JSONSpan{
				Start: span.Start,
				End:   span.End,
			})
			output.Summary.InactiveRegions++
		}

		if len(fileResult.Brackets) > 0 {
			output.Summary.FilesWithBrackets++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesScanned++
	}

	return output
}
