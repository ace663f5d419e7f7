package pretty

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/gobrackets/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "42 brackets in 3 files (2 skipped)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.RangesTotal == 0 {
		msg := s.Success.Render("No brackets found") +
			s.Dim.Render(fmt.Sprintf(" (%d files scanned)", stats.FilesProcessed))
		return msg + "\n"
	}

	bracketWord := "brackets"
	if stats.RangesTotal == 1 {
		bracketWord = "bracket"
	}

	fileWord := wordFiles
	if stats.FilesWithBrackets == 1 {
		fileWord = wordFile
	}

	parts := []string{
		fmt.Sprintf("%d %s in %d %s", stats.RangesTotal, bracketWord, stats.FilesWithBrackets, fileWord),
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}
	if stats.InactiveRegions > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d inactive regions", stats.InactiveRegions)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files scanned:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:       " +
			s.Dim.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:       " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("  Files with brackets: " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesWithBrackets)) + "\n")

	builder.WriteString("\n")
	builder.WriteString("  Total brackets:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.RangesTotal)) + "\n")

	for _, kind := range sortedKeys(stats.RangesByKind) {
		builder.WriteString(fmt.Sprintf("    %-10s         %s\n",
			kind, s.SummaryValue.Render(strconv.Itoa(stats.RangesByKind[kind]))))
	}

	if len(stats.RangesByLevel) > 0 {
		builder.WriteString("\n")
		builder.WriteString("  By nesting level:\n")

		levels := make([]int, 0, len(stats.RangesByLevel))
		for level := range stats.RangesByLevel {
			levels = append(levels, level)
		}
		sort.Ints(levels)

		for _, level := range levels {
			count := strconv.Itoa(stats.RangesByLevel[level])
			builder.WriteString(fmt.Sprintf("    level %-2d           %s\n",
				level, s.LevelStyle(level).Render(count)))
		}
	}

	if stats.InactiveRegions > 0 {
		builder.WriteString("\n")
		builder.WriteString("  Inactive regions:    " +
			s.Dim.Render(strconv.Itoa(stats.InactiveRegions)) + "\n")
	}

	builder.WriteString("\n")

	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Scan completed with errors"))
	} else {
		builder.WriteString(s.Success.Render("Scan completed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// sortedKeys returns map keys in sorted order for deterministic output.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
