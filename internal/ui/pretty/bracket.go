package pretty

import (
	"fmt"
	"strings"
)

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, bracketCount int) string {
	header := s.FilePath.Render(path)
	if bracketCount > 0 {
		word := "brackets"
		if bracketCount == 1 {
			word = "bracket"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", bracketCount, word))
	}
	return header
}

// FormatBracketLine formats a single bracket position entry.
// Example: "  12:4  {  level 1".
func (s *Styles) FormatBracketLine(line, col int, char byte, level int, kind string) string {
	location := s.Location.Render(fmt.Sprintf("%d:%d", line, col))
	styled := s.LevelStyle(level).Render(string(char))

	return fmt.Sprintf("  %-10s %s  %s\n",
		location,
		styled,
		s.KindName.Render(fmt.Sprintf("level %d (%s)", level, kind)),
	)
}

// FormatSourceContext formats a source line with a caret under the column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.Dim.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Bold.Render("^") + "\n")
	}

	return builder.String()
}
