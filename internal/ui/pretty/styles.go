// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Level styles, one per nesting level, cycled by depth.
	Levels []lipgloss.Style

	// Inactive renders preprocessor-disabled regions.
	Inactive lipgloss.Style

	// Result components
	FilePath lipgloss.Style
	Location lipgloss.Style
	KindName lipgloss.Style

	// Status styles
	Error   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode and level palette.
func NewStyles(colorEnabled bool, palette []string) *Styles {
	if !colorEnabled {
		return newNoColorStyles(len(palette))
	}
	return newColorStyles(palette)
}

// newColorStyles creates styles using the palette for level colors.
func newColorStyles(palette []string) *Styles {
	levels := make([]lipgloss.Style, 0, len(palette))
	for _, color := range palette {
		levels = append(levels, lipgloss.NewStyle().Foreground(lipgloss.Color(color)))
	}

	return &Styles{
		Levels:   levels,
		Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		KindName: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles(levelCount int) *Styles {
	plain := lipgloss.NewStyle()

	levels := make([]lipgloss.Style, levelCount)
	for i := range levels {
		levels[i] = plain
	}

	return &Styles{
		Levels:       levels,
		Inactive:     plain,
		FilePath:     plain,
		Location:     plain,
		KindName:     plain,
		Error:        plain,
		Success:      plain,
		Failure:      plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// LevelStyle returns the style for a nesting level, cycling through the
// palette when the level exceeds it.
func (s *Styles) LevelStyle(level int) lipgloss.Style {
	if len(s.Levels) == 0 || level < 0 {
		return lipgloss.NewStyle()
	}
	return s.Levels[level%len(s.Levels)]
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
