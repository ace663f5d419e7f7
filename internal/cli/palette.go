package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gobrackets/internal/configloader"
	"github.com/yaklabco/gobrackets/internal/ui/pretty"
)

type paletteFlags struct {
	format string
}

// paletteEntry represents a level color in JSON output.
type paletteEntry struct {
	Level int    `json:"level"`
	Color string `json:"color"`
}

func newPaletteCommand() *cobra.Command {
	flags := &paletteFlags{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the level color palette",
		Long: `Show the colors assigned to each nesting level, after applying any
palette overrides from configuration files or environment variables.
Levels beyond the palette length cycle back to the first color.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPalette(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func runPalette(cmd *cobra.Command, flags *paletteFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config

	if flags.format == formatJSON {
		entries := make([]paletteEntry, 0, cfg.Levels)
		for level := 0; level < cfg.Levels; level++ {
			entries = append(entries, paletteEntry{Level: level, Color: cfg.LevelColor(level)})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding palette: %w", err)
		}
		return nil
	}

	out := cmd.OutOrStdout()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	colorEnabled := pretty.IsColorEnabled(colorMode, out)

	for level := 0; level < cfg.Levels; level++ {
		color := cfg.LevelColor(level)

		swatch := ""
		if colorEnabled {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██████") + "  "
		}

		fmt.Fprintf(out, "level %d  %s%s\n", level, swatch, color)
	}

	return nil
}
