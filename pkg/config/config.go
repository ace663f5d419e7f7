// Package config defines core configuration types for gobrackets.
// These types are pure data structures with no dependencies on config
// loaders; discovery and merging live in internal/configloader.
package config

import (
	"fmt"

	"github.com/yaklabco/gobrackets/pkg/bracket"
)

// DefaultLevels is the number of nesting levels before colors repeat.
const DefaultLevels = bracket.DefaultLevelCount

// OutputFormat specifies the output format for scan results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatRender  OutputFormat = "render"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatRender, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// ColorMode controls when colored output is produced.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// KindsConfig holds per-kind enable flags.
// A nil pointer means the kind keeps its default (enabled).
type KindsConfig struct {
	Round  *bool `mapstructure:"round" yaml:"round,omitempty"`
	Curly  *bool `mapstructure:"curly" yaml:"curly,omitempty"`
	Square *bool `mapstructure:"square" yaml:"square,omitempty"`
	Angle  *bool `mapstructure:"angle" yaml:"angle,omitempty"`
}

// Set returns the enabled kinds as a set.
func (k KindsConfig) Set() bracket.KindSet {
	set := bracket.AllKinds()

	for kind, flag := range map[bracket.Kind]*bool{
		bracket.Round:  k.Round,
		bracket.Curly:  k.Curly,
		bracket.Square: k.Square,
		bracket.Angle:  k.Angle,
	} {
		if flag != nil && !*flag {
			set = set.Without(kind)
		}
	}

	return set
}

// PreprocessorConfig controls C-preprocessor awareness.
// A nil Enabled pointer means the default (enabled).
type PreprocessorConfig struct {
	// Enabled turns inactive-region suppression on for C-family files.
	Enabled *bool `mapstructure:"enabled" yaml:"enabled,omitempty"`
}

// On reports whether inactive-region suppression is in effect.
func (p PreprocessorConfig) On() bool {
	return p.Enabled == nil || *p.Enabled
}

// Config is the root configuration structure for gobrackets.
type Config struct {
	// Levels is the number of nesting levels before colors repeat.
	Levels int `mapstructure:"levels" yaml:"levels"`

	// Heuristic selects the angle-bracket heuristic ("strict" or "loose").
	Heuristic string `mapstructure:"heuristic" yaml:"heuristic"`

	// Kinds holds per-kind enable flags.
	Kinds KindsConfig `mapstructure:"kinds" yaml:"kinds"`

	// Preprocessor controls C-preprocessor awareness.
	Preprocessor PreprocessorConfig `mapstructure:"preprocessor" yaml:"preprocessor"`

	// Palette lists the level colors, cycled by nesting depth.
	// Entries are terminal color strings (hex or ANSI index).
	Palette []string `mapstructure:"palette" yaml:"palette"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Color controls when colored output is produced.
	Color ColorMode `mapstructure:"-" yaml:"-"`

	// Lang forces a language identifier instead of detection.
	Lang string `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// NoTokenizer forces the raw byte scan, skipping syntax tokenization.
	NoTokenizer bool `mapstructure:"-" yaml:"-"`
}

// DefaultPalette returns the default level colors, one per level.
func DefaultPalette() []string {
	return []string{
		"#e5c07b", // gold
		"#c678dd", // orchid
		"#56b6c2", // cyan
		"#98c379", // green
		"#e06c75", // salmon
		"#61afef", // blue
		"#d19a66", // orange
		"#abb2bf", // silver
		"#be5046", // rust
	}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Levels:    DefaultLevels,
		Heuristic: bracket.HeuristicStrict.String(),
		Palette:   DefaultPalette(),
		Format:    FormatText,
		Color:     ColorAuto,
		Jobs:      0, // 0 means use GOMAXPROCS
	}
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.Levels < 1 {
		return fmt.Errorf("levels must be at least 1, got %d", c.Levels)
	}

	if _, err := bracket.ParseHeuristic(c.Heuristic); err != nil {
		return fmt.Errorf("heuristic: %w", err)
	}

	if c.Format != "" && !c.Format.IsValid() {
		return fmt.Errorf("unknown output format %q", c.Format)
	}

	if c.Color != "" && !c.Color.IsValid() {
		return fmt.Errorf("unknown color mode %q", c.Color)
	}

	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must have at least one color")
	}

	return nil
}

// ScanOptions converts the configuration into scanner options.
func (c *Config) ScanOptions() bracket.Options {
	heuristic, err := bracket.ParseHeuristic(c.Heuristic)
	if err != nil {
		heuristic = bracket.HeuristicStrict
	}

	return bracket.Options{
		LevelCount:     c.Levels,
		Kinds:          c.Kinds.Set(),
		Heuristic:      heuristic,
		NoPreprocessor: !c.Preprocessor.On(),
	}
}

// LevelColor returns the palette color for a nesting level, cycling
// when the palette is shorter than the level count.
func (c *Config) LevelColor(level int) string {
	if len(c.Palette) == 0 || level < 0 {
		return ""
	}
	return c.Palette[level%len(c.Palette)]
}
