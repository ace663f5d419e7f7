package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gobrackets/pkg/bracket"
	"github.com/yaklabco/gobrackets/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "kinds.angle").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., short palettes).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatRender:  true,
	config.FormatJSON:    true,
	config.FormatSummary: true,
}

// knownColorModes lists valid color mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColorModes = map[config.ColorMode]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	// Validate levels
	if cfg.Levels < 1 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "levels",
			Value:   cfg.Levels,
			Message: "levels must be at least 1",
		})
	}

	// Validate heuristic
	if cfg.Heuristic != "" {
		if _, err := bracket.ParseHeuristic(cfg.Heuristic); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "heuristic",
				Value:   cfg.Heuristic,
				Message: fmt.Sprintf("invalid heuristic %q; must be one of: strict, loose", cfg.Heuristic),
			})
		}
	}

	// Validate format
	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, render, json, summary", cfg.Format),
		})
	}

	// Validate color mode
	if cfg.Color != "" && !knownColorModes[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	// Validate jobs
	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	// Validate palette
	validatePalette(cfg, result)

	// Validate ignore patterns
	validateIgnorePatterns(cfg, result)

	return result
}

// validatePalette checks palette entries for errors and warnings.
func validatePalette(cfg *config.Config, result *ValidationResult) {
	if len(cfg.Palette) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "palette",
			Value:   cfg.Palette,
			Message: "palette must have at least one color",
		})
		return
	}

	for i, color := range cfg.Palette {
		if strings.TrimSpace(color) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("palette[%d]", i),
				Value:   color,
				Message: "palette color must not be empty",
			})
		}
	}

	if len(cfg.Palette) < cfg.Levels {
		result.Warnings = append(result.Warnings, ValidationError{
			Field: "palette",
			Value: len(cfg.Palette),
			Message: fmt.Sprintf("palette has %d colors for %d levels; colors will repeat",
				len(cfg.Palette), cfg.Levels),
		})
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns
		_, err := filepath.Match(pattern, "")
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidHeuristic returns true if the heuristic name is valid.
func IsValidHeuristic(s string) bool {
	_, err := bracket.ParseHeuristic(s)
	return err == nil
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}

// IsValidColorMode returns true if the color mode is valid.
func IsValidColorMode(m config.ColorMode) bool {
	return knownColorModes[m]
}
