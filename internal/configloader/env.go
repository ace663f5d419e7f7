package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gobrackets/pkg/config"
)

// envVarPrefix is the prefix for all gobrackets environment variables.
const envVarPrefix = "GOBRACKETS_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"LEVELS":          {field: "levels", typ: envTypeInt},
	"HEURISTIC":       {field: "heuristic", typ: envTypeString},
	"FORMAT":          {field: "format", typ: envTypeString},
	"COLOR":           {field: "color", typ: envTypeString},
	"LANG":            {field: "lang", typ: envTypeString},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"NO_PREPROCESSOR": {field: "no_preprocessor", typ: envTypeBool},
	"IGNORE":          {field: "ignore", typ: envTypeSlice},
	"PALETTE":         {field: "palette", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOBRACKETS_ (e.g., GOBRACKETS_LEVELS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "heuristic":
		cfg.Heuristic = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "lang":
		cfg.Lang = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "no_preprocessor":
		enabled := !value
		cfg.Preprocessor.Enabled = &enabled
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "levels":
		cfg.Levels = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "palette":
		cfg.Palette = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOBRACKETS_LEVELS":          "Number of nesting levels before colors repeat",
		"GOBRACKETS_HEURISTIC":       "Angle-bracket heuristic: strict or loose",
		"GOBRACKETS_FORMAT":          "Output format: text, render, json, or summary",
		"GOBRACKETS_COLOR":           "Color mode: auto, always, or never",
		"GOBRACKETS_LANG":            "Language identifier override (skips detection)",
		"GOBRACKETS_JOBS":            "Number of parallel workers (0 = auto)",
		"GOBRACKETS_NO_PREPROCESSOR": "Disable C-preprocessor awareness: true or false",
		"GOBRACKETS_IGNORE":          "Comma-separated list of ignore patterns",
		"GOBRACKETS_PALETTE":         "Comma-separated list of level colors",
	}
}
