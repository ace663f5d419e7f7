package config

import (
	"bytes"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every setting with its default value.
	// If false, generates a minimal commented template.
	Full bool
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	return []byte(`# gobrackets configuration
# See: https://github.com/yaklabco/gobrackets

# Number of nesting levels before colors repeat
levels: 9

# Angle-bracket heuristic: strict or loose
# heuristic: strict

# Per-kind enable flags
# kinds:
#   round: true
#   curly: true
#   square: true
#   angle: true

# C-preprocessor awareness for C-family files
# preprocessor:
#   enabled: true

# Level colors, cycled by nesting depth
# palette:
#   - "#e5c07b"
#   - "#c678dd"

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`)
}

// generateFullTemplate creates a template with every setting spelled out.
func generateFullTemplate() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# gobrackets configuration - Full Template
# See: https://github.com/yaklabco/gobrackets
#
# Every setting is shown with its default value.

# Number of nesting levels before colors repeat
levels: 9

# Angle-bracket heuristic: strict or loose
heuristic: strict

# Per-kind enable flags
kinds:
  round: true
  curly: true
  square: true
  angle: true

# C-preprocessor awareness for C-family files
preprocessor:
  enabled: true

# Level colors, cycled by nesting depth
palette:
`)

	for _, color := range DefaultPalette() {
		fmt.Fprintf(&buf, "  - %q\n", color)
	}

	buf.WriteString(`
# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"
  - ".git/**"
`)

	return buf.Bytes(), nil
}
