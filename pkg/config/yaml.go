package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
// Fields absent from the document keep their defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette()
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		Levels:    c.Levels,
		Heuristic: c.Heuristic,
		Format:    c.Format,
		Color:     c.Color,
		Lang:      c.Lang,
		Jobs:      c.Jobs,
	}

	clone.Kinds = c.Kinds.clone()
	clone.Preprocessor = PreprocessorConfig{Enabled: copyFlag(c.Preprocessor.Enabled)}

	if c.Palette != nil {
		clone.Palette = make([]string, len(c.Palette))
		copy(clone.Palette, c.Palette)
	}

	if c.Ignore != nil {
		clone.Ignore = make([]string, len(c.Ignore))
		copy(clone.Ignore, c.Ignore)
	}

	return clone
}

// copyFlag copies an optional boolean flag.
func copyFlag(flag *bool) *bool {
	if flag == nil {
		return nil
	}
	value := *flag
	return &value
}

// clone creates a deep copy of a KindsConfig.
func (k KindsConfig) clone() KindsConfig {
	return KindsConfig{
		Round:  copyFlag(k.Round),
		Curly:  copyFlag(k.Curly),
		Square: copyFlag(k.Square),
		Angle:  copyFlag(k.Angle),
	}
}
