package configloader

import "github.com/yaklabco/gobrackets/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Optional booleans (*bool): override overwrites base if non-nil
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.Levels != 0 {
		result.Levels = override.Levels
	}
	if override.Heuristic != "" {
		result.Heuristic = override.Heuristic
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Lang != "" {
		result.Lang = override.Lang
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.NoTokenizer {
		result.NoTokenizer = true
	}

	// Optional booleans: non-nil pointers win, nil means unset
	result.Kinds = mergeKinds(base.Kinds, override.Kinds)
	if override.Preprocessor.Enabled != nil {
		result.Preprocessor.Enabled = override.Preprocessor.Enabled
	}

	// Slices: override replaces base entirely if non-nil
	if override.Palette != nil {
		result.Palette = override.Palette
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// mergeKinds merges per-kind enable flags pointer-wise.
func mergeKinds(base, override config.KindsConfig) config.KindsConfig {
	result := base

	if override.Round != nil {
		result.Round = override.Round
	}
	if override.Curly != nil {
		result.Curly = override.Curly
	}
	if override.Square != nil {
		result.Square = override.Square
	}
	if override.Angle != nil {
		result.Angle = override.Angle
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
