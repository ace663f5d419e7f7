package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/gobrackets/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	// Create temp directory with no config files
	tmpDir := t.TempDir()

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}

	// Check defaults are applied
	if result.Config.Levels != config.DefaultLevels {
		t.Errorf("expected levels %d, got %d", config.DefaultLevels, result.Config.Levels)
	}
	if result.Config.Heuristic != "strict" {
		t.Errorf("expected heuristic %q, got %q", "strict", result.Config.Heuristic)
	}
	if !result.Config.Preprocessor.On() {
		t.Error("expected preprocessor enabled by default")
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a project config
	// Note: format is a CLI-only option (yaml:"-"), so it won't be loaded from file
	configContent := `
levels: 4
heuristic: loose
kinds:
  angle: false
`
	configPath := filepath.Join(tmpDir, ".gobrackets.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Levels != 4 {
		t.Errorf("expected levels 4, got %d", result.Config.Levels)
	}
	if result.Config.Heuristic != "loose" {
		t.Errorf("expected heuristic %q, got %q", "loose", result.Config.Heuristic)
	}

	// Check that the kind flag was loaded
	if result.Config.Kinds.Angle == nil || *result.Config.Kinds.Angle {
		t.Error("expected angle brackets to be disabled")
	}

	// Unset fields keep their defaults
	if len(result.Config.Palette) != len(config.DefaultPalette()) {
		t.Errorf("expected default palette, got %d colors", len(result.Config.Palette))
	}

	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a custom config outside the discovery paths
	configContent := `
levels: 6
preprocessor:
  enabled: false
`
	customPath := filepath.Join(tmpDir, "custom-config.yml")
	if err := os.WriteFile(customPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		ExplicitPath:       customPath,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Levels != 6 {
		t.Errorf("expected levels 6, got %d", result.Config.Levels)
	}

	if result.Config.Preprocessor.On() {
		t.Error("expected preprocessor disabled")
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	projectPath := filepath.Join(tmpDir, ".gobrackets.yml")
	if err := os.WriteFile(projectPath, []byte("levels: 3\nheuristic: loose\n"), 0644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	explicitPath := filepath.Join(tmpDir, "override.yml")
	if err := os.WriteFile(explicitPath, []byte("levels: 5\n"), 0644); err != nil {
		t.Fatalf("write explicit config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		ExplicitPath:       explicitPath,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Levels != 5 {
		t.Errorf("expected levels 5 (explicit override), got %d", result.Config.Levels)
	}

	// Fields the explicit config does not set fall through to the project config
	if result.Config.Heuristic != "loose" {
		t.Errorf("expected heuristic %q (project config), got %q", "loose", result.Config.Heuristic)
	}

	if len(result.LoadedFrom) != 2 {
		t.Errorf("expected 2 loaded files, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a project config
	configContent := `
levels: 3
`
	configPath := filepath.Join(tmpDir, ".gobrackets.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	cliCfg := &config.Config{
		Levels: 7,
		Format: config.FormatJSON,
		Lang:   "c++",
		Jobs:   8,
	}
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		CLIConfig:          cliCfg,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// CLI should override project config
	if result.Config.Levels != 7 {
		t.Errorf("expected levels 7 (CLI override), got %d", result.Config.Levels)
	}

	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format %q (CLI override), got %q", config.FormatJSON, result.Config.Format)
	}

	if result.Config.Lang != "c++" {
		t.Errorf("expected lang %q (CLI override), got %q", "c++", result.Config.Lang)
	}

	if result.Config.Jobs != 8 {
		t.Errorf("expected jobs 8 (CLI override), got %d", result.Config.Jobs)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, ".gobrackets.yml")
	if err := os.WriteFile(configPath, []byte("levels: 3\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("GOBRACKETS_LEVELS", "5")
	t.Setenv("GOBRACKETS_HEURISTIC", "loose")
	t.Setenv("GOBRACKETS_NO_PREPROCESSOR", "true")
	t.Setenv("GOBRACKETS_IGNORE", "vendor/**, build/**")

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Levels != 5 {
		t.Errorf("expected levels 5 (env override), got %d", result.Config.Levels)
	}
	if result.Config.Heuristic != "loose" {
		t.Errorf("expected heuristic loose (env override), got %q", result.Config.Heuristic)
	}
	if result.Config.Preprocessor.On() {
		t.Error("expected preprocessor disabled via env")
	}

	wantIgnore := []string{"vendor/**", "build/**"}
	if len(result.Config.Ignore) != len(wantIgnore) {
		t.Fatalf("expected %d ignore patterns, got %d", len(wantIgnore), len(result.Config.Ignore))
	}
	for i, pattern := range wantIgnore {
		if result.Config.Ignore[i] != pattern {
			t.Errorf("ignore[%d]: expected %q, got %q", i, pattern, result.Config.Ignore[i])
		}
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create an invalid config
	configContent := `
heuristic: fuzzy
`
	configPath := filepath.Join(tmpDir, ".gobrackets.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	_, err := Load(ctx, opts)
	if err == nil {
		t.Fatal("expected validation error for invalid heuristic")
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	opts := LoadOptions{
		WorkingDir:         t.TempDir(),
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	_, err := Load(ctx, opts)
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestLoad_WarnsShortPalette(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configContent := `
levels: 12
palette:
  - "#ff0000"
  - "#00ff00"
`
	configPath := filepath.Join(tmpDir, ".gobrackets.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Warnings) == 0 {
		t.Error("expected warning about short palette")
	}
}
