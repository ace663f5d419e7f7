package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectConfig_UpwardSearch(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, ".gobrackets.yml")
	if err := os.WriteFile(configPath, []byte("levels: 5\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	nested := filepath.Join(tmpDir, "src", "deep")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}

	if found != configPath {
		t.Errorf("expected %q, got %q", configPath, found)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Config above the VCS root must not be found
	if err := os.WriteFile(filepath.Join(tmpDir, ".gobrackets.yml"), []byte("levels: 5\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	repo := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}

	if found != "" {
		t.Errorf("expected no config (VCS boundary), got %q", found)
	}
}

func TestFindProjectConfig_PrefersDotfile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	dotted := filepath.Join(tmpDir, ".gobrackets.yml")
	plain := filepath.Join(tmpDir, "gobrackets.yml")
	for _, path := range []string{dotted, plain} {
		if err := os.WriteFile(path, []byte("levels: 5\n"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	found, err := FindProjectConfig(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}

	if found != dotted {
		t.Errorf("expected %q, got %q", dotted, found)
	}
}
