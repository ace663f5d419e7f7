package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission used for files written by WriteAtomic
// when the destination does not already exist.
const DefaultFileMode fs.FileMode = 0o644

// WriteAtomic writes content to path atomically: the data goes to a
// temporary file in the same directory, is synced, and is then renamed
// over the destination. Readers never observe a partially written file.
// An existing file's permissions are preserved.
func WriteAtomic(path string, content []byte, mode fs.FileMode) error {
	if mode == 0 {
		mode = DefaultFileMode
	}
	if stat, err := os.Stat(path); err == nil {
		mode = stat.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any failure path.
	defer func() {
		if tmpName != "" {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmpName, path, err)
	}
	tmpName = ""
	return nil
}

// WriteAtomicIfChanged writes content to path only when it differs from
// what is already there. It reports whether a write happened.
func WriteAtomicIfChanged(path string, content []byte, mode fs.FileMode) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && string(existing) == string(content) {
		return false, nil
	}
	if err := WriteAtomic(path, content, mode); err != nil {
		return false, err
	}
	return true, nil
}
