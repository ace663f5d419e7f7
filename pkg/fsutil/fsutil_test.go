package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "source.c")
	content := []byte("int main(void) { return 0; }\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	got, info, err := ReadFile(path, 0)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	require.NotNil(t, info)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(len(content)), info.Size)
}

func TestReadFileNotFound(t *testing.T) {
	t.Parallel()

	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.c"), 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadFileDirectory(t *testing.T) {
	t.Parallel()

	_, _, err := ReadFile(t.TempDir(), 0)
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestReadFileTooLarge(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "big.c")
	require.NoError(t, os.WriteFile(path, []byte("abcdefgh"), 0o644))

	_, _, err := ReadFile(path, 4)
	assert.ErrorIs(t, err, ErrTooLarge)

	// A zero limit disables the check.
	_, _, err = ReadFile(path, 0)
	assert.NoError(t, err)
}

func TestIsBinary(t *testing.T) {
	t.Parallel()

	assert.False(t, IsBinary([]byte("plain text with (brackets)\n")))
	assert.False(t, IsBinary(nil))
	assert.True(t, IsBinary([]byte{'E', 'L', 'F', 0x00, 0x01}))
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte("levels: 9\n")

	require.NoError(t, WriteAtomic(path, content, 0))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFileMode, stat.Mode().Perm())

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomicPreservesMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, WriteAtomic(path, []byte("new"), 0))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte("levels: 9\n")

	wrote, err := WriteAtomicIfChanged(path, content, 0)
	require.NoError(t, err)
	assert.True(t, wrote)

	wrote, err = WriteAtomicIfChanged(path, content, 0)
	require.NoError(t, err)
	assert.False(t, wrote)

	wrote, err = WriteAtomicIfChanged(path, []byte("levels: 4\n"), 0)
	require.NoError(t, err)
	assert.True(t, wrote)
}
