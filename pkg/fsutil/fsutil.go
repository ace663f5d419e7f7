// Package fsutil provides filesystem helpers shared by the scanner and
// the CLI: safe source-file reads with size and binary checks, and
// atomic writes for generated configuration.
package fsutil

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Sentinel errors returned by ReadFile. Callers can test for them with
// errors.Is to distinguish skippable conditions from hard failures.
var (
	ErrNotFound         = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIsDirectory      = errors.New("path is a directory")
	ErrTooLarge         = errors.New("file exceeds size limit")
)

// binarySniffLen is how many leading bytes are checked for NUL.
const binarySniffLen = 8192

// FileInfo captures metadata recorded when a file is read.
type FileInfo struct {
	Path    string
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

// ReadFile reads path and returns its content together with the metadata
// observed at read time. Files larger than maxSize fail with ErrTooLarge;
// a maxSize of zero or less disables the limit.
func ReadFile(path string, maxSize int64) ([]byte, *FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classifyError(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	if maxSize > 0 && stat.Size() > maxSize {
		return nil, nil, fmt.Errorf("%s (%d bytes): %w", path, stat.Size(), ErrTooLarge)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classifyError(path, err)
	}

	info := &FileInfo{
		Path:    path,
		Size:    stat.Size(),
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
	}
	return content, info, nil
}

// IsBinary reports whether content appears to be binary data. Only the
// leading bytes are inspected, so large files stay cheap to test.
func IsBinary(content []byte) bool {
	sniff := content
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	return bytes.IndexByte(sniff, 0) >= 0
}

// classifyError wraps os errors with the package sentinels where one applies.
func classifyError(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case os.IsPermission(err):
		return fmt.Errorf("%s: %w", path, ErrPermissionDenied)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}
