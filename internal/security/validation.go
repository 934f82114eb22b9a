// Package security provides input validation for file-backed layouts.
package security

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ValidateLayoutName checks that a layout name is a plain file name with no
// directory components, so it cannot escape the layout directory.
func ValidateLayoutName(name string) error {
	if name == "" {
		return fmt.Errorf("empty layout name")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid layout name %q: must not contain path separators", name)
	}
	return nil
}

// ValidateFilePath checks that filePath, joined to baseDir, stays within baseDir.
func ValidateFilePath(filePath, baseDir string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	if filepath.IsAbs(filePath) {
		return fmt.Errorf("absolute layout paths are not allowed: %s", filePath)
	}

	cleanBase := filepath.Clean(baseDir)
	cleanFinal := filepath.Join(cleanBase, filePath)

	rel, err := filepath.Rel(cleanBase, cleanFinal)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("file path would escape base directory: %s", filePath)
	}

	return nil
}

// LimitedReader wraps an io.Reader and fails once more than a fixed number
// of bytes has been read.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Distinguish "exactly at the limit" from "over the limit".
		var probe [1]byte
		n, err := l.R.Read(probe[:])
		if n > 0 {
			return 0, fmt.Errorf("content size limit exceeded")
		}
		return 0, err
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
