// Package fsstore reads maze drawings from and writes maze documents
// to a fixed base directory.
package fsstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store resolves all file names relative to an explicit base
// directory handed in at construction.
type Store struct {
	baseDir string
}

// New creates a Store rooted at the given directory.
func New(baseDir string) (*Store, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("maze store base directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("maze store base %q is not a directory", baseDir)
	}
	return &Store{baseDir: baseDir}, nil
}

// ReadLines reads the named drawing fully into memory and returns its
// lines with line endings stripped. A trailing newline at the end of
// the file does not produce an empty final line.
func (s *Store) ReadLines(name string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, name))
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines, nil
}

// WriteDocument writes the serialized document under the base
// directory, replacing any previous version.
func (s *Store) WriteDocument(name string, data []byte) error {
	return os.WriteFile(filepath.Join(s.baseDir, name), data, 0o644)
}
