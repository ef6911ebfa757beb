package maze

import (
	"fmt"
	"strings"
)

// TitleFromFileName derives a maze title by dropping everything after
// the last '.' in the file name. The derivation happens before any
// maze content is read, so a bad name fails the conversion up front.
func TitleFromFileName(name string) (string, error) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return "", fmt.Errorf("%q: %w", name, ErrMissingExtension)
	}

	title := name[:idx]
	if title == "" {
		return "", fmt.Errorf("%q: %w", name, ErrEmptyTitle)
	}
	return title, nil
}
