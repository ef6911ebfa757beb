package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingExtension is returned when an input file name carries
	// no extension to strip a title from.
	ErrMissingExtension = errors.New("file name has no extension")

	// ErrEmptyTitle is returned when a maze would end up with an
	// empty title.
	ErrEmptyTitle = errors.New("maze title must not be empty")
)

// MalformedInputError reports input whose shape makes dimension
// derivation or wall indexing impossible.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed maze input: " + e.Reason
}

// UnknownCharacterError reports a character outside the classifier
// alphabets. Row and Col are raw text coordinates, not maze
// coordinates.
type UnknownCharacterError struct {
	Title string
	Row   int
	Col   int
	Char  byte
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("unknown character in %s at (%d, %d) %q", e.Title, e.Row, e.Col, e.Char)
}
