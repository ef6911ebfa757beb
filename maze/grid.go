package maze

import "fmt"

// RawGrid holds the lines of an ASCII maze drawing after shape
// validation. Line 0 is the decorative header; every later line
// encodes one row of cells. It exists only while a maze is built.
type RawGrid []string

// NewRawGrid validates the shape of the given lines. There must be at
// least two lines (the header plus one content line), the second line
// must be non-empty, and all lines must have the same length so that
// wall positions can be indexed safely.
func NewRawGrid(lines []string) (RawGrid, error) {
	if len(lines) < 2 {
		return nil, &MalformedInputError{
			Reason: fmt.Sprintf("need at least 2 lines, got %d", len(lines)),
		}
	}
	if len(lines[1]) == 0 {
		return nil, &MalformedInputError{Reason: "line 1 is empty"}
	}
	for i, line := range lines {
		if len(line) != len(lines[1]) {
			return nil, &MalformedInputError{
				Reason: fmt.Sprintf("line %d has length %d, want %d", i, len(line), len(lines[1])),
			}
		}
	}
	return RawGrid(lines), nil
}

// Width returns the number of cell columns encoded by the grid.
// Cells occupy every other character offset, so the division floors
// away a trailing half column on drawings with even line lengths.
func (g RawGrid) Width() int {
	return (len(g[1]) - 1) / 2
}

// Height returns the number of cell rows encoded by the grid.
func (g RawGrid) Height() int {
	return len(g) - 1
}

// fileRow converts a maze row to the index of the line holding it.
// The header line is skipped.
func fileRow(row int) int {
	return row + 1
}

// fileCol converts a maze column to the character offset of its
// anchor. The important columns are the x's in |x|x|x|, every other
// offset starting with the second.
func fileCol(col int) int {
	return 2*col + 1
}
