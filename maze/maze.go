/*
Package maze parses fixed-format ASCII drawings of rectangular mazes
into a structured model of cell connectivity.

A drawing uses pipes (|) for vertical walls between cells touching
East-West and underscores (_) for horizontal walls between cells
touching North-South. The first line is decorative and discarded, and
the first and last character of every line are frame characters:

	_______
	|  _| |
	| |  _|
	|_____|

The parsed model can be serialized either as a de-duplicated wall list
(the canonical form) or as one block per cell. See WallDocument and
BlockDocument.
*/
package maze

// Maze is the parsed representation of an ASCII maze drawing. It is
// built in one pass by Parse and never mutated afterwards.
type Maze struct {
	// Width of the maze (number of columns)
	Width int
	// Height of the maze (number of rows)
	Height int
	// Grid holds one cell per (row, col), row-major.
	Grid [][]*Cell

	title string
}

// Title returns the maze title. A title is validated non-empty at
// construction and cannot change afterwards.
func (m *Maze) Title() string {
	return m.title
}

// CellAt returns the cell at the given row and column, or nil when the
// position is outside the maze.
func (m *Maze) CellAt(row, col int) *Cell {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return nil
	}
	return m.Grid[row][col]
}
