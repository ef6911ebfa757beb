package maze

// Characters a maze drawing may contain. Underscores double as open
// space for vertical boundaries: the character under a cell describes
// its south boundary, not its sides.
const (
	verticalWallChar   = '|'
	horizontalWallChar = '_'
	spaceChar          = ' '
)

// Parse builds a Maze with the given title from the lines of an ASCII
// drawing. The whole build fails on the first character outside the
// wall alphabets; a partial maze is never returned.
//
// Cells on the outer rim classify whatever character the frame or
// header holds at the neighboring position, matching the drawing as
// written rather than forcing the rim impassable.
func Parse(title string, lines []string) (*Maze, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	raw, err := NewRawGrid(lines)
	if err != nil {
		return nil, err
	}

	b := &builder{title: title, raw: raw}
	return b.build()
}

// builder walks every cell position of a validated raw grid row-major
// and classifies the four characters around each anchor.
type builder struct {
	title string
	raw   RawGrid
}

func (b *builder) build() (*Maze, error) {
	width, height := b.raw.Width(), b.raw.Height()

	grid := make([][]*Cell, height)
	for row := 0; row < height; row++ {
		grid[row] = make([]*Cell, width)
		for col := 0; col < width; col++ {
			cell, err := b.parseCell(row, col)
			if err != nil {
				return nil, err
			}
			grid[row][col] = cell
		}
	}

	return &Maze{
		Width:  width,
		Height: height,
		Grid:   grid,
		title:  b.title,
	}, nil
}

// parseCell classifies the four boundaries of the cell at (row, col).
// The anchor raw position is (fileRow(row), fileCol(col)); east and
// west are the characters beside it, north and south the characters
// on the lines above and at it.
func (b *builder) parseCell(row, col int) (*Cell, error) {
	r, c := fileRow(row), fileCol(col)
	cell := &Cell{Row: row, Col: col}

	var err error
	if cell.East, err = b.verticalPassable(r, c+1); err != nil {
		return nil, err
	}
	if cell.North, err = b.horizontalPassable(r-1, c); err != nil {
		return nil, err
	}
	if cell.West, err = b.verticalPassable(r, c-1); err != nil {
		return nil, err
	}
	if cell.South, err = b.horizontalPassable(r, c); err != nil {
		return nil, err
	}
	return cell, nil
}

// verticalPassable classifies the character at the raw position as an
// east/west boundary.
func (b *builder) verticalPassable(r, c int) (bool, error) {
	switch ch := b.raw[r][c]; ch {
	case verticalWallChar:
		return false, nil
	case spaceChar, horizontalWallChar:
		return true, nil
	default:
		return false, &UnknownCharacterError{Title: b.title, Row: r, Col: c, Char: ch}
	}
}

// horizontalPassable classifies the character at the raw position as a
// north/south boundary.
func (b *builder) horizontalPassable(r, c int) (bool, error) {
	switch ch := b.raw[r][c]; ch {
	case horizontalWallChar:
		return false, nil
	case spaceChar:
		return true, nil
	default:
		return false, &UnknownCharacterError{Title: b.title, Row: r, Col: c, Char: ch}
	}
}
