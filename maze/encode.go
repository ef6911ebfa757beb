package maze

// Wall describes one boundary between two adjacent cells. A vertical
// wall at (row, col) separates cells (row, col) and (row, col+1); a
// horizontal wall at (row, col) separates cells (row, col) and
// (row+1, col).
type Wall struct {
	Row      int  `json:"row" bson:"row"`
	Col      int  `json:"col" bson:"col"`
	Passable bool `json:"passable" bson:"passable"`
}

// Block is the cell-centric serialization of a single cell.
type Block struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// WallDocument is the canonical serialized form of a maze. Interior
// boundaries appear exactly once, row-major with columns ascending.
type WallDocument struct {
	Width           int    `json:"width" bson:"width"`
	Height          int    `json:"height" bson:"height"`
	VerticalWalls   []Wall `json:"vertical_walls" bson:"verticalWalls"`
	HorizontalWalls []Wall `json:"horizontal_walls" bson:"horizontalWalls"`
}

// BlockDocument is the alternative cell-centric serialization, one
// block per cell in row-major order. Rim blocks carry the passability
// read from the frame and header characters.
type BlockDocument struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Blocks []Block `json:"blocks"`
}

// WallDocument derives the canonical wall lists from the cell grid.
// Each interior boundary is reported from the cell on its west or
// north side; both neighbors were classified from the same raw
// character, so the choice of side cannot change the value.
func (m *Maze) WallDocument() *WallDocument {
	doc := &WallDocument{
		Width:           m.Width,
		Height:          m.Height,
		VerticalWalls:   []Wall{},
		HorizontalWalls: []Wall{},
	}

	for row := 0; row < m.Height; row++ {
		for col := 0; col+1 < m.Width; col++ {
			doc.VerticalWalls = append(doc.VerticalWalls, Wall{
				Row:      row,
				Col:      col,
				Passable: m.Grid[row][col].East,
			})
		}
	}
	for row := 0; row+1 < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			doc.HorizontalWalls = append(doc.HorizontalWalls, Wall{
				Row:      row,
				Col:      col,
				Passable: m.Grid[row][col].South,
			})
		}
	}
	return doc
}

// BlockDocument serializes every cell with the passability of all four
// of its sides, row-major with columns ascending.
func (m *Maze) BlockDocument() *BlockDocument {
	doc := &BlockDocument{
		Width:  m.Width,
		Height: m.Height,
		Blocks: []Block{},
	}

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			doc.Blocks = append(doc.Blocks, Block{
				Row:   row,
				Col:   col,
				North: cell.North,
				South: cell.South,
				East:  cell.East,
				West:  cell.West,
			})
		}
	}
	return doc
}

// Blocks reconstructs a BlockDocument from a stored WallDocument.
// Interior boundaries come from the wall lists; rim sides are not
// recoverable from the de-duplicated form and are reported
// impassable.
func (d *WallDocument) Blocks() *BlockDocument {
	east := make(map[[2]int]bool, len(d.VerticalWalls))
	for _, w := range d.VerticalWalls {
		east[[2]int{w.Row, w.Col}] = w.Passable
	}
	south := make(map[[2]int]bool, len(d.HorizontalWalls))
	for _, w := range d.HorizontalWalls {
		south[[2]int{w.Row, w.Col}] = w.Passable
	}

	doc := &BlockDocument{Width: d.Width, Height: d.Height, Blocks: []Block{}}
	for row := 0; row < d.Height; row++ {
		for col := 0; col < d.Width; col++ {
			doc.Blocks = append(doc.Blocks, Block{
				Row:   row,
				Col:   col,
				North: south[[2]int{row - 1, col}],
				South: south[[2]int{row, col}],
				East:  east[[2]int{row, col}],
				West:  east[[2]int{row, col - 1}],
			})
		}
	}
	return doc
}
