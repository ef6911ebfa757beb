package maze

// Cell represents a single cell in a maze grid.
// Each side records whether the boundary in that direction is passable.
type Cell struct {
	// Row index of the cell, 0 at the top.
	Row int
	// Col index of the cell, 0 at the left.
	Col int
	// North reports whether the boundary above the cell is passable.
	North bool
	// South reports whether the boundary below the cell is passable.
	South bool
	// East reports whether the boundary to the right of the cell is passable.
	East bool
	// West reports whether the boundary to the left of the cell is passable.
	West bool
}
