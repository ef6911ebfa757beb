package i

import (
	"errors"

	"github.com/beka-birhanu/ascii-maze-api/maze"
	"github.com/google/uuid"
)

// ErrMazeNotFound is returned by MazeRepo lookups and deletes when no
// maze is stored under the requested title.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo defines the interface for maze document persistence.
type MazeRepo interface {
	// Save inserts or updates the document stored under the title.
	Save(id uuid.UUID, title string, doc *maze.WallDocument) error

	// ByTitle retrieves the document stored under the title.
	// Returns ErrMazeNotFound when there is none.
	ByTitle(title string) (*maze.WallDocument, error)

	// Delete removes the document stored under the title.
	// Returns ErrMazeNotFound when there is none.
	Delete(title string) error
}
