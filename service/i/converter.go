package i

import (
	"context"

	"github.com/beka-birhanu/ascii-maze-api/maze"
)

// Converter turns ASCII maze drawings into serialized maze documents
// and manages the stored results.
type Converter interface {
	// Convert reads the named drawing, parses it, writes the JSON
	// document next to it and persists the result. It fails fast on
	// the first format violation and never stores a partial maze.
	Convert(ctx context.Context, fileName string) (*maze.WallDocument, error)

	// ByTitle retrieves a previously converted maze document.
	ByTitle(ctx context.Context, title string) (*maze.WallDocument, error)

	// Remove deletes a stored maze document and drops it from the cache.
	Remove(ctx context.Context, title string) error
}
