package i

import (
	"context"

	"github.com/beka-birhanu/ascii-maze-api/maze"
)

// DocumentCache is a shared cache of serialized maze documents keyed
// by title. A miss is reported as (nil, nil); cache failures must not
// fail a conversion.
type DocumentCache interface {
	Set(ctx context.Context, title string, doc *maze.WallDocument) error
	Get(ctx context.Context, title string) (*maze.WallDocument, error)
	Invalidate(ctx context.Context, title string) error
}
