package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/beka-birhanu/ascii-maze-api/maze"
	"github.com/beka-birhanu/ascii-maze-api/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/google/uuid"
)

const jsonExtension = ".json"

// Converter orchestrates a maze conversion: read the drawing, parse
// it, write the JSON document and persist the result. The parse
// itself is pure; everything stateful lives behind the injected
// collaborators.
type Converter struct {
	source i.MazeSource
	sink   i.DocumentSink
	repo   i.MazeRepo
	cache  i.DocumentCache
	logger general_i.Logger
}

// Config holds the collaborators for a Converter. Repo and Cache are
// optional; Source, Sink and Logger are required.
type Config struct {
	Source i.MazeSource
	Sink   i.DocumentSink
	Repo   i.MazeRepo
	Cache  i.DocumentCache
	Logger general_i.Logger
}

// NewConverter creates a Converter from the given configuration.
func NewConverter(cfg *Config) (i.Converter, error) {
	if cfg == nil || cfg.Source == nil || cfg.Sink == nil || cfg.Logger == nil {
		return nil, errors.New("converter requires a source, a sink and a logger")
	}

	return &Converter{
		source: cfg.Source,
		sink:   cfg.Sink,
		repo:   cfg.Repo,
		cache:  cfg.Cache,
		logger: cfg.Logger,
	}, nil
}

// Convert reads the named drawing, parses it and writes the canonical
// wall document as <title>.json. The title is derived before any line
// is read, so a name without an extension fails up front. Any error
// aborts the whole conversion; nothing partial is written or stored.
func (c *Converter) Convert(ctx context.Context, fileName string) (*maze.WallDocument, error) {
	title, err := maze.TitleFromFileName(fileName)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Deriving title from %q: %v", fileName, err))
		return nil, err
	}

	lines, err := c.source.ReadLines(fileName)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Reading %q: %v", fileName, err))
		return nil, fmt.Errorf("reading %q: %w", fileName, err)
	}

	m, err := maze.Parse(title, lines)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Parsing %q: %v", fileName, err))
		return nil, err
	}

	doc := m.WallDocument()
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", title, err)
	}

	if err := c.sink.WriteDocument(title+jsonExtension, data); err != nil {
		c.logger.Error(fmt.Sprintf("Writing document for %q: %v", title, err))
		return nil, fmt.Errorf("writing document for %q: %w", title, err)
	}

	if c.repo != nil {
		if err := c.repo.Save(uuid.New(), title, doc); err != nil {
			c.logger.Error(fmt.Sprintf("Persisting %q: %v", title, err))
			return nil, fmt.Errorf("persisting %q: %w", title, err)
		}
	}

	// Cache priming is an optimization; a cache failure must not fail
	// a conversion that has already been written and persisted.
	if c.cache != nil {
		if err := c.cache.Set(ctx, title, doc); err != nil {
			c.logger.Error(fmt.Sprintf("Caching %q: %v", title, err))
		}
	}

	c.logger.Info(fmt.Sprintf("Converted %q: %dx%d maze", title, doc.Width, doc.Height))
	return doc, nil
}

// ByTitle returns the stored document for the title, preferring the
// cache and refilling it from the repository on a miss.
func (c *Converter) ByTitle(ctx context.Context, title string) (*maze.WallDocument, error) {
	if c.cache != nil {
		doc, err := c.cache.Get(ctx, title)
		if err != nil {
			c.logger.Error(fmt.Sprintf("Cache lookup for %q: %v", title, err))
		} else if doc != nil {
			return doc, nil
		}
	}

	if c.repo == nil {
		return nil, i.ErrMazeNotFound
	}

	doc, err := c.repo.ByTitle(title)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, title, doc); err != nil {
			c.logger.Error(fmt.Sprintf("Refilling cache for %q: %v", title, err))
		}
	}
	return doc, nil
}

// Remove deletes the stored document for the title and invalidates
// its cache entry.
func (c *Converter) Remove(ctx context.Context, title string) error {
	if c.repo == nil {
		return i.ErrMazeNotFound
	}

	if err := c.repo.Delete(title); err != nil {
		return err
	}

	if c.cache != nil {
		if err := c.cache.Invalidate(ctx, title); err != nil {
			c.logger.Error(fmt.Sprintf("Invalidating cache for %q: %v", title, err))
		}
	}

	c.logger.Info(fmt.Sprintf("Removed maze %q", title))
	return nil
}
