package service

import (
	"context"
	"errors"
	"testing"

	"github.com/beka-birhanu/ascii-maze-api/maze"
	"github.com/beka-birhanu/ascii-maze-api/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var drawing = []string{
	"_______",
	"|  _| |",
	"| |  _|",
	"|_____|",
}

type stubSource struct {
	lines []string
	err   error
	calls int
}

func (s *stubSource) ReadLines(name string) ([]string, error) {
	s.calls++
	return s.lines, s.err
}

type stubSink struct {
	writes map[string][]byte
	err    error
}

func (s *stubSink) WriteDocument(name string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.writes == nil {
		s.writes = map[string][]byte{}
	}
	s.writes[name] = data
	return nil
}

type stubRepo struct {
	docs  map[string]*maze.WallDocument
	saves int
}

func (r *stubRepo) Save(id uuid.UUID, title string, doc *maze.WallDocument) error {
	r.saves++
	if r.docs == nil {
		r.docs = map[string]*maze.WallDocument{}
	}
	r.docs[title] = doc
	return nil
}

func (r *stubRepo) ByTitle(title string) (*maze.WallDocument, error) {
	doc, ok := r.docs[title]
	if !ok {
		return nil, i.ErrMazeNotFound
	}
	return doc, nil
}

func (r *stubRepo) Delete(title string) error {
	if _, ok := r.docs[title]; !ok {
		return i.ErrMazeNotFound
	}
	delete(r.docs, title)
	return nil
}

type stubCache struct {
	docs   map[string]*maze.WallDocument
	getErr error
	setErr error
}

func (c *stubCache) Set(ctx context.Context, title string, doc *maze.WallDocument) error {
	if c.setErr != nil {
		return c.setErr
	}
	if c.docs == nil {
		c.docs = map[string]*maze.WallDocument{}
	}
	c.docs[title] = doc
	return nil
}

func (c *stubCache) Get(ctx context.Context, title string) (*maze.WallDocument, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.docs[title], nil
}

func (c *stubCache) Invalidate(ctx context.Context, title string) error {
	delete(c.docs, title)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Error(string) {}

func newTestConverter(t *testing.T, cfg *Config) i.Converter {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	converter, err := NewConverter(cfg)
	require.NoError(t, err)
	return converter
}

func TestNewConverter(t *testing.T) {
	_, err := NewConverter(nil)
	assert.Error(t, err)

	_, err = NewConverter(&Config{Source: &stubSource{}, Logger: nopLogger{}})
	assert.Error(t, err)
}

func TestConverter_Convert(t *testing.T) {
	t.Run("parses, writes, persists and caches", func(t *testing.T) {
		source := &stubSource{lines: drawing}
		sink := &stubSink{}
		repo := &stubRepo{}
		cache := &stubCache{}
		converter := newTestConverter(t, &Config{Source: source, Sink: sink, Repo: repo, Cache: cache})

		doc, err := converter.Convert(context.Background(), "fixture.txt")
		require.NoError(t, err)
		assert.Equal(t, 3, doc.Width)
		assert.Equal(t, 3, doc.Height)
		assert.Len(t, doc.VerticalWalls, 6)
		assert.Len(t, doc.HorizontalWalls, 6)

		assert.Contains(t, sink.writes, "fixture.json")
		assert.Equal(t, doc, repo.docs["fixture"])
		assert.Equal(t, doc, cache.docs["fixture"])
	})

	t.Run("fails before reading when the name has no extension", func(t *testing.T) {
		source := &stubSource{lines: drawing}
		converter := newTestConverter(t, &Config{Source: source, Sink: &stubSink{}})

		_, err := converter.Convert(context.Background(), "fixture")
		assert.ErrorIs(t, err, maze.ErrMissingExtension)
		assert.Zero(t, source.calls)
	})

	t.Run("stores nothing on a parse failure", func(t *testing.T) {
		sink := &stubSink{}
		repo := &stubRepo{}
		converter := newTestConverter(t, &Config{
			Source: &stubSource{lines: []string{"___", "|x|"}},
			Sink:   sink,
			Repo:   repo,
		})

		_, err := converter.Convert(context.Background(), "bad.txt")
		var unknown *maze.UnknownCharacterError
		assert.ErrorAs(t, err, &unknown)
		assert.Empty(t, sink.writes)
		assert.Zero(t, repo.saves)
	})

	t.Run("fails when the sink fails", func(t *testing.T) {
		repo := &stubRepo{}
		converter := newTestConverter(t, &Config{
			Source: &stubSource{lines: drawing},
			Sink:   &stubSink{err: errors.New("disk full")},
			Repo:   repo,
		})

		_, err := converter.Convert(context.Background(), "fixture.txt")
		assert.Error(t, err)
		assert.Zero(t, repo.saves)
	})

	t.Run("a cache failure does not fail the conversion", func(t *testing.T) {
		converter := newTestConverter(t, &Config{
			Source: &stubSource{lines: drawing},
			Sink:   &stubSink{},
			Cache:  &stubCache{setErr: errors.New("redis down")},
		})

		_, err := converter.Convert(context.Background(), "fixture.txt")
		assert.NoError(t, err)
	})
}

func TestConverter_ByTitle(t *testing.T) {
	ctx := context.Background()
	doc := &maze.WallDocument{Width: 3, Height: 3, VerticalWalls: []maze.Wall{}, HorizontalWalls: []maze.Wall{}}

	t.Run("prefers the cache", func(t *testing.T) {
		repo := &stubRepo{}
		cache := &stubCache{docs: map[string]*maze.WallDocument{"fixture": doc}}
		converter := newTestConverter(t, &Config{Source: &stubSource{}, Sink: &stubSink{}, Repo: repo, Cache: cache})

		got, err := converter.ByTitle(ctx, "fixture")
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})

	t.Run("falls back to the repo and refills the cache", func(t *testing.T) {
		repo := &stubRepo{docs: map[string]*maze.WallDocument{"fixture": doc}}
		cache := &stubCache{}
		converter := newTestConverter(t, &Config{Source: &stubSource{}, Sink: &stubSink{}, Repo: repo, Cache: cache})

		got, err := converter.ByTitle(ctx, "fixture")
		require.NoError(t, err)
		assert.Equal(t, doc, got)
		assert.Equal(t, doc, cache.docs["fixture"])
	})

	t.Run("reports a missing maze", func(t *testing.T) {
		converter := newTestConverter(t, &Config{Source: &stubSource{}, Sink: &stubSink{}, Repo: &stubRepo{}})

		_, err := converter.ByTitle(ctx, "nowhere")
		assert.ErrorIs(t, err, i.ErrMazeNotFound)
	})
}

func TestConverter_Remove(t *testing.T) {
	ctx := context.Background()
	doc := &maze.WallDocument{Width: 1, Height: 1, VerticalWalls: []maze.Wall{}, HorizontalWalls: []maze.Wall{}}

	repo := &stubRepo{docs: map[string]*maze.WallDocument{"fixture": doc}}
	cache := &stubCache{docs: map[string]*maze.WallDocument{"fixture": doc}}
	converter := newTestConverter(t, &Config{Source: &stubSource{}, Sink: &stubSink{}, Repo: repo, Cache: cache})

	require.NoError(t, converter.Remove(ctx, "fixture"))
	assert.NotContains(t, repo.docs, "fixture")
	assert.NotContains(t, cache.docs, "fixture")

	assert.ErrorIs(t, converter.Remove(ctx, "fixture"), i.ErrMazeNotFound)
}
