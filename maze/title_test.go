package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromFileName(t *testing.T) {
	t.Run("drops the final extension", func(t *testing.T) {
		title, err := TitleFromFileName("labyrinth.txt")
		assert.NoError(t, err)
		assert.Equal(t, "labyrinth", title)
	})

	t.Run("only the last extension is dropped", func(t *testing.T) {
		title, err := TitleFromFileName("mazes/big.maze.txt")
		assert.NoError(t, err)
		assert.Equal(t, "mazes/big.maze", title)
	})

	t.Run("fails without an extension", func(t *testing.T) {
		_, err := TitleFromFileName("maze")
		assert.ErrorIs(t, err, ErrMissingExtension)
	})

	t.Run("fails when nothing precedes the extension", func(t *testing.T) {
		_, err := TitleFromFileName(".txt")
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})
}
