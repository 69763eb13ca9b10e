package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	t.Run("parses walls, food, capsules and agents", func(t *testing.T) {
		l, err := ParseLayout("mini", "%%%%%\n%Po.%\n%  G%\n%%%%%\n")

		require.NoError(t, err)
		require.Equal(t, 5, l.Width())
		require.Equal(t, 4, l.Height())
		require.Equal(t, Position{X: 1, Y: 1}, l.Pursuer)
		require.Equal(t, []Position{{X: 3, Y: 2}}, l.Ghosts)
		require.Equal(t, []Position{{X: 2, Y: 1}}, l.Capsules)
		require.Equal(t, []Position{{X: 3, Y: 1}}, l.Food.List())
		require.True(t, l.IsWall(Position{X: 0, Y: 0}))
		require.False(t, l.IsWall(Position{X: 1, Y: 2}))
	})

	t.Run("positions outside the grid are walls", func(t *testing.T) {
		l, err := ParseLayout("open", "P \n .\n")

		require.NoError(t, err)
		require.True(t, l.IsWall(Position{X: -1, Y: 0}))
		require.True(t, l.IsWall(Position{X: 0, Y: 2}))
		require.False(t, l.IsWall(Position{X: 1, Y: 1}))
	})

	t.Run("rejects malformed layouts", func(t *testing.T) {
		tests := map[string]string{
			"ragged rows":       "%%%\n%P%%\n%%%\n",
			"unknown character": "%%%\n%P#\n%%%\n",
			"missing pursuer":   "%%%\n% %\n%%%\n",
			"two pursuers":      "%%%%\n%PP%\n%%%%\n",
			"empty text":        "\n\n",
		}
		for name, text := range tests {
			_, err := ParseLayout(name, text)
			require.ErrorIs(t, err, ErrInvalidLayout, name)
		}
	})
}

func TestLoadLayout(t *testing.T) {
	t.Run("every built-in layout loads", func(t *testing.T) {
		names := LayoutNames()
		require.Contains(t, names, "tinyMaze")
		require.Contains(t, names, "minimaxClassic")

		for _, name := range names {
			l, err := LoadLayout(name)
			require.NoError(t, err, name)
			require.Equal(t, name, l.Name)
			require.Positive(t, l.Food.Count(), "%s should have food", name)
		}
	})

	t.Run("falls back to the file system", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "corridor.lay")
		require.NoError(t, os.WriteFile(file, []byte("%%%%%\n%P .%\n%%%%%\n"), 0o644))

		l, err := LoadLayout(file)

		require.NoError(t, err)
		require.Equal(t, "corridor", l.Name)
		require.Equal(t, Position{X: 1, Y: 1}, l.Pursuer)
	})

	t.Run("unknown layout fails", func(t *testing.T) {
		_, err := LoadLayout("doesNotExist")

		require.Error(t, err)
	})
}

func TestGrid(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(Position{X: 2, Y: 0}, true)
	g.Set(Position{X: 0, Y: 1}, true)
	c := g.Copy()
	c.Set(Position{X: 2, Y: 0}, false)

	require.Equal(t, 2, g.Count(), "Copy should not share cells")
	require.Equal(t, []Position{{X: 2, Y: 0}, {X: 0, Y: 1}}, g.List())
	require.Equal(t, 1, c.Count())
	require.False(t, g.Get(Position{X: 5, Y: 5}), "Out of bounds cells are unset")
}
