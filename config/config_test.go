package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pursuit.yaml")
		data := "layout: smallClassic\ngames: 5\npursuer:\n  type: expectimax\n  depth: 3\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "smallClassic", cfg.Layout)
		require.Equal(t, 5, cfg.Games)
		require.Equal(t, "expectimax", cfg.Pursuer.Type)
		require.Equal(t, 3, cfg.Pursuer.Depth)
		require.Equal(t, Default().MaxMoves, cfg.MaxMoves, "Unset fields keep their default")
		require.Equal(t, Default().Ghosts, cfg.Ghosts)
	})

	t.Run("environment variables are expanded", func(t *testing.T) {
		t.Setenv("PURSUIT_LAYOUT", "tinyMaze")

		cfg, err := Parse([]byte("layout: ${PURSUIT_LAYOUT}\n"))

		require.NoError(t, err)
		require.Equal(t, "tinyMaze", cfg.Layout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		tests := map[string]string{
			"malformed yaml":  "games: [",
			"zero games":      "games: 0",
			"zero max moves":  "max_moves: 0",
			"negative depth":  "pursuer:\n  depth: -1",
			"empty layout":    "layout: \"\"",
			"no pursuer type": "pursuer:\n  type: \"\"",
		}
		for name, data := range tests {
			_, err := Parse([]byte(data))
			require.ErrorIs(t, err, ErrInvalid, name)
		}
	})
}
