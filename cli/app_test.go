package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pursuit/config"
	"pursuit/searcher"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := New().WithOutput(&stdout, &stderr).ExecuteWithArgs(context.Background(), args)
	return stdout.String(), err
}

func TestLayoutsCmd(t *testing.T) {
	output, err := execute(t, "layouts")

	require.NoError(t, err)
	require.Contains(t, output, "tinyMaze")
	require.Contains(t, output, "minimaxClassic")
}

func TestSearchCmd(t *testing.T) {
	t.Run("reports the planned path", func(t *testing.T) {
		output, err := execute(t, "search", "--layout", "tinyMaze", "--algorithm", "bfs")

		require.NoError(t, err)
		require.Contains(t, output, "8 actions, cost 8")
	})

	t.Run("renders the path over the layout", func(t *testing.T) {
		output, err := execute(t, "search", "-l", "tinyMaze", "-a", "astar", "--heuristic", "manhattan", "--render", "--color=false")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(output), "\n")
		require.Equal(t, "%%%%%%%", lines[len(lines)-1])
		require.Equal(t, "%    P%", lines[len(lines)-6])
		require.Equal(t, 8, strings.Count(output, "*"), "Every step of the path is marked")
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := execute(t, "search", "--algorithm", "iddfs")

		require.ErrorIs(t, err, searcher.ErrNotImplemented)
	})

	t.Run("unknown layout", func(t *testing.T) {
		_, err := execute(t, "search", "--layout", filepath.Join(t.TempDir(), "missing.lay"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestPlayCmd(t *testing.T) {
	t.Run("flags configure the games", func(t *testing.T) {
		output, err := execute(t, "play", "--layout", "tinyMaze", "--agent", "search", "--games", "2")

		require.NoError(t, err)
		require.Contains(t, output, "2 games, 2 wins, 0 losses, 0 timeouts, mean score 502.00")
	})

	t.Run("flags override the configuration file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pursuit.yaml")
		data := "layout: tinyMaze\ngames: 3\npursuer:\n  type: search\n  algorithm: ucs\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		records := t.TempDir()

		output, err := execute(t, "play", "-c", path, "--games", "1", "--output", records)

		require.NoError(t, err)
		require.Contains(t, output, "search on tinyMaze: 1 games, 1 wins")
		require.Contains(t, output, "records written to "+records)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		_, err := execute(t, "play", "--games", "0")

		require.ErrorIs(t, err, config.ErrInvalid)
	})
}

func TestLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "chatty", "layouts")

	require.Error(t, err)
}
