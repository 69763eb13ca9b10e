package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupEvaluation(t *testing.T) {
	gs := NewGameState(mustParse(t, "%%%%%%\n%P .G%\n%%%%%%\n"))

	t.Run("built-in names resolve", func(t *testing.T) {
		score, err := LookupEvaluation("score")
		require.NoError(t, err)
		require.Equal(t, ScoreEvaluation(gs), score(gs))

		better, err := LookupEvaluation("better")
		require.NoError(t, err)
		require.Equal(t, BetterEvaluation(gs), better(gs))
	})

	t.Run("unknown names fail", func(t *testing.T) {
		_, err := LookupEvaluation("clairvoyant")

		require.ErrorIs(t, err, ErrUnknownEvaluation)
	})

	t.Run("registered functions resolve", func(t *testing.T) {
		RegisterEvaluation("constant", func(State) float64 { return 7 })
		t.Cleanup(func() { delete(evaluations, "constant") })

		fn, err := LookupEvaluation("constant")

		require.NoError(t, err)
		require.Equal(t, 7.0, fn(gs))
		require.Contains(t, EvaluationNames(), "constant")
	})
}
