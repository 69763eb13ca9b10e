package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type opaqueState struct {
	State
	score float64
}

func (s opaqueState) Score() float64 {
	return s.score
}

func TestScoreEvaluation(t *testing.T) {
	require.Equal(t, 42.0, ScoreEvaluation(opaqueState{score: 42}))
}

func TestReflexEvaluation(t *testing.T) {
	t.Run("stepping next to an active ghost is never worth it, even onto food", func(t *testing.T) {
		gs := NewGameState(mustParse(t, "%%%%%\n%P.G%\n%%%%%\n"))

		require.True(t, math.IsInf(ReflexEvaluation(gs, East), -1))
	})

	t.Run("eating food is always taken when safe", func(t *testing.T) {
		gs := NewGameState(mustParse(t, "%%%%%%%\n%P. .G%\n%%%%%%%\n"))

		require.True(t, math.IsInf(ReflexEvaluation(gs, East), 1))
	})

	t.Run("otherwise closes in on the nearest food", func(t *testing.T) {
		gs := NewGameState(mustParse(t, "%%%%%%%\n%P  .G%\n%%%%%%%\n"))

		require.Equal(t, -3.0, ReflexEvaluation(gs, Stop))
		require.Equal(t, -2.0, ReflexEvaluation(gs, East))
	})

	t.Run("scared ghosts are no threat", func(t *testing.T) {
		gs := NewGameState(mustParse(t, "%%%%%%\n%PoG.%\n%%%%%%\n"))

		require.Equal(t, -2.0, ReflexEvaluation(gs, East))
	})
}

func TestBetterEvaluation(t *testing.T) {
	t.Run("terminal states are worth their score", func(t *testing.T) {
		gs := NewGameState(mustParse(t, "%%%%\n%P.%\n%%%%\n")).Successor(0, East)

		require.Equal(t, gs.Score(), BetterEvaluation(gs))
	})

	t.Run("an adjacent active ghost is penalized", func(t *testing.T) {
		far := NewGameState(mustParse(t, "%%%%%%%\n%P  G.%\n%%%%%%%\n"))
		near := far.Successor(1, West).Successor(1, West)

		require.Equal(t, far.Score(), near.Score())
		require.Less(t, BetterEvaluation(near), BetterEvaluation(far)-threatPenalty/2)
	})

	t.Run("closer food is better", func(t *testing.T) {
		gs := NewGameState(mustParse(t, "%%%%%%%\n%P  .G%\n%%%%%%%\n"))
		closer := gs.Successor(0, East)

		require.Greater(t, BetterEvaluation(closer)+TimePenalty, BetterEvaluation(gs))
	})

	t.Run("scared ghosts within reach attract the pursuer", func(t *testing.T) {
		gs := NewGameState(mustParse(t, "%%%%%%%\n%Po G.%\n%%%%%%%\n"))
		scared := gs.Successor(0, East)
		fed := NewGameState(mustParse(t, "%%%%%%%\n% P G.%\n%%%%%%%\n"))

		require.Greater(t, BetterEvaluation(scared), BetterEvaluation(fed))
	})

	t.Run("rejects foreign state types", func(t *testing.T) {
		require.Panics(t, func() { BetterEvaluation(opaqueState{}) })
	})
}
