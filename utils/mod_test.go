package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]string{"a"}, "z"))
}

func TestMaxIndices(t *testing.T) {
	t.Run("collects every tied maximum", func(t *testing.T) {
		require.Equal(t, []int{1, 3}, MaxIndices([]float64{1, 4, 2, 4}))
	})

	t.Run("infinities compare as values", func(t *testing.T) {
		require.Equal(t, []int{2}, MaxIndices([]float64{math.Inf(-1), -3, math.Inf(1)}))
		require.Equal(t, []int{0, 1}, MaxIndices([]float64{math.Inf(-1), math.Inf(-1)}))
	})

	t.Run("empty input has no maximum", func(t *testing.T) {
		require.Empty(t, MaxIndices([]int{}))
	})
}

func TestChoice(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Choice(items, r)] = true
	}

	require.Len(t, seen, 3, "Every item should eventually be chosen")
	require.Panics(t, func() { Choice([]int{}, r) })
}
