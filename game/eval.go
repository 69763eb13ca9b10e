package game

import "math"

// Weights of BetterEvaluation
const (
	foodProximityWeight = 10.0
	foodCountWeight     = 4.0
	capsuleCountWeight  = 20.0
	threatPenalty       = 1000.0
	huntWeight          = 100.0
)

// ScoreEvaluation simply returns the game score.
func ScoreEvaluation(s State) float64 {
	return s.Score()
}

// BetterEvaluation adds to the score the pull of the nearest food, the cost of remaining
// food and capsules, the threat of active ghosts next to the pursuer and the reward of
// scared ghosts that can still be caught.
func BetterEvaluation(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if gs.win || gs.lose {
		return gs.score
	}

	value := gs.score
	food := gs.food.List()
	if len(food) > 0 {
		value += foodProximityWeight / float64(nearest(gs.pursuer, food)+1)
	}
	value -= foodCountWeight * float64(len(food))
	value -= capsuleCountWeight * float64(len(gs.capsules))

	for _, ghost := range gs.ghosts {
		distance := Manhattan(gs.pursuer, ghost.Position)
		switch {
		case ghost.Scared() && distance < ghost.ScaredTimer:
			// Reachable before it recovers
			value += huntWeight / float64(distance+1)
		case !ghost.Scared() && distance <= 1:
			value -= threatPenalty
		}
	}
	return value
}

// ReflexEvaluation scores a single pursuer action: never step next to an active ghost,
// always take food otherwise, and else close in on the nearest food.
func ReflexEvaluation(s State, action Action) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	next := gs.Successor(0, action)
	position := next.pursuer

	for _, ghost := range next.ghosts {
		if !ghost.Scared() && Manhattan(ghost.Position, position) <= 1 {
			return math.Inf(-1)
		}
	}
	if gs.food.Get(position) {
		return math.Inf(1)
	}
	return -float64(nearest(position, gs.food.List()))
}
