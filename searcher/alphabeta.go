package searcher

import (
	"math"

	"pursuit/game"
)

// alphaBeta is minimax that stops expanding siblings once a value falls strictly outside
// (alpha, beta). alpha is the best value agent 0 is assured of on the path to the root,
// beta the best the adversaries are assured of.
func (s *Searcher) alphaBeta(state game.State, depth, agent int, alpha, beta float64) float64 {
	actions := s.legalActions(state, depth, agent)
	if len(actions) == 0 {
		return s.leaf(state)
	}

	nextDepth, nextAgent := next(state, depth, agent)
	if agent == 0 {
		value := math.Inf(-1)
		for _, action := range actions {
			value = math.Max(value, s.alphaBeta(state.GenerateSuccessor(agent, action), nextDepth, nextAgent, alpha, beta))
			if value > beta {
				return value
			}
			alpha = math.Max(alpha, value)
		}
		return value
	}

	value := math.Inf(1)
	for _, action := range actions {
		value = math.Min(value, s.alphaBeta(state.GenerateSuccessor(agent, action), nextDepth, nextAgent, alpha, beta))
		if value < alpha {
			return value
		}
		beta = math.Min(beta, value)
	}
	return value
}
