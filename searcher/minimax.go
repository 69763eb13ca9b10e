package searcher

import (
	"math"

	"pursuit/game"
)

// minimax assumes every adversary picks the action worst for agent 0.
func (s *Searcher) minimax(state game.State, depth, agent int) float64 {
	actions := s.legalActions(state, depth, agent)
	if len(actions) == 0 {
		return s.leaf(state)
	}

	nextDepth, nextAgent := next(state, depth, agent)
	if agent == 0 {
		value := math.Inf(-1)
		for _, action := range actions {
			value = math.Max(value, s.minimax(state.GenerateSuccessor(agent, action), nextDepth, nextAgent))
		}
		return value
	}

	value := math.Inf(1)
	for _, action := range actions {
		value = math.Min(value, s.minimax(state.GenerateSuccessor(agent, action), nextDepth, nextAgent))
	}
	return value
}
