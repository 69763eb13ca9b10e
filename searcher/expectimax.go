package searcher

import (
	"math"

	"pursuit/game"
)

// expectimax models adversaries as choosing uniformly at random among their legal actions.
func (s *Searcher) expectimax(state game.State, depth, agent int) float64 {
	actions := s.legalActions(state, depth, agent)
	if len(actions) == 0 {
		return s.leaf(state)
	}

	nextDepth, nextAgent := next(state, depth, agent)
	if agent == 0 {
		value := math.Inf(-1)
		for _, action := range actions {
			value = math.Max(value, s.expectimax(state.GenerateSuccessor(agent, action), nextDepth, nextAgent))
		}
		return value
	}

	total := 0.0
	for _, action := range actions {
		total += s.expectimax(state.GenerateSuccessor(agent, action), nextDepth, nextAgent)
	}
	return total / float64(len(actions))
}
