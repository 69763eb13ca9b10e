package searcher

import "pursuit/game"

// next returns the depth and agent that move after agent; depth grows once every agent has moved.
func next(state game.State, depth, agent int) (int, int) {
	agent++
	if agent >= state.NumAgents() {
		return depth + 1, 0
	}
	return depth, agent
}

func (s *Searcher) cutoff(state game.State, depth int) bool {
	return state.IsWin() || state.IsLose() || depth >= s.depth
}

func (s *Searcher) leaf(state game.State) float64 {
	s.metrics.AddEvaluation()
	return s.evaluate(state)
}

func (s *Searcher) expand(actions []game.Action) {
	s.metrics.AddExpansion()
	s.metrics.AddGenerated(len(actions))
}

// legalActions returns nil for nodes that must be evaluated instead of expanded.
// An agent without legal actions in a live game is treated as a leaf.
func (s *Searcher) legalActions(state game.State, depth, agent int) []game.Action {
	if s.cutoff(state, depth) {
		return nil
	}
	actions := state.LegalActions(agent)
	if len(actions) > 0 {
		s.expand(actions)
	}
	return actions
}
