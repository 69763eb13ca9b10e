package agent

import (
	"pursuit/game"
	"pursuit/searcher"
)

type Agent interface {
	// GetAction returns the action to play in state, game.NoAction when there is none
	GetAction(state game.State) game.Action
}

type adversarialAgent struct {
	searcher *searcher.Searcher
}

// NewAdversarial returns a pursuer that plays the game-tree search's choice.
func NewAdversarial(s *searcher.Searcher) Agent {
	return adversarialAgent{searcher: s}
}

func (a adversarialAgent) GetAction(state game.State) game.Action {
	action, _ := a.searcher.FindAction(state)
	return action
}

type reflexAgent struct {
	reflex *searcher.Reflex
}

// NewReflex returns a pursuer that only looks one action ahead.
func NewReflex(evaluate game.ActionEvaluate, seed uint64) Agent {
	return reflexAgent{reflex: searcher.NewReflex(evaluate, seed)}
}

func (a reflexAgent) GetAction(state game.State) game.Action {
	action, _ := a.reflex.FindAction(state)
	return action
}
