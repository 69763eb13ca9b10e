package searcher

import (
	"golang.org/x/exp/rand"

	"pursuit/game"
	"pursuit/utils"
)

// Reflex looks one action ahead and breaks ties uniformly at random.
type Reflex struct {
	evaluate game.ActionEvaluate
	rng      *rand.Rand
}

func NewReflex(evaluate game.ActionEvaluate, seed uint64) *Reflex {
	if evaluate == nil {
		panic("nil action evaluation")
	}
	return &Reflex{evaluate: evaluate, rng: rand.New(rand.NewSource(seed))}
}

func (r *Reflex) FindAction(state game.State) (game.Action, bool) {
	actions := state.LegalActions(0)
	if len(actions) == 0 {
		return game.NoAction, false
	}

	scores := make([]float64, len(actions))
	for i, action := range actions {
		scores[i] = r.evaluate(state, action)
	}
	best := utils.MaxIndices(scores)
	return actions[utils.Choice(best, r.rng)], true
}
