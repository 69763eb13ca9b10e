package agent

import (
	"golang.org/x/exp/rand"

	"pursuit/game"
	"pursuit/utils"
)

// GreedyProb is the chance a directional ghost takes its greedy action.
const GreedyProb = 0.8

type randomGhost struct {
	index int
	rng   *rand.Rand
}

// NewRandomGhost returns an adversary that plays uniformly among its legal actions.
func NewRandomGhost(index int, seed uint64) Agent {
	return &randomGhost{index: index, rng: rand.New(rand.NewSource(seed))}
}

func (g *randomGhost) GetAction(state game.State) game.Action {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return game.NoAction
	}
	return utils.Choice(actions, g.rng)
}

type directionalGhost struct {
	index int
	rng   *rand.Rand
}

// NewDirectionalGhost returns an adversary that usually closes in on the pursuer,
// or flees from it while scared.
func NewDirectionalGhost(index int, seed uint64) Agent {
	return &directionalGhost{index: index, rng: rand.New(rand.NewSource(seed))}
}

func (g *directionalGhost) GetAction(state game.State) game.Action {
	gs, ok := state.(*game.GameState)
	if !ok {
		panic("unexpected state type")
	}
	actions := gs.LegalActions(g.index)
	if len(actions) == 0 {
		return game.NoAction
	}

	ghost := gs.Ghosts()[g.index-1]
	scores := make([]int, len(actions))
	for i, action := range actions {
		distance := game.Manhattan(ghost.Position.Move(action), gs.Pursuer())
		if ghost.Scared() {
			scores[i] = distance
		} else {
			scores[i] = -distance
		}
	}

	if g.rng.Float64() < GreedyProb {
		best := utils.MaxIndices(scores)
		return actions[utils.Choice(best, g.rng)]
	}
	return utils.Choice(actions, g.rng)
}
