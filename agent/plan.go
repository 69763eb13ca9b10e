package agent

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pursuit/game"
	"pursuit/metrics"
	"pursuit/search"
	"pursuit/searcher"
	"pursuit/utils"
)

// Planner returns a path from the pursuer to some food.
type Planner func(gs *game.GameState) []game.Action

type planFn func(problem *game.FoodProblem, heuristic search.Heuristic[game.Position, game.Action], options ...search.Option) []game.Action

var planners = map[string]planFn{
	"dfs": func(problem *game.FoodProblem, _ search.Heuristic[game.Position, game.Action], options ...search.Option) []game.Action {
		return search.DepthFirst[game.Position, game.Action](problem, options...)
	},
	"bfs": func(problem *game.FoodProblem, _ search.Heuristic[game.Position, game.Action], options ...search.Option) []game.Action {
		return search.BreadthFirst[game.Position, game.Action](problem, options...)
	},
	"ucs": func(problem *game.FoodProblem, _ search.Heuristic[game.Position, game.Action], options ...search.Option) []game.Action {
		return search.UniformCost[game.Position, game.Action](problem, options...)
	},
	"astar": func(problem *game.FoodProblem, heuristic search.Heuristic[game.Position, game.Action], options ...search.Option) []game.Action {
		return search.AStar[game.Position, game.Action](problem, heuristic, options...)
	},
}

// Food heuristics are relative to the closest food, which keeps them admissible.
var heuristics = map[string]func(food game.Grid) search.Heuristic[game.Position, game.Action]{
	"null": func(game.Grid) search.Heuristic[game.Position, game.Action] {
		return search.NullHeuristic[game.Position, game.Action]
	},
	"manhattan": game.NearestFoodHeuristic,
	"euclidean": func(food game.Grid) search.Heuristic[game.Position, game.Action] {
		targets := food.List()
		return func(state game.Position, _ search.Problem[game.Position, game.Action]) float64 {
			if len(targets) == 0 {
				return 0
			}
			best := game.Euclidean(state, targets[0])
			for _, t := range targets[1:] {
				if d := game.Euclidean(state, t); d < best {
					best = d
				}
			}
			return best
		}
	},
}

// NewPlanner resolves a search algorithm and heuristic by name. The heuristic only
// matters to astar; an empty name means null.
func NewPlanner(algorithm, heuristic string, collector metrics.Collector) (Planner, error) {
	plan, ok := planners[algorithm]
	if !ok {
		return nil, fmt.Errorf("search algorithm %q: %w", algorithm, searcher.ErrNotImplemented)
	}
	if heuristic == "" {
		heuristic = "null"
	}
	newHeuristic, ok := heuristics[heuristic]
	if !ok {
		return nil, fmt.Errorf("heuristic %q: %w", heuristic, searcher.ErrNotImplemented)
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}

	return func(gs *game.GameState) []game.Action {
		path := plan(game.NewFoodProblem(gs), newHeuristic(gs.Food()), search.WithMetrics(collector))
		log.Debug().Msgf("%s planned %d actions from %v", algorithm, len(path), gs.Pursuer())
		return path
	}, nil
}

type searchAgent struct {
	plan Planner
	path []game.Action
}

// NewSearchAgent returns a pursuer that walks planned paths to food and replans when the
// path runs out or its next step is no longer legal.
func NewSearchAgent(plan Planner) Agent {
	return &searchAgent{plan: plan}
}

func (a *searchAgent) GetAction(state game.State) game.Action {
	gs, ok := state.(*game.GameState)
	if !ok {
		panic("unexpected state type")
	}
	legal := gs.LegalActions(0)
	if len(legal) == 0 {
		return game.NoAction
	}

	if len(a.path) == 0 || utils.FindIndex(legal, a.path[0]) < 0 {
		a.path = a.plan(gs)
	}
	if len(a.path) == 0 { // No reachable food
		return game.Stop
	}
	action := a.path[0]
	a.path = a.path[1:]
	return action
}
