package game

import (
	"math"

	"pursuit/search"
)

// CostFn prices stepping onto a position.
type CostFn func(Position) float64

func unitCost(Position) float64 { return 1 }

// PositionProblem finds a path through the walls of a layout to a goal position.
type PositionProblem struct {
	layout *Layout
	start  Position
	goal   Position
	cost   CostFn
}

// NewPositionProblem builds a problem with unit step costs unless cost is given.
func NewPositionProblem(l *Layout, start, goal Position, cost CostFn) *PositionProblem {
	if cost == nil {
		cost = unitCost
	}
	return &PositionProblem{layout: l, start: start, goal: goal, cost: cost}
}

func (p *PositionProblem) Start() Position {
	return p.start
}

func (p *PositionProblem) Goal() Position {
	return p.goal
}

func (p *PositionProblem) IsGoal(state Position) bool {
	return state == p.goal
}

func (p *PositionProblem) Successors(state Position) []search.Successor[Position, Action] {
	return successors(p.layout, state, p.cost)
}

func (p *PositionProblem) Cost(actions []Action) float64 {
	return pathCost(p.layout, p.start, actions, p.cost)
}

// FoodProblem finds a path from the pursuer to any food of a game state.
type FoodProblem struct {
	layout *Layout
	start  Position
	food   Grid
}

func NewFoodProblem(gs *GameState) *FoodProblem {
	return &FoodProblem{layout: gs.layout, start: gs.pursuer, food: gs.food}
}

func (p *FoodProblem) Start() Position {
	return p.start
}

func (p *FoodProblem) IsGoal(state Position) bool {
	return p.food.Get(state)
}

func (p *FoodProblem) Successors(state Position) []search.Successor[Position, Action] {
	return successors(p.layout, state, unitCost)
}

func (p *FoodProblem) Cost(actions []Action) float64 {
	return pathCost(p.layout, p.start, actions, unitCost)
}

func successors(l *Layout, state Position, cost CostFn) []search.Successor[Position, Action] {
	result := make([]search.Successor[Position, Action], 0, len(Moves))
	for _, move := range Moves {
		next := state.Move(move)
		if l.IsWall(next) {
			continue
		}
		result = append(result, search.Successor[Position, Action]{State: next, Action: move, Cost: cost(next)})
	}
	return result
}

// pathCost returns +Inf for sequences that walk into a wall.
func pathCost(l *Layout, start Position, actions []Action, cost CostFn) float64 {
	position := start
	total := 0.0
	for _, action := range actions {
		position = position.Move(action)
		if l.IsWall(position) {
			return math.Inf(1)
		}
		total += cost(position)
	}
	return total
}

// ManhattanHeuristic is admissible for unit-cost grid moves toward goal.
func ManhattanHeuristic(goal Position) search.Heuristic[Position, Action] {
	return func(state Position, _ search.Problem[Position, Action]) float64 {
		return float64(Manhattan(state, goal))
	}
}

func EuclideanHeuristic(goal Position) search.Heuristic[Position, Action] {
	return func(state Position, _ search.Problem[Position, Action]) float64 {
		return Euclidean(state, goal)
	}
}

// NearestFoodHeuristic is the Manhattan distance to the closest food, 0 without food.
func NearestFoodHeuristic(food Grid) search.Heuristic[Position, Action] {
	list := food.List()
	return func(state Position, _ search.Problem[Position, Action]) float64 {
		return float64(nearest(state, list))
	}
}

// nearest returns the smallest Manhattan distance from p to targets, 0 when empty.
func nearest(p Position, targets []Position) int {
	best := -1
	for _, t := range targets {
		if d := Manhattan(p, t); best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}
