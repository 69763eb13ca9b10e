package search

// Successor is a state reachable from another state by one action.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64 // Step cost, must be non-negative for UniformCost and AStar
}

// Problem is the capability every searchable problem implements.
// States are opaque tokens: the algorithms only hash and compare them.
type Problem[S comparable, A any] interface {
	Start() S
	IsGoal(state S) bool
	// Successors returns a finite, ordered list of successors of state
	Successors(state S) []Successor[S, A]
	// Cost returns the total cost of a sequence of actions taken from the start state
	Cost(actions []A) float64
}

// Heuristic estimates the remaining cost from state to the nearest goal.
// Admissible heuristics never overestimate; this is not checked.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic always returns 0, which reduces AStar to UniformCost.
func NullHeuristic[S comparable, A any](state S, problem Problem[S, A]) float64 {
	return 0
}
