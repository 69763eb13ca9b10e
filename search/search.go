package search

import (
	"pursuit/metrics"

	"github.com/rs/zerolog/log"
)

type Option func(o *options)

type options struct {
	metrics metrics.Collector
}

// WithMetrics records expansions and generated successors into collector.
// The caller owns Start and Complete.
func WithMetrics(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{metrics: metrics.NewDummyCollector()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// frontier holds discovered but unexpanded nodes under one extraction policy.
type frontier[S comparable, A any] interface {
	// offer considers n for insertion; the policy decides whether it is kept
	offer(n node[S, A])
	pop() node[S, A]
	empty() bool
}

type lifoFrontier[S comparable, A any] struct {
	stack[node[S, A]]
}

func (f *lifoFrontier[S, A]) offer(n node[S, A]) {
	f.push(n)
}

type fifoFrontier[S comparable, A any] struct {
	queue[node[S, A]]
	queued map[S]struct{}
}

func (f *fifoFrontier[S, A]) offer(n node[S, A]) {
	if _, ok := f.queued[n.state]; ok {
		return
	}
	f.queued[n.state] = struct{}{}
	f.push(n)
}

func (f *fifoFrontier[S, A]) pop() node[S, A] {
	n := f.queue.pop()
	delete(f.queued, n.state)
	return n
}

type costFrontier[S comparable, A any] struct {
	queue    *priorityQueue[S, node[S, A]]
	priority func(n node[S, A]) float64
}

func (f *costFrontier[S, A]) offer(n node[S, A]) {
	p := f.priority(n)
	if _, ok := f.queue.priority(n.state); ok {
		// Equal-or-cheaper queued paths win; cheaper ones replace in place
		f.queue.update(n.state, n, p)
		return
	}
	f.queue.push(n.state, n, p)
}

func (f *costFrontier[S, A]) pop() node[S, A] {
	_, n := f.queue.pop()
	return n
}

func (f *costFrontier[S, A]) empty() bool {
	return f.queue.empty()
}

// DepthFirst searches the deepest nodes first.
func DepthFirst[S comparable, A any](problem Problem[S, A], opts ...Option) []A {
	return graphSearch("dfs", problem, &lifoFrontier[S, A]{}, newOptions(opts))
}

// BreadthFirst searches the shallowest nodes first.
func BreadthFirst[S comparable, A any](problem Problem[S, A], opts ...Option) []A {
	f := &fifoFrontier[S, A]{queued: make(map[S]struct{})}
	return graphSearch("bfs", problem, f, newOptions(opts))
}

// UniformCost searches the node of least path cost first.
func UniformCost[S comparable, A any](problem Problem[S, A], opts ...Option) []A {
	f := &costFrontier[S, A]{
		queue:    newPriorityQueue[S, node[S, A]](),
		priority: func(n node[S, A]) float64 { return n.cost },
	}
	return graphSearch("ucs", problem, f, newOptions(opts))
}

// AStar searches the node of least path cost plus heuristic estimate first.
// A nil heuristic behaves as NullHeuristic.
func AStar[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A], opts ...Option) []A {
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	f := &costFrontier[S, A]{
		queue: newPriorityQueue[S, node[S, A]](),
		priority: func(n node[S, A]) float64 {
			return n.cost + heuristic(n.state, problem)
		},
	}
	return graphSearch("astar", problem, f, newOptions(opts))
}

// graphSearch runs the skeleton shared by all algorithms: goal test on pop,
// at most one expansion per state, empty path when the frontier runs dry.
func graphSearch[S comparable, A any](name string, problem Problem[S, A], f frontier[S, A], o *options) []A {
	start := problem.Start()
	if problem.IsGoal(start) {
		return []A{}
	}

	f.offer(node[S, A]{state: start, path: []A{}})
	visited := make(map[S]struct{})

	for !f.empty() {
		current := f.pop()
		if _, ok := visited[current.state]; ok {
			continue
		}

		if problem.IsGoal(current.state) {
			log.Debug().Str("algorithm", name).Int("expanded", len(visited)).Int("length", len(current.path)).
				Float64("cost", current.cost).Msg("goal found")
			return current.path
		}

		visited[current.state] = struct{}{}
		o.metrics.AddExpansion()

		successors := problem.Successors(current.state)
		o.metrics.AddGenerated(len(successors))
		for _, successor := range successors {
			if _, ok := visited[successor.State]; ok {
				continue
			}
			path := make([]A, len(current.path)+1)
			copy(path, current.path)
			path[len(current.path)] = successor.Action
			f.offer(node[S, A]{
				state: successor.State,
				path:  path,
				cost:  current.cost + successor.Cost,
			})
		}
	}

	log.Debug().Str("algorithm", name).Int("expanded", len(visited)).Msg("goal unreachable")
	return []A{}
}
