package searcher

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"pursuit/game"
	"pursuit/metrics"
)

const DefaultDepth = 2

var ErrNotImplemented = errors.New("not implemented")

// Variant selects how adversary layers are valued.
type Variant int

const (
	Minimax Variant = iota
	AlphaBeta
	Expectimax
)

var variantNames = map[Variant]string{
	Minimax:    "minimax",
	AlphaBeta:  "alphabeta",
	Expectimax: "expectimax",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("search variant %q: %w", name, ErrNotImplemented)
}

// Result is the outcome of a search from agent 0's perspective.
type Result struct {
	Action game.Action
	Value  float64
	Found  bool // false when agent 0 has no legal action
}

type Option func(s *Searcher)

// Searcher explores the game tree to a fixed number of full rounds, where a round is one
// move by every agent.
type Searcher struct {
	variant  Variant
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithMetrics counts expanded nodes and leaf evaluations; the caller starts and completes the collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func New(variant Variant, options ...Option) (*Searcher, error) {
	if _, ok := variantNames[variant]; !ok {
		return nil, fmt.Errorf("%v: %w", variant, ErrNotImplemented)
	}
	s := &Searcher{ // Default values
		variant:  variant,
		depth:    DefaultDepth,
		evaluate: game.ScoreEvaluation,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

func (s *Searcher) Variant() Variant { return s.variant }
func (s *Searcher) Depth() int       { return s.depth }

// FindAction returns the best action for agent 0, false when it has none.
func (s *Searcher) FindAction(state game.State) (game.Action, bool) {
	result := s.Search(state)
	return result.Action, result.Found
}

// Search values every legal action of agent 0 and keeps the first one with the highest value.
func (s *Searcher) Search(state game.State) Result {
	actions := state.LegalActions(0)
	if len(actions) == 0 {
		return Result{Action: game.NoAction, Value: s.leaf(state)}
	}
	s.expand(actions)

	depth, agent := next(state, 0, 0)
	alpha, beta := math.Inf(-1), math.Inf(1)
	result := Result{Found: true}
	for i, action := range actions {
		child := state.GenerateSuccessor(0, action)

		var value float64
		switch s.variant {
		case Minimax:
			value = s.minimax(child, depth, agent)
		case AlphaBeta:
			value = s.alphaBeta(child, depth, agent, alpha, beta)
		case Expectimax:
			value = s.expectimax(child, depth, agent)
		}

		if i == 0 || value > result.Value {
			result.Action = action
			result.Value = value
		}
		alpha = math.Max(alpha, result.Value)
	}

	log.Debug().
		Str("variant", s.variant.String()).
		Int("depth", s.depth).
		Str("action", string(result.Action)).
		Float64("value", result.Value).
		Msg("game tree searched")
	return result
}
