package agent

import (
	"fmt"

	"pursuit/config"
	"pursuit/game"
	"pursuit/metrics"
	"pursuit/searcher"
)

// New builds the configured pursuer. Search statistics go to collector.
func New(cfg config.Agent, seed uint64, collector metrics.Collector) (Agent, error) {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}

	switch cfg.Type {
	case "reflex":
		evaluate := func(state game.State, action game.Action) float64 {
			collector.AddEvaluation()
			return game.ReflexEvaluation(state, action)
		}
		return NewReflex(evaluate, seed), nil
	case "search":
		plan, err := NewPlanner(cfg.Algorithm, cfg.Heuristic, collector)
		if err != nil {
			return nil, err
		}
		return NewSearchAgent(plan), nil
	}

	variant, err := searcher.ParseVariant(cfg.Type)
	if err != nil {
		return nil, fmt.Errorf("agent type %q: %w", cfg.Type, searcher.ErrNotImplemented)
	}
	name := cfg.Evaluation
	if name == "" {
		name = "score"
	}
	evaluate, err := game.LookupEvaluation(name)
	if err != nil {
		return nil, err
	}
	s, err := searcher.New(variant,
		searcher.WithDepth(cfg.Depth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(collector),
	)
	if err != nil {
		return nil, err
	}
	return NewAdversarial(s), nil
}

// NewGhost builds the adversary playing as agent index.
func NewGhost(name string, index int, seed uint64) (Agent, error) {
	if index < 1 {
		panic(fmt.Sprintf("ghost index %d, ghosts start at 1", index))
	}
	switch name {
	case "random":
		return NewRandomGhost(index, seed), nil
	case "directional":
		return NewDirectionalGhost(index, seed), nil
	}
	return nil, fmt.Errorf("ghost type %q: %w", name, searcher.ErrNotImplemented)
}
