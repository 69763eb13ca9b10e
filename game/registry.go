package game

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownEvaluation = errors.New("unknown evaluation function")

var evaluations = map[string]Evaluate{
	"score":  ScoreEvaluation,
	"better": BetterEvaluation,
}

// LookupEvaluation resolves an evaluation function by its configured name.
func LookupEvaluation(name string) (Evaluate, error) {
	fn, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluation, name)
	}
	return fn, nil
}

// RegisterEvaluation adds or replaces a named evaluation function.
func RegisterEvaluation(name string, fn Evaluate) {
	if fn == nil {
		panic("nil evaluation function")
	}
	evaluations[name] = fn
}

func EvaluationNames() []string {
	names := make([]string, 0, len(evaluations))
	for name := range evaluations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
