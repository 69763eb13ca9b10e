package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"pursuit/agent"
	"pursuit/game"
	"pursuit/metrics"
	"pursuit/utils"
)

type Option func(e *Local)

func WithMaxMoves(moves int) Option {
	return func(e *Local) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithMetrics records the search work behind every move; agents must report to the same collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(e *Local) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// Local plays the pursuer and its adversaries in turn, in process.
type Local struct {
	State  *game.GameState
	Agents []agent.Agent // Pursuer first, then one per ghost

	maxMoves int
	metrics  metrics.Collector
}

func LocalEngine(state *game.GameState, pursuer agent.Agent, adversaries []agent.Agent, options ...Option) *Local {
	if len(adversaries) != state.NumAgents()-1 {
		panic("number of adversaries does not match the layout")
	}

	e := &Local{
		State:    state,
		Agents:   append([]agent.Agent{pursuer}, adversaries...),
		maxMoves: MaxMoves,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is over or the pursuer is out of moves.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Layout:    e.State.Layout().Name,
		StartTime: time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("game started on %s with %d adversaries", gameMetric.Layout, len(e.Agents)-1)

	step := 0
	for round := 0; round < e.maxMoves && !e.over(); round++ {
		for index, a := range e.Agents {
			if e.over() {
				break
			}

			e.metrics.Start()
			action := a.GetAction(e.State)
			searchMetric := e.metrics.Complete()

			legal := e.State.LegalActions(index)
			if utils.FindIndex(legal, action) < 0 {
				// The pursuer's fallback is Stop
				log.Warn().Msgf("agent %d returned %q, playing %s", index, action, legal[0])
				action = legal[0]
			}

			e.State = e.State.Successor(index, action)
			step++
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Agent:        index,
				Action:       string(action),
				SearchMetric: searchMetric,
			})
		}
	}

	switch {
	case e.State.IsWin():
		gameMetric.Outcome = Win
	case e.State.IsLose():
		gameMetric.Outcome = Lose
	default:
		gameMetric.Outcome = Timeout
	}
	gameMetric.Score = e.State.Score()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step

	log.Info().Msgf("game over: %s with score %.0f after %d moves", gameMetric.Outcome, gameMetric.Score, step)
	return gameMetric, moveMetrics
}

func (e *Local) over() bool {
	return e.State.IsWin() || e.State.IsLose()
}

var _ Engine = (*Local)(nil)
