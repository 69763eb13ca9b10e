package engine

import "pursuit/metrics"

// MaxMoves caps the pursuer moves of a game unless WithMaxMoves says otherwise.
const MaxMoves = 500

// Game outcomes
const (
	Win     = "win"
	Lose    = "lose"
	Timeout = "timeout"
)

type Engine interface {
	// Run plays a game until it is won, lost or the move cap is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
