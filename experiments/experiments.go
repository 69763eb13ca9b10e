package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pursuit/agent"
	"pursuit/config"
	"pursuit/engine"
	"pursuit/game"
	"pursuit/metrics"
)

// Summary aggregates the outcomes of a batch.
type Summary struct {
	Games     int
	Wins      int
	Losses    int
	Timeouts  int
	MeanScore float64
	Output    string // Directory holding the records, empty when not written
}

// Run plays cfg.Games games, seeding game i with cfg.Seed+i, and writes the records
// under cfg.Output when it is set.
func Run(cfg config.Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	l, err := game.LoadLayout(cfg.Layout)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %d games of %s on %s...", cfg.Games, cfg.Pursuer.Type, l.Name)

	totalScore := 0.0
	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		log.Info().Msgf("starting game %d of %d with seed %d...", i+1, cfg.Games, seed)

		gameMetric, moveMetrics, err := runGame(cfg, l, seed)
		if err != nil {
			return Summary{}, err
		}

		summary.Games++
		switch gameMetric.Outcome {
		case engine.Win:
			summary.Wins++
		case engine.Lose:
			summary.Losses++
		default:
			summary.Timeouts++
		}
		totalScore += gameMetric.Score

		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}
	summary.MeanScore = totalScore / float64(summary.Games)

	log.Info().Msgf("completed %d games: %d wins, %d losses, %d timeouts, mean score %.2f",
		summary.Games, summary.Wins, summary.Losses, summary.Timeouts, summary.MeanScore)

	if cfg.Output == "" {
		return summary, nil
	}
	dir, err := write(cfg.Output, gameRecords, moveRecords)
	if err != nil {
		return Summary{}, err
	}
	summary.Output = dir
	return summary, nil
}

func runGame(cfg config.Config, l *game.Layout, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	collector := metrics.NewCollector()
	pursuer, err := agent.New(cfg.Pursuer, seed, collector)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	state := game.NewGameState(l)
	adversaries := make([]agent.Agent, state.NumAgents()-1)
	for i := range adversaries {
		adversaries[i], err = agent.NewGhost(cfg.Ghosts, i+1, seed+uint64(i)+1)
		if err != nil {
			return metrics.GameMetric{}, nil, err
		}
	}

	e := engine.LocalEngine(state, pursuer, adversaries,
		engine.WithMaxMoves(cfg.MaxMoves),
		engine.WithMetrics(collector),
	)
	gameMetric, moveMetrics := e.Run()
	gameMetric.Agent = cfg.Pursuer.Type
	gameMetric.Seed = seed
	return gameMetric, moveMetrics, nil
}

func write(root string, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
