package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pursuit/config"
	"pursuit/experiments"
)

type playOptions struct {
	configPath string
	layout     string
	agent      string
	depth      int
	evaluation string
	ghosts     string
	games      int
	seed       uint64
	maxMoves   int
	output     string
}

func (a *App) newPlayCmd() *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play games of a pursuer against ghosts",
		Long: `Play a batch of games and report wins, losses and the mean score.
Flags override the configuration file, which overrides the defaults.

Examples:
  pursuit play --agent alphabeta --depth 3 --layout smallClassic --games 10
  pursuit play -c experiment.yaml --output records`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			return a.runPlay(cfg)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", defaults.Layout, "Built-in layout name or layout file")
	cmd.Flags().StringVar(&opts.agent, "agent", defaults.Pursuer.Type, "Pursuer (reflex, minimax, alphabeta, expectimax, search)")
	cmd.Flags().IntVar(&opts.depth, "depth", defaults.Pursuer.Depth, "Search depth in rounds")
	cmd.Flags().StringVar(&opts.evaluation, "evaluation", defaults.Pursuer.Evaluation, "Evaluation function (score, better)")
	cmd.Flags().StringVar(&opts.ghosts, "ghosts", defaults.Ghosts, "Ghost agent (random, directional)")
	cmd.Flags().IntVarP(&opts.games, "games", "n", defaults.Games, "Number of games")
	cmd.Flags().Uint64Var(&opts.seed, "seed", defaults.Seed, "Seed of the first game")
	cmd.Flags().IntVar(&opts.maxMoves, "max-moves", defaults.MaxMoves, "Pursuer moves before a game times out")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Directory to write game and move records to")

	return cmd
}

// config layers the changed flags over the file (or the defaults) and validates the result.
func (opts *playOptions) config(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("layout") {
		cfg.Layout = opts.layout
	}
	if flags.Changed("agent") {
		cfg.Pursuer.Type = opts.agent
	}
	if flags.Changed("depth") {
		cfg.Pursuer.Depth = opts.depth
	}
	if flags.Changed("evaluation") {
		cfg.Pursuer.Evaluation = opts.evaluation
	}
	if flags.Changed("ghosts") {
		cfg.Ghosts = opts.ghosts
	}
	if flags.Changed("games") {
		cfg.Games = opts.games
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("max-moves") {
		cfg.MaxMoves = opts.maxMoves
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	return cfg, cfg.Validate()
}

func (a *App) runPlay(cfg config.Config) error {
	summary, err := experiments.Run(cfg)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.stdout, "%s on %s: %d games, %d wins, %d losses, %d timeouts, mean score %.2f\n",
		cfg.Pursuer.Type, cfg.Layout, summary.Games, summary.Wins, summary.Losses, summary.Timeouts, summary.MeanScore)
	if summary.Output != "" {
		_, _ = fmt.Fprintf(a.stdout, "records written to %s\n", summary.Output)
	}
	return nil
}
