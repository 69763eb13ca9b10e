package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pursuit/agent"
	"pursuit/game"
	"pursuit/metrics"
)

type searchOptions struct {
	layout    string
	algorithm string
	heuristic string
	render    bool
	color     bool
}

func (a *App) newSearchCmd() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Plan a path from the pursuer to the nearest food",
		Long: `Plan a path from the pursuer to the nearest food of a layout and report
its length, cost and the number of expanded states.

Examples:
  pursuit search --layout tinyMaze --algorithm bfs
  pursuit search --layout openSearch --algorithm astar --heuristic manhattan --render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "tinyMaze", "Built-in layout name or layout file")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "bfs", "Search algorithm (dfs, bfs, ucs, astar)")
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", "null", "A* heuristic (null, manhattan, euclidean)")
	cmd.Flags().BoolVar(&opts.render, "render", false, "Draw the path over the layout")
	cmd.Flags().BoolVar(&opts.color, "color", true, "Color the rendered layout")

	return cmd
}

func (a *App) runSearch(opts *searchOptions) error {
	l, err := game.LoadLayout(opts.layout)
	if err != nil {
		return err
	}
	collector := metrics.NewCollector()
	plan, err := agent.NewPlanner(opts.algorithm, opts.heuristic, collector)
	if err != nil {
		return err
	}

	gs := game.NewGameState(l)
	collector.Start()
	path := plan(gs)
	metric := collector.Complete()
	cost := game.NewFoodProblem(gs).Cost(path)

	_, _ = fmt.Fprintf(a.stdout, "%s on %s: %d actions, cost %.0f, %d expanded, %d generated in %s\n",
		opts.algorithm, l.Name, len(path), cost, metric.Expanded, metric.Generated, metric.Duration)

	if len(path) > 0 {
		actions := make([]string, len(path))
		for i, action := range path {
			actions[i] = string(action)
		}
		_, _ = fmt.Fprintln(a.stdout, strings.Join(actions, " "))
	} else if !gs.HasFood(l.Pursuer) {
		_, _ = fmt.Fprintln(a.stdout, "no food reachable")
	}

	if opts.render {
		_, _ = fmt.Fprint(a.stdout, render(l, path, opts.color))
	}
	return nil
}
