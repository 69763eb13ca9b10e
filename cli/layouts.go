package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pursuit/game"
)

func (a *App) newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the built-in layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range game.LayoutNames() {
				l, err := game.LoadLayout(name)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(a.stdout, "%-16s %3dx%-3d food=%d ghosts=%d\n",
					name, l.Width(), l.Height(), l.Food.Count(), len(l.Ghosts))
			}
			return nil
		},
	}
}
