package cli

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"pursuit/game"
)

// render draws the layout with the cells visited by path marked '*'.
func render(l *game.Layout, path []game.Action, color bool) string {
	au := aurora.NewAurora(color)

	visited := game.NewGrid(l.Width(), l.Height())
	position := l.Pursuer
	for _, action := range path {
		position = position.Move(action)
		visited.Set(position, true)
	}
	ghosts := map[game.Position]bool{}
	for _, g := range l.Ghosts {
		ghosts[g] = true
	}
	capsules := map[game.Position]bool{}
	for _, c := range l.Capsules {
		capsules[c] = true
	}

	var b strings.Builder
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			p := game.Position{X: x, Y: y}
			switch {
			case l.IsWall(p):
				b.WriteString(au.Blue("%").String())
			case p == l.Pursuer:
				b.WriteString(au.Yellow("P").String())
			case ghosts[p]:
				b.WriteString(au.Red("G").String())
			case visited.Get(p):
				b.WriteString(au.Green("*").String())
			case l.Food.Get(p):
				b.WriteString(".")
			case capsules[p]:
				b.WriteString("o")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
