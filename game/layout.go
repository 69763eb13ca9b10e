package game

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed layouts/*.lay
var builtinLayouts embed.FS

var ErrInvalidLayout = errors.New("invalid layout")

// Grid is a fixed-size boolean board indexed by Position.
type Grid struct {
	width  int
	height int
	cells  []bool
}

func NewGrid(width, height int) Grid {
	return Grid{width: width, height: height, cells: make([]bool, width*height)}
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

func (g Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g Grid) Get(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.cells[p.Y*g.width+p.X]
}

// Set mutates the grid in place; callers copy first when the grid is shared.
func (g Grid) Set(p Position, value bool) {
	g.cells[p.Y*g.width+p.X] = value
}

func (g Grid) Copy() Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}

func (g Grid) Count() int {
	count := 0
	for _, c := range g.cells {
		if c {
			count++
		}
	}
	return count
}

// List returns the set cells in row-major order.
func (g Grid) List() []Position {
	list := []Position{}
	for i, c := range g.cells {
		if c {
			list = append(list, Position{X: i % g.width, Y: i / g.width})
		}
	}
	return list
}

// Layout is the static part of a world: walls and starting placements.
type Layout struct {
	Name     string
	Walls    Grid
	Food     Grid
	Capsules []Position
	Pursuer  Position
	Ghosts   []Position
}

func (l *Layout) Width() int  { return l.Walls.width }
func (l *Layout) Height() int { return l.Walls.height }

func (l *Layout) IsWall(p Position) bool {
	// Out of bounds counts as wall
	return !l.Walls.InBounds(p) || l.Walls.Get(p)
}

// ParseLayout reads a text grid: '%' wall, '.' food, 'o' capsule,
// 'P' pursuer, 'G' ghost, ' ' empty.
func ParseLayout(name, text string) (*Layout, error) {
	lines := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidLayout, name)
	}

	width, height := len(lines[0]), len(lines)
	l := &Layout{
		Name:  name,
		Walls: NewGrid(width, height),
		Food:  NewGrid(width, height),
	}

	pursuers := 0
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: %s row %d has width %d, want %d", ErrInvalidLayout, name, y, len(line), width)
		}
		for x, c := range line {
			p := Position{X: x, Y: y}
			switch c {
			case '%':
				l.Walls.Set(p, true)
			case '.':
				l.Food.Set(p, true)
			case 'o':
				l.Capsules = append(l.Capsules, p)
			case 'P':
				l.Pursuer = p
				pursuers++
			case 'G':
				l.Ghosts = append(l.Ghosts, p)
			case ' ':
			default:
				return nil, fmt.Errorf("%w: %s has unknown character %q at %d,%d", ErrInvalidLayout, name, c, x, y)
			}
		}
	}
	if pursuers != 1 {
		return nil, fmt.Errorf("%w: %s has %d pursuers, want 1", ErrInvalidLayout, name, pursuers)
	}

	return l, nil
}

// LoadLayout resolves name against the built-in layouts first, then the file system.
func LoadLayout(name string) (*Layout, error) {
	data, err := builtinLayouts.ReadFile(path.Join("layouts", name+".lay"))
	if errors.Is(err, fs.ErrNotExist) {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", name, err)
	}
	return ParseLayout(strings.TrimSuffix(path.Base(name), ".lay"), string(data))
}

// LayoutNames lists the built-in layouts.
func LayoutNames() []string {
	entries, err := builtinLayouts.ReadDir("layouts")
	if err != nil {
		panic(fmt.Sprintf("built-in layouts unreadable: %v", err))
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".lay"))
	}
	sort.Strings(names)
	return names
}
