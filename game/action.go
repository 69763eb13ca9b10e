package game

import "math"

// Action is a movement token.
type Action string

const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	Stop  Action = "Stop"
)

// NoAction is returned when an agent has nothing legal to play.
const NoAction Action = ""

// Moves lists the four movement directions in the order successors are generated.
var Moves = []Action{North, South, East, West}

var vectors = map[Action]Position{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
	Stop:  {X: 0, Y: 0},
}

var reverses = map[Action]Action{
	North: South,
	South: North,
	East:  West,
	West:  East,
	Stop:  Stop,
}

// Reverse returns the opposite direction.
func (a Action) Reverse() Action {
	return reverses[a]
}

// Position is a grid cell; Y grows downwards, matching the layout text.
type Position struct {
	X int
	Y int
}

// Move returns the position one step away in direction a.
func (p Position) Move(a Action) Position {
	v := vectors[a]
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func Euclidean(a, b Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
