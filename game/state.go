package game

import "fmt"

// Scoring and timing rules of the pursuit world.
const (
	TimePenalty = 1.0   // Per pursuer move
	FoodScore   = 10.0  // Per food eaten
	WinScore    = 500.0 // Eating the last food
	LoseScore   = 500.0 // Caught by an active ghost
	GhostScore  = 200.0 // Eating a scared ghost
	ScaredTime  = 40    // Ghost moves a capsule keeps ghosts scared
)

// Ghost is an adversary's dynamic state.
type Ghost struct {
	Position    Position
	Start       Position
	ScaredTimer int // Remaining scared moves, 0 when active
}

func (g Ghost) Scared() bool {
	return g.ScaredTimer > 0
}

// GameState represents the dynamic state of the game at any point.
// Successor generation copies what changes and shares the static layout.
type GameState struct {
	layout   *Layout
	pursuer  Position
	ghosts   []Ghost
	food     Grid
	capsules []Position
	score    float64
	win      bool
	lose     bool
}

// NewGameState places every agent at its layout start.
func NewGameState(l *Layout) *GameState {
	ghosts := make([]Ghost, len(l.Ghosts))
	for i, p := range l.Ghosts {
		ghosts[i] = Ghost{Position: p, Start: p}
	}
	capsules := make([]Position, len(l.Capsules))
	copy(capsules, l.Capsules)

	return &GameState{
		layout:   l,
		pursuer:  l.Pursuer,
		ghosts:   ghosts,
		food:     l.Food.Copy(),
		capsules: capsules,
	}
}

func (gs *GameState) Layout() *Layout      { return gs.layout }
func (gs *GameState) Pursuer() Position    { return gs.pursuer }
func (gs *GameState) Food() Grid           { return gs.food }
func (gs *GameState) Capsules() []Position { return gs.capsules }
func (gs *GameState) Score() float64       { return gs.score }
func (gs *GameState) IsWin() bool          { return gs.win }
func (gs *GameState) IsLose() bool         { return gs.lose }
func (gs *GameState) NumAgents() int       { return len(gs.ghosts) + 1 }

// Ghosts returns a copy of the adversaries' states.
func (gs *GameState) Ghosts() []Ghost {
	ghosts := make([]Ghost, len(gs.ghosts))
	copy(ghosts, gs.ghosts)
	return ghosts
}

// AgentPosition returns the position of agent (0 is the pursuer).
func (gs *GameState) AgentPosition(agent int) Position {
	if agent == 0 {
		return gs.pursuer
	}
	return gs.ghosts[agent-1].Position
}

func (gs *GameState) HasFood(p Position) bool {
	return gs.food.Get(p)
}

func (gs *GameState) HasCapsule(p Position) bool {
	for _, c := range gs.capsules {
		if c == p {
			return true
		}
	}
	return false
}

// LegalActions lists Stop then every open direction for the pursuer.
// Ghosts cannot stop unless boxed in.
func (gs *GameState) LegalActions(agent int) []Action {
	if gs.win || gs.lose {
		return nil
	}
	if agent < 0 || agent >= gs.NumAgents() {
		panic(fmt.Sprintf("agent index %d out of range", agent))
	}

	from := gs.AgentPosition(agent)
	actions := []Action{}
	if agent == 0 {
		actions = append(actions, Stop)
	}
	for _, move := range Moves {
		if !gs.layout.IsWall(from.Move(move)) {
			actions = append(actions, move)
		}
	}
	if len(actions) == 0 {
		actions = append(actions, Stop)
	}
	return actions
}

// GenerateSuccessor returns the state after agent plays action.
func (gs *GameState) GenerateSuccessor(agent int, action Action) State {
	return gs.Successor(agent, action)
}

// Successor is GenerateSuccessor with the concrete return type.
func (gs *GameState) Successor(agent int, action Action) *GameState {
	if gs.win || gs.lose {
		panic("cannot generate a successor of a terminal state")
	}
	if !contains(gs.LegalActions(agent), action) {
		panic(fmt.Sprintf("illegal action %q for agent %d", action, agent))
	}

	next := gs.copy()
	if agent == 0 {
		next.movePursuer(action)
	} else {
		next.moveGhost(agent-1, action)
	}
	return next
}

func (gs *GameState) copy() *GameState {
	next := *gs
	next.ghosts = gs.Ghosts()
	// food and capsules are copied on write
	return &next
}

func (gs *GameState) movePursuer(action Action) {
	gs.score -= TimePenalty
	gs.pursuer = gs.pursuer.Move(action)

	if gs.food.Get(gs.pursuer) {
		gs.food = gs.food.Copy()
		gs.food.Set(gs.pursuer, false)
		gs.score += FoodScore
		if gs.food.Count() == 0 {
			gs.score += WinScore
			gs.win = true
		}
	}

	if gs.HasCapsule(gs.pursuer) {
		capsules := make([]Position, 0, len(gs.capsules)-1)
		for _, c := range gs.capsules {
			if c != gs.pursuer {
				capsules = append(capsules, c)
			}
		}
		gs.capsules = capsules
		for i := range gs.ghosts {
			gs.ghosts[i].ScaredTimer = ScaredTime
		}
	}

	for i := range gs.ghosts {
		gs.checkCollision(i)
	}
}

func (gs *GameState) moveGhost(index int, action Action) {
	ghost := &gs.ghosts[index]
	ghost.Position = ghost.Position.Move(action)
	if ghost.ScaredTimer > 0 {
		ghost.ScaredTimer--
	}
	gs.checkCollision(index)
}

func (gs *GameState) checkCollision(index int) {
	if gs.win || gs.lose {
		return
	}
	ghost := &gs.ghosts[index]
	if ghost.Position != gs.pursuer {
		return
	}
	if ghost.Scared() {
		gs.score += GhostScore
		ghost.Position = ghost.Start
		ghost.ScaredTimer = 0
		return
	}
	gs.score -= LoseScore
	gs.lose = true
}

func contains(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
