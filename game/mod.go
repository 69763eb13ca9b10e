package game

// State is a configuration of the world as seen by the adversarial searcher.
// State should be immutable - GenerateSuccessor always returns a new state.
// Agent 0 is the pursuer (maximizer); agents 1..NumAgents()-1 are adversaries.
type State interface {
	// LegalActions returns the ordered actions available to agent, empty when the game is over
	LegalActions(agent int) []Action
	GenerateSuccessor(agent int, action Action) State
	NumAgents() int
	IsWin() bool
	IsLose() bool
	Score() float64
}

// Evaluate scores a state from agent 0's perspective, higher is better.
type Evaluate func(State) float64

// ActionEvaluate scores taking action from state, for one-step lookahead agents.
type ActionEvaluate func(State, Action) float64
