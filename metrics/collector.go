package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes the work done by a single search call.
type SearchMetric struct {
	Duration    time.Duration
	Expanded    int // States whose successors were generated
	Generated   int // Successors considered for the frontier or recursion
	Evaluations int // Calls to an evaluation function at leaves
}

type MoveMetric struct {
	Step   int
	Agent  int    // Agent index
	Action string // Chosen action token
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Agent      string // Pursuer agent type
	Seed       uint64
	Outcome    string // "win", "lose" or "timeout"
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddExpansion()
	AddGenerated(n int)
	AddEvaluation()
	Complete() SearchMetric
}

type collector struct {
	startTime   time.Time
	expanded    atomic.Int64
	generated   atomic.Int64
	evaluations atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters and marks the beginning of a search.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.expanded.Store(0)
	m.generated.Store(0)
	m.evaluations.Store(0)
}

func (m *collector) AddExpansion() {
	m.expanded.Add(1)
}

func (m *collector) AddGenerated(n int) {
	m.generated.Add(int64(n))
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:    time.Since(m.startTime),
		Expanded:    int(m.expanded.Load()),
		Generated:   int(m.generated.Load()),
		Evaluations: int(m.evaluations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddExpansion()          {}
func (m *dummyCollector) AddGenerated(n int)     {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
