package metrics

import (
	"time"

	"nogo/game"
)

type SearchMetric struct {
	Legal    int  // Legal moves at the root
	FastPath bool // Whether the move was drawn without searching
	Budget   int
	Nodes    int // Arena size including the root
	Rollouts int
	Plies    int // Plies played over all rollouts
	Duration time.Duration
}

type MoveMetric struct {
	Step   int
	Player game.Piece
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Piece
	Winner         game.Piece
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(legal int)
	SetFastPath()
	SetBudget(budget int)
	SetNodes(nodes int)
	AddRollout(plies int)
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(legal int) {
	m.startTime = time.Now()
	m.metric = SearchMetric{Legal: legal}
}

func (m *collector) SetFastPath() {
	m.metric.FastPath = true
}

func (m *collector) SetBudget(budget int) {
	m.metric.Budget = budget
}

func (m *collector) SetNodes(nodes int) {
	m.metric.Nodes = nodes
}

func (m *collector) AddRollout(plies int) {
	m.metric.Rollouts++
	m.metric.Plies += plies
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(legal int)        {}
func (m *dummyCollector) SetFastPath()           {}
func (m *dummyCollector) SetBudget(budget int)   {}
func (m *dummyCollector) SetNodes(nodes int)     {}
func (m *dummyCollector) AddRollout(plies int)   {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
