package engine

import (
	"nogo/experiments/metrics"
	"nogo/game"
)

// MaxMoves caps a game; every move fills a point so NoGo never gets there.
const MaxMoves = game.Cells

type Engine interface {
	// Run plays a game till a side has no legal move or an agent forfeits
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
