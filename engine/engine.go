package engine

import (
	"isolation/experiments/metrics"
	"isolation/game"
)

// Ways a game can end
const (
	ReasonIsolated    = "isolated"
	ReasonTimeout     = "timeout"
	ReasonIllegalMove = "illegal_move"
)

type Engine interface {
	// Run plays a game to the end and returns the winner
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
