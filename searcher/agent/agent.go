package agent

import (
	"isolation/game"
	"isolation/searcher"
)

type Agent interface {
	// GetMove returns a legal move, or game.NoMove when none exists, before
	// timeLeft reaches zero
	GetMove(state game.State, timeLeft searcher.TimeLeft) game.Move
}

var (
	_ Agent = (*searcher.MinimaxPlayer)(nil)
	_ Agent = (*searcher.AlphaBetaPlayer)(nil)
)
