package agent

import (
	"math"

	"isolation/game"
	"isolation/searcher"
)

type greedyAgent struct {
	evaluator game.Evaluator
}

// NewGreedyAgent returns an agent that plays the move whose resulting state
// scores best one ply ahead.
func NewGreedyAgent(evaluator game.Evaluator) Agent {
	if evaluator == nil {
		evaluator = searcher.DefaultEvaluator
	}
	return greedyAgent{evaluator: evaluator}
}

func (a greedyAgent) GetMove(state game.State, _ searcher.TimeLeft) game.Move {
	player := state.ActivePlayer()
	bestMove := game.NoMove
	bestScore := math.Inf(-1)
	for _, move := range state.LegalMoves() {
		score := a.evaluator.Score(state.Forecast(move), player)
		if bestMove == game.NoMove || score > bestScore {
			bestMove, bestScore = move, score
		}
	}
	return bestMove
}
