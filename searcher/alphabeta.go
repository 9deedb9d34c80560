package searcher

import (
	"math"

	"isolation/game"
)

// alphaBeta is minimax with alpha-beta pruning. The root raises alpha after
// every child but never cuts off, because it has to see every move to pick
// the best one.
func (s *search) alphaBeta(state game.State, depth int, alpha, beta float64) (game.Move, float64, error) {
	if err := s.checkClock(); err != nil {
		return game.NoMove, 0, err
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, state.Utility(s.player), nil
	}

	bestMove, bestScore := moves[0], math.Inf(-1)
	for _, move := range moves {
		score, err := s.alphaBetaMinValue(state.Forecast(move), depth-1, alpha, beta)
		if err != nil {
			return game.NoMove, 0, err
		}
		if score > bestScore {
			bestMove, bestScore = move, score
		}
		alpha = math.Max(alpha, bestScore)
	}
	return bestMove, bestScore, nil
}

func (s *search) alphaBetaMaxValue(state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := s.checkClock(); err != nil {
		return 0, err
	}
	if depth == 0 {
		return s.score(state), nil
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return state.Utility(s.player), nil
	}

	best := math.Inf(-1)
	for _, move := range moves {
		score, err := s.alphaBetaMinValue(state.Forecast(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = math.Max(best, score)
		if best >= beta { // Beta cut-off
			return best, nil
		}
		alpha = math.Max(alpha, best)
	}
	return best, nil
}

func (s *search) alphaBetaMinValue(state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := s.checkClock(); err != nil {
		return 0, err
	}
	if depth == 0 {
		return s.score(state), nil
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return state.Utility(s.player), nil
	}

	best := math.Inf(1)
	for _, move := range moves {
		score, err := s.alphaBetaMaxValue(state.Forecast(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = math.Min(best, score)
		if best <= alpha { // Alpha cut-off
			return best, nil
		}
		beta = math.Min(beta, best)
	}
	return best, nil
}
