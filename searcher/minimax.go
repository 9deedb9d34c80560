package searcher

import (
	"math"

	"isolation/game"
)

// minimax returns the root move with the strictly greatest minimax value.
// The first move seen wins ties.
func (s *search) minimax(state game.State, depth int) (game.Move, float64, error) {
	if err := s.checkClock(); err != nil {
		return game.NoMove, 0, err
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, state.Utility(s.player), nil
	}

	bestMove, bestScore := moves[0], math.Inf(-1)
	for _, move := range moves {
		score, err := s.minValue(state.Forecast(move), depth-1)
		if err != nil {
			return game.NoMove, 0, err
		}
		if score > bestScore {
			bestMove, bestScore = move, score
		}
	}
	return bestMove, bestScore, nil
}

func (s *search) maxValue(state game.State, depth int) (float64, error) {
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
		score, err := s.minValue(state.Forecast(move), depth-1)
		if err != nil {
			return 0, err
		}
		best = math.Max(best, score)
	}
	return best, nil
}

func (s *search) minValue(state game.State, depth int) (float64, error) {
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
		score, err := s.maxValue(state.Forecast(move), depth-1)
		if err != nil {
			return 0, err
		}
		best = math.Min(best, score)
	}
	return best, nil
}
