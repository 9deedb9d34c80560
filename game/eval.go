package game

import (
	"fmt"
	"math"
	"sort"
)

// CustomScore weighs the opponent's mobility more heavily than the player's
// own, favouring positions that trap the opponent.
var CustomScore = EvaluatorFunc(func(s State, p Player) float64 {
	if score, ok := terminalScore(s, p); ok {
		return score
	}
	own, opp := mobility(s, p)
	return own - 1.5*opp
})

// CustomScore2 combines the mobility difference with each player's distance
// from the centre of the board, since players near the edges have fewer
// jumps available.
var CustomScore2 = EvaluatorFunc(func(s State, p Player) float64 {
	if score, ok := terminalScore(s, p); ok {
		return score
	}
	own, opp := mobility(s, p)
	return 3*(own-opp) - centerDistance(s, p) + centerDistance(s, s.Opponent(p))
})

// CustomScore3 rewards the player's own mobility over the opponent's.
var CustomScore3 = EvaluatorFunc(func(s State, p Player) float64 {
	if score, ok := terminalScore(s, p); ok {
		return score
	}
	own, opp := mobility(s, p)
	return 2.5*own - opp
})

// OpenMoveScore is the number of moves available to the player.
var OpenMoveScore = EvaluatorFunc(func(s State, p Player) float64 {
	if score, ok := terminalScore(s, p); ok {
		return score
	}
	own, _ := mobility(s, p)
	return own
})

// ImprovedScore is the difference between both players' move counts.
var ImprovedScore = EvaluatorFunc(func(s State, p Player) float64 {
	if score, ok := terminalScore(s, p); ok {
		return score
	}
	own, opp := mobility(s, p)
	return own - opp
})

// CenterScore is the squared distance of the player from the centre.
var CenterScore = EvaluatorFunc(func(s State, p Player) float64 {
	if score, ok := terminalScore(s, p); ok {
		return score
	}
	loc := s.Location(p)
	if loc == NoMove {
		return 0
	}
	dy := float64(s.Height())/2 - float64(loc.Row)
	dx := float64(s.Width())/2 - float64(loc.Col)
	return dy*dy + dx*dx
})

// NullScore carries no information beyond win and loss.
var NullScore = EvaluatorFunc(func(s State, p Player) float64 {
	if score, ok := terminalScore(s, p); ok {
		return score
	}
	return 0
})

var evaluators = map[string]Evaluator{
	"custom":   CustomScore,
	"custom2":  CustomScore2,
	"custom3":  CustomScore3,
	"open":     OpenMoveScore,
	"improved": ImprovedScore,
	"center":   CenterScore,
	"null":     NullScore,
}

// EvaluatorByName looks up one of the built-in evaluators.
func EvaluatorByName(name string) (Evaluator, error) {
	e, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q (known: %v)", name, EvaluatorNames())
	}
	return e, nil
}

func EvaluatorNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func terminalScore(s State, p Player) (float64, bool) {
	if s.IsLoser(p) {
		return math.Inf(-1), true
	}
	if s.IsWinner(p) {
		return math.Inf(1), true
	}
	return 0, false
}

func mobility(s State, p Player) (own, opp float64) {
	return float64(len(s.PlayerMoves(p))), float64(len(s.PlayerMoves(s.Opponent(p))))
}

// centerDistance is the Manhattan distance of p from the centre, 0 if p has
// not been placed yet.
func centerDistance(s State, p Player) float64 {
	loc := s.Location(p)
	if loc == NoMove {
		return 0
	}
	return math.Abs(float64(s.Height())/2-float64(loc.Row)) + math.Abs(float64(s.Width())/2-float64(loc.Col))
}
