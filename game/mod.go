package game

import "errors"

// Player identifies one of the two sides of an Isolation game.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "none"
	}
}

var ErrIllegalMove = errors.New("illegal move")

// State should be immutable - Forecast always returns a new copy and never
// changes the receiver.
type State interface {
	ActivePlayer() Player
	InactivePlayer() Player
	Opponent(p Player) Player
	// LegalMoves returns the moves available to the active player
	LegalMoves() []Move
	PlayerMoves(p Player) []Move
	Forecast(m Move) State
	// Utility is only meaningful once the active player has no legal moves
	Utility(p Player) float64
	IsWinner(p Player) bool
	IsLoser(p Player) bool
	Location(p Player) Move
	Height() int
	Width() int
}

// Evaluator scores a state from the point of view of player p. Higher is
// better for p. Scores must stay strictly inside the terminal utilities.
type Evaluator interface {
	Score(s State, p Player) float64
}

// EvaluatorFunc lets a plain function serve as an Evaluator.
type EvaluatorFunc func(s State, p Player) float64

func (f EvaluatorFunc) Score(s State, p Player) float64 {
	return f(s, p)
}
