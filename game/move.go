package game

import "fmt"

// Move is a board coordinate a player jumps to.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned when no legal move exists.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	if m == NoMove {
		return "(-1, -1)"
	}
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Contains reports whether move is one of moves.
func Contains(moves []Move, move Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
