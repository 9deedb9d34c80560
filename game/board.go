package game

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

const (
	DefaultHeight = 7
	DefaultWidth  = 7
)

// Knight-style jumps every player moves with
var directions = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board is an Isolation game state. Every visited cell stays blocked for the
// rest of the game; a player that has not been placed yet may move to any
// blank cell.
type Board struct {
	height    int
	width     int
	blocked   []bool
	locations [3]Move // Indexed by Player
	active    Player
	moveCount int
}

// NewBoard returns an empty height x width board with Player1 to move.
func NewBoard(height, width int) *Board {
	if height <= 0 || width <= 0 {
		panic("board dimensions must be positive")
	}
	return &Board{
		height:    height,
		width:     width,
		blocked:   make([]bool, height*width),
		locations: [3]Move{NoMove, NoMove, NoMove},
		active:    Player1,
	}
}

func (b *Board) Copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)
	return &Board{
		height:    b.height,
		width:     b.width,
		blocked:   blocked,
		locations: b.locations,
		active:    b.active,
		moveCount: b.moveCount,
	}
}

func (b *Board) Height() int          { return b.height }
func (b *Board) Width() int           { return b.width }
func (b *Board) MoveCount() int       { return b.moveCount }
func (b *Board) ActivePlayer() Player { return b.active }

func (b *Board) InactivePlayer() Player {
	return b.Opponent(b.active)
}

func (b *Board) Opponent(p Player) Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		panic(fmt.Sprintf("unknown player %d", p))
	}
}

// Location returns NoMove for a player that has not been placed yet.
func (b *Board) Location(p Player) Move {
	return b.locations[p]
}

// IsBlank reports whether m is on the board and not yet visited.
func (b *Board) IsBlank(m Move) bool {
	return b.inBounds(m) && !b.blocked[m.Row*b.width+m.Col]
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.height && m.Col >= 0 && m.Col < b.width
}

// BlankSpaces lists unvisited cells in column-major order.
func (b *Board) BlankSpaces() []Move {
	moves := make([]Move, 0, len(b.blocked))
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height; row++ {
			if m := (Move{Row: row, Col: col}); b.IsBlank(m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

func (b *Board) LegalMoves() []Move {
	return b.PlayerMoves(b.active)
}

func (b *Board) PlayerMoves(p Player) []Move {
	loc := b.locations[p]
	if loc == NoMove {
		return b.BlankSpaces()
	}

	moves := make([]Move, 0, len(directions))
	for _, d := range directions {
		m := Move{Row: loc.Row + d[0], Col: loc.Col + d[1]}
		if b.IsBlank(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// Forecast returns the successor state after the active player plays m.
func (b *Board) Forecast(m Move) State {
	next := b.Copy()
	next.play(m)
	return next
}

// Apply plays m for the active player in place after checking it is legal.
func (b *Board) Apply(m Move) error {
	if !Contains(b.LegalMoves(), m) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, b.active)
	}
	b.play(m)
	return nil
}

func (b *Board) play(m Move) {
	b.blocked[m.Row*b.width+m.Col] = true
	b.locations[b.active] = m
	b.active = b.Opponent(b.active)
	b.moveCount++
}

func (b *Board) IsLoser(p Player) bool {
	return p == b.active && len(b.LegalMoves()) == 0
}

func (b *Board) IsWinner(p Player) bool {
	return p == b.InactivePlayer() && len(b.LegalMoves()) == 0
}

func (b *Board) Utility(p Player) float64 {
	switch {
	case b.IsWinner(p):
		return math.Inf(1)
	case b.IsLoser(p):
		return math.Inf(-1)
	default:
		return 0
	}
}

// String draws the board with 1 and 2 for the players and - for visited cells.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		sb.WriteString("|")
		for col := 0; col < b.width; col++ {
			m := Move{Row: row, Col: col}
			switch {
			case m == b.locations[Player1]:
				sb.WriteString(" 1 |")
			case m == b.locations[Player2]:
				sb.WriteString(" 2 |")
			case b.blocked[row*b.width+col]:
				sb.WriteString(" - |")
			default:
				sb.WriteString("   |")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

type boardJSON struct {
	Height    int    `json:"height"`
	Width     int    `json:"width"`
	Blocked   []Move `json:"blocked"`
	Player1   *Move  `json:"player1,omitempty"`
	Player2   *Move  `json:"player2,omitempty"`
	Active    Player `json:"active"`
	MoveCount int    `json:"move_count"`
}

func (b *Board) MarshalJSON() ([]byte, error) {
	wire := boardJSON{
		Height:    b.height,
		Width:     b.width,
		Blocked:   []Move{},
		Active:    b.active,
		MoveCount: b.moveCount,
	}
	for i, blocked := range b.blocked {
		if blocked {
			wire.Blocked = append(wire.Blocked, Move{Row: i / b.width, Col: i % b.width})
		}
	}
	if loc := b.locations[Player1]; loc != NoMove {
		wire.Player1 = &loc
	}
	if loc := b.locations[Player2]; loc != NoMove {
		wire.Player2 = &loc
	}
	return json.Marshal(wire)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var wire boardJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Height <= 0 || wire.Width <= 0 {
		return fmt.Errorf("invalid board dimensions %dx%d", wire.Height, wire.Width)
	}
	if wire.Active != Player1 && wire.Active != Player2 {
		return fmt.Errorf("invalid active player %d", wire.Active)
	}

	*b = *NewBoard(wire.Height, wire.Width)
	b.active = wire.Active
	b.moveCount = wire.MoveCount
	for _, m := range wire.Blocked {
		if !b.inBounds(m) {
			return fmt.Errorf("blocked cell %s is off the board", m)
		}
		b.blocked[m.Row*b.width+m.Col] = true
	}
	for p, loc := range map[Player]*Move{Player1: wire.Player1, Player2: wire.Player2} {
		if loc == nil {
			continue
		}
		if !b.inBounds(*loc) {
			return fmt.Errorf("%s location %s is off the board", p, *loc)
		}
		b.locations[p] = *loc
		b.blocked[loc.Row*b.width+loc.Col] = true
	}
	return nil
}
