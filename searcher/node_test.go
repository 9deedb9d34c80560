package searcher

import (
	"math"

	"isolation/game"
)

// mockNode is a hand-built game tree. Moves are numbered by child index.
type mockNode struct {
	score    float64
	children []*mockNode
}

func leaf(score float64) *mockNode {
	return &mockNode{score: score}
}

func branch(children ...*mockNode) *mockNode {
	return &mockNode{children: children}
}

func leaves(scores ...float64) *mockNode {
	n := &mockNode{}
	for _, s := range scores {
		n.children = append(n.children, leaf(s))
	}
	return n
}

type mockState struct {
	node   *mockNode
	active game.Player
}

func newMockState(root *mockNode) mockState {
	return mockState{node: root, active: game.Player1}
}

func mockMove(i int) game.Move {
	return game.Move{Row: 0, Col: i}
}

func (m mockState) ActivePlayer() game.Player   { return m.active }
func (m mockState) InactivePlayer() game.Player { return m.Opponent(m.active) }

func (m mockState) Opponent(p game.Player) game.Player {
	if p == game.Player1 {
		return game.Player2
	}
	return game.Player1
}

func (m mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.node.children))
	for i := range m.node.children {
		moves[i] = mockMove(i)
	}
	return moves
}

func (m mockState) PlayerMoves(p game.Player) []game.Move {
	if p == m.active {
		return m.LegalMoves()
	}
	return nil
}

func (m mockState) Forecast(move game.Move) game.State {
	return mockState{node: m.node.children[move.Col], active: m.Opponent(m.active)}
}

func (m mockState) Utility(p game.Player) float64 {
	switch {
	case m.IsLoser(p):
		return math.Inf(-1)
	case m.IsWinner(p):
		return math.Inf(1)
	default:
		return 0
	}
}

func (m mockState) IsWinner(p game.Player) bool {
	return p != m.active && len(m.node.children) == 0
}

func (m mockState) IsLoser(p game.Player) bool {
	return p == m.active && len(m.node.children) == 0
}

func (m mockState) Location(game.Player) game.Move { return game.NoMove }
func (m mockState) Height() int                    { return 1 }
func (m mockState) Width() int                     { return len(m.node.children) }

// mockEvaluator returns the node's score from the root player's side and
// counts how often it was asked.
type mockEvaluator struct {
	calls int
}

func (e *mockEvaluator) Score(s game.State, p game.Player) float64 {
	e.calls++
	return s.(mockState).node.score
}

// plenty never runs out of time.
func plenty() float64 {
	return 1000
}

// expired has no time left at all.
func expired() float64 {
	return 0
}

// countingClock has time for the first calls checks and none afterwards.
func countingClock(calls int) TimeLeft {
	n := 0
	return func() float64 {
		n++
		if n > calls {
			return 0
		}
		return 1000
	}
}

func newTestSearch(state game.State, evaluator game.Evaluator, timeLeft TimeLeft) *search {
	c := newConfig([]Option{WithEvaluator(evaluator), WithMetrics()})
	return c.newSearch(state, timeLeft)
}

// aimaTree is the textbook two-ply tree with minimax value 3 at the first move.
func aimaTree() *mockNode {
	return branch(
		leaves(3, 12, 8),
		leaves(2, 4, 6),
		leaves(14, 5, 2),
	)
}
