package searcher

import (
	"testing"

	"isolation/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// midGameBoards plays a few random plies on small boards.
func midGameBoards(t *testing.T) []*game.Board {
	t.Helper()
	boards := []*game.Board{}
	for seed := uint64(1); seed <= 6; seed++ {
		r := rand.New(rand.NewSource(seed))
		board := game.NewBoard(5, 5)
		for ply := 0; ply < 2+int(seed); ply++ {
			moves := board.LegalMoves()
			if len(moves) == 0 {
				break
			}
			require.NoError(t, board.Apply(moves[r.Intn(len(moves))]))
		}
		if len(board.LegalMoves()) > 0 {
			boards = append(boards, board)
		}
	}
	require.NotEmpty(t, boards)
	return boards
}

// stuckBoard leaves player1 in the centre of a 3x3 board, where no jump fits.
func stuckBoard(t *testing.T) *game.Board {
	t.Helper()
	board := game.NewBoard(3, 3)
	require.NoError(t, board.Apply(game.Move{Row: 1, Col: 1}))
	require.NoError(t, board.Apply(game.Move{Row: 0, Col: 0}))
	require.Empty(t, board.LegalMoves())
	return board
}

// smallBoards are 3x3 positions with at most two blocked cells besides the
// players.
func smallBoards(t *testing.T) []*game.Board {
	t.Helper()
	empty := game.NewBoard(3, 3)

	placed := game.NewBoard(3, 3)
	require.NoError(t, placed.Apply(game.Move{Row: 0, Col: 0}))
	require.NoError(t, placed.Apply(game.Move{Row: 2, Col: 2}))

	moved := placed.Copy()
	require.NoError(t, moved.Apply(game.Move{Row: 1, Col: 2}))
	require.NoError(t, moved.Apply(game.Move{Row: 1, Col: 0}))

	return []*game.Board{empty, placed, moved}
}
