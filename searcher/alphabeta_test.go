package searcher

import (
	"math"
	"testing"

	"isolation/game"

	"github.com/stretchr/testify/require"
)

func TestAlphaBeta(t *testing.T) {
	t.Run("pruning subtrees that cannot change the decision", func(t *testing.T) {
		state := newMockState(aimaTree())
		s := newTestSearch(state, &mockEvaluator{}, plenty)

		move, score, err := s.alphaBeta(state, 2, math.Inf(-1), math.Inf(1))

		require.NoError(t, err)
		require.Equal(t, mockMove(0), move)
		require.Equal(t, 3.0, score)
		// The second subtree is cut after its first leaf
		require.Equal(t, int64(11), s.metrics.Complete().Nodes)
	})

	t.Run("visiting no more nodes than minimax", func(t *testing.T) {
		trees := []*mockNode{
			aimaTree(),
			branch(leaves(1, 2, 3), leaves(4, 5, 6), leaves(7, 8, 9)),
			branch(leaves(9, 8, 7), leaves(6, 5, 4), leaves(3, 2, 1)),
			branch(branch(leaves(1, 4), leaves(2, 6)), branch(leaves(0, 3), leaves(5, 7))),
		}
		for i, tree := range trees {
			state := newMockState(tree)
			depth := 2
			if i == 3 {
				depth = 3
			}
			ms := newTestSearch(state, &mockEvaluator{}, plenty)
			ab := newTestSearch(state, &mockEvaluator{}, plenty)

			mmMove, mmScore, err := ms.minimax(state, depth)
			require.NoError(t, err)
			abMove, abScore, err := ab.alphaBeta(state, depth, math.Inf(-1), math.Inf(1))
			require.NoError(t, err)

			require.Equal(t, mmMove, abMove, "tree %d", i)
			require.Equal(t, mmScore, abScore, "tree %d", i)
			require.LessOrEqual(t, ab.metrics.Complete().Nodes, ms.metrics.Complete().Nodes, "tree %d", i)
		}
	})

	t.Run("cutting off at a maximizing layer", func(t *testing.T) {
		// With beta 2 the max node stops after its first child scores 5
		state := newMockState(leaves(5, 9, 1))
		s := newTestSearch(state, &mockEvaluator{}, plenty)

		score, err := s.alphaBetaMaxValue(state, 1, math.Inf(-1), 2)

		require.NoError(t, err)
		require.Equal(t, 5.0, score)
		require.Equal(t, int64(2), s.metrics.Complete().Nodes)
	})

	t.Run("cutting off at a minimizing layer", func(t *testing.T) {
		state := newMockState(leaves(1, 0, 9))
		s := newTestSearch(state, &mockEvaluator{}, plenty)

		score, err := s.alphaBetaMinValue(state, 1, 3, math.Inf(1))

		require.NoError(t, err)
		require.Equal(t, 1.0, score)
		require.Equal(t, int64(2), s.metrics.Complete().Nodes)
	})

	t.Run("examining every root move despite a narrow window", func(t *testing.T) {
		state := newMockState(leaves(4, 6, 8))
		s := newTestSearch(state, &mockEvaluator{}, plenty)

		move, score, err := s.alphaBeta(state, 1, math.Inf(-1), 5)

		require.NoError(t, err)
		require.Equal(t, mockMove(2), move, "The root never returns early")
		require.Equal(t, 8.0, score)
		require.Equal(t, int64(4), s.metrics.Complete().Nodes)
	})

	t.Run("returning no move without legal moves", func(t *testing.T) {
		state := newMockState(leaf(0))
		s := newTestSearch(state, &mockEvaluator{}, plenty)

		move, score, err := s.alphaBeta(state, 2, math.Inf(-1), math.Inf(1))

		require.NoError(t, err)
		require.Equal(t, game.NoMove, move)
		require.Equal(t, math.Inf(-1), score)
	})

	t.Run("aborting when the clock runs low", func(t *testing.T) {
		state := newMockState(aimaTree())
		evaluator := &mockEvaluator{}
		s := newTestSearch(state, evaluator, countingClock(3))

		_, _, err := s.alphaBeta(state, 2, math.Inf(-1), math.Inf(1))

		require.ErrorIs(t, err, ErrSearchTimeout)
		require.Equal(t, 1, evaluator.calls, "Only the first leaf was reached")
	})
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	for _, board := range smallBoards(t) {
		for depth := 1; depth <= 4; depth++ {
			mm := NewMinimaxPlayer(WithEvaluator(game.ImprovedScore))
			ab := NewAlphaBetaPlayer(WithEvaluator(game.ImprovedScore))

			mmMove, mmScore, err := mm.Minimax(board, depth, plenty)
			require.NoError(t, err)
			abMove, abScore, err := ab.AlphaBeta(board, depth, math.Inf(-1), math.Inf(1), plenty)
			require.NoError(t, err)

			require.Equal(t, mmScore, abScore, "depth %d on\n%s", depth, board)
			require.Equal(t, mmMove, abMove, "depth %d on\n%s", depth, board)
		}
	}
}
