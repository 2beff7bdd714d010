package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boardFromFEN(t *testing.T, fen string) *Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	require.NoError(t, err)
	return board
}

func TestEvaluateMaterial(t *testing.T) {
	t.Run("starting position is balanced", func(t *testing.T) {
		require.Equal(t, 0.0, EvaluateMaterial(NewBoard()))
	})

	t.Run("kings alone count for nothing", func(t *testing.T) {
		board := boardFromFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

		require.Equal(t, 0.0, EvaluateMaterial(board))
	})

	t.Run("piece values", func(t *testing.T) {
		cases := []struct {
			name string
			fen  string
			want float64
		}{
			{"pawn", "4k3/8/8/8/8/8/P7/4K3 w - - 0 1", 1},
			{"knight", "4k3/8/8/8/8/8/8/N3K3 w - - 0 1", 3},
			{"bishop", "4k3/8/8/8/8/8/8/B3K3 w - - 0 1", 3},
			{"rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", 5},
			{"queen", "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", 9},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				board := boardFromFEN(t, tc.fen)

				require.Equal(t, tc.want, EvaluateMaterial(board))
			})
		}
	})

	t.Run("black material counts negative", func(t *testing.T) {
		board := boardFromFEN(t, "3qk3/8/8/8/8/8/8/4K3 w - - 0 1")

		require.Equal(t, -9.0, EvaluateMaterial(board))
	})

	t.Run("color swap negates the score", func(t *testing.T) {
		board := boardFromFEN(t, "4k3/8/8/8/8/8/8/QQQ1K3 w - - 0 1")
		swapped := boardFromFEN(t, "qqq1k3/8/8/8/8/8/8/4K3 w - - 0 1")

		require.Equal(t, 27.0, EvaluateMaterial(board))
		require.Equal(t, -EvaluateMaterial(board), EvaluateMaterial(swapped),
			"Mirroring the colors should mirror the evaluation")
	})

	t.Run("terminal positions are scored like any other", func(t *testing.T) {
		// Fool's mate: checkmate with no material off the board.
		board := boardFromFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

		require.True(t, board.Checkmate())
		require.Equal(t, 0.0, EvaluateMaterial(board),
			"Checkmate carries no evaluation bonus, only material counts")
	})
}
