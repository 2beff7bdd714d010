package searcher

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"

	"chesspuzzle/game"
)

func TestRandomFindBestMove(t *testing.T) {
	t.Run("commits a legal move", func(t *testing.T) {
		board := game.NewBoard()
		legal := map[string]bool{}
		for _, move := range board.LegalMoves() {
			legal[move.String()] = true
		}
		before := board.FEN()

		move := NewRandom(42).FindBestMove(board, chess.White)

		require.NotNil(t, move)
		require.True(t, legal[move.String()], "Picked move should be legal")
		require.NotEqual(t, before, board.FEN(), "Picked move should be committed")
	})

	t.Run("same seed picks the same move", func(t *testing.T) {
		first := NewRandom(7).FindBestMove(game.NewBoard(), chess.White)
		second := NewRandom(7).FindBestMove(game.NewBoard(), chess.White)

		require.Equal(t, first.String(), second.String())
	})

	t.Run("game already over", func(t *testing.T) {
		board := boardFromFEN(t, foolsMateFEN)
		before := board.FEN()

		move := NewRandom(1).FindBestMove(board, chess.White)

		require.Nil(t, move)
		require.Equal(t, before, board.FEN())
	})
}
