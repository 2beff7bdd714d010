package searcher

import (
	"github.com/notnil/chess"

	"chesspuzzle/game"
)

// Solver picks a move for side on board and commits it. Implementations
// return nil and leave the board untouched when the game is already over.
type Solver interface {
	FindBestMove(board *game.Board, side chess.Color) *chess.Move
}
