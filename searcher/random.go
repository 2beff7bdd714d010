package searcher

import (
	"github.com/notnil/chess"
	"golang.org/x/exp/rand"

	"chesspuzzle/game"
)

// Random is a baseline solver that commits a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindBestMove(board *game.Board, side chess.Color) *chess.Move {
	if board.GameOver() {
		return nil
	}
	moves := board.LegalMoves()
	move := moves[r.rng.Intn(len(moves))]
	board.Apply(move)
	return move
}
