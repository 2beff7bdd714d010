package game

import "github.com/notnil/chess"

// Evaluate scores a board from White's perspective: positive favors White,
// negative favors Black. Evaluations are total functions over every reachable
// position, terminal ones included.
type Evaluate func(*Board) float64

// EvaluateMaterial tallies a fixed value for every piece on the board,
// negated for Black. The king counts for nothing: terminal positions are
// detected by the rules, not by king capture, so checkmates score the same as
// the bare material left on the board.
func EvaluateMaterial(b *Board) float64 {
	var score float64
	for _, piece := range b.SquareMap() {
		value := pieceValue(piece.Type())
		if piece.Color() == chess.Black {
			value = -value
		}
		score += value
	}
	return score
}

func pieceValue(pt chess.PieceType) float64 {
	switch pt {
	case chess.Pawn:
		return 1
	case chess.Knight:
		return 3
	case chess.Bishop:
		return 3
	case chess.Rook:
		return 5
	case chess.Queen:
		return 9
	}
	return 0
}
