package game

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Board is the single mutable position shared by the whole solver. Move
// generation, legality, and terminal detection come from notnil/chess; Board
// adds the make/unmake contract the search relies on: every Apply during a
// search is matched by an Undo before the enclosing frame returns, so the
// position is restored exactly no matter how many branches were explored.
type Board struct {
	pos     *chess.Position
	history []*chess.Position
}

// NewBoard returns a board at the standard chess starting position.
func NewBoard() *Board {
	return &Board{pos: chess.NewGame().Position()}
}

// NewBoardFromFEN returns a board holding the position described by fen.
func NewBoardFromFEN(fen string) (*Board, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	return &Board{pos: chess.NewGame(option).Position()}, nil
}

// LegalMoves enumerates the legal moves for the side to move. The order is
// deterministic for a given position, which keeps pruning reproducible.
func (b *Board) LegalMoves() []*chess.Move {
	return b.pos.ValidMoves()
}

// Apply plays move on the board. The side to move advances. The previous
// position is retained so Undo can restore it exactly.
func (b *Board) Apply(move *chess.Move) {
	if move == nil {
		panic("cannot apply a nil move")
	}
	b.history = append(b.history, b.pos)
	b.pos = b.pos.Update(move)
}

// Undo reverses the most recent Apply, restoring the prior position
// bit-for-bit. Undoing with no applied moves is a programmer error.
func (b *Board) Undo() {
	if len(b.history) == 0 {
		panic("cannot undo: no applied moves")
	}
	b.pos = b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
}

// GameOver reports whether the position has no legal continuation.
func (b *Board) GameOver() bool {
	return b.pos.Status() != chess.NoMethod
}

// Checkmate reports whether the side to move is checkmated.
func (b *Board) Checkmate() bool {
	return b.pos.Status() == chess.Checkmate
}

// Stalemate reports whether the side to move is stalemated.
func (b *Board) Stalemate() bool {
	return b.pos.Status() == chess.Stalemate
}

// Turn returns the side to move.
func (b *Board) Turn() chess.Color {
	return b.pos.Turn()
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq chess.Square) (chess.Piece, bool) {
	piece := b.pos.Board().Piece(sq)
	return piece, piece != chess.NoPiece
}

// SquareMap returns the occupied squares and their pieces.
func (b *Board) SquareMap() map[chess.Square]chess.Piece {
	return b.pos.Board().SquareMap()
}

// FEN returns the position as a FEN string.
func (b *Board) FEN() string {
	return b.pos.String()
}

// SetPiece places piece on sq, replacing whatever is there. Setting
// chess.NoPiece is the same as RemovePiece.
func (b *Board) SetPiece(sq chess.Square, piece chess.Piece) error {
	if piece == chess.NoPiece {
		return b.RemovePiece(sq)
	}
	pieces := b.pos.Board().SquareMap()
	pieces[sq] = piece
	return b.reset(pieces)
}

// RemovePiece clears sq.
func (b *Board) RemovePiece(sq chess.Square) error {
	pieces := b.pos.Board().SquareMap()
	delete(pieces, sq)
	return b.reset(pieces)
}

// reset rebuilds the position around an edited piece placement. Castling and
// en passant rights are cleared since hand edits invalidate them, and the
// undo history is dropped: there is no move to undo across an edit.
func (b *Board) reset(pieces map[chess.Square]chess.Piece) error {
	fields := strings.Fields(b.pos.String())
	fields[0] = chess.NewBoard(pieces).String()
	fields[2] = "-"
	fields[3] = "-"
	option, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		return fmt.Errorf("invalid piece placement: %w", err)
	}
	b.pos = chess.NewGame(option).Position()
	b.history = nil
	return nil
}
