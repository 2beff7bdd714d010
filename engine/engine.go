package engine

import (
	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"

	"chesspuzzle/game"
	"chesspuzzle/searcher"
)

const (
	CheckmateMessage = "Checkmate! Puzzle solved."
	StalemateMessage = "Stalemate! Puzzle solved."
)

// Status reports whether the puzzle on board is solved, and with which
// terminal message.
func Status(board *game.Board) (string, bool) {
	switch {
	case board.Checkmate():
		return CheckmateMessage, true
	case board.Stalemate():
		return StalemateMessage, true
	}
	return "", false
}

// Engine drives a solver over the shared puzzle board, one committed move at
// a time.
type Engine struct {
	Board  *game.Board
	Solver searcher.Solver
}

func New(board *game.Board, solver searcher.Solver) *Engine {
	if board == nil {
		panic("engine needs a board")
	}
	if solver == nil {
		panic("engine needs a solver")
	}
	return &Engine{Board: board, Solver: solver}
}

// SolveStep commits one best move for side and reports whether the puzzle is
// solved afterwards. A nil move means the puzzle was already over.
func (e *Engine) SolveStep(side chess.Color) (*chess.Move, bool) {
	move := e.Solver.FindBestMove(e.Board, side)
	if move == nil {
		log.Info().Msgf("no move for %s: puzzle already over", side.Name())
	} else {
		log.Info().Msgf("%s plays %s", side.Name(), move)
	}

	if message, solved := Status(e.Board); solved {
		log.Info().Msg(message)
		return move, true
	}
	return move, false
}

// Run solves step by step, alternating sides starting with side, until the
// puzzle is solved or maxMoves moves were committed. It returns the committed
// line and whether the puzzle ended solved.
func (e *Engine) Run(side chess.Color, maxMoves int) ([]*chess.Move, bool) {
	var line []*chess.Move
	for i := 0; i < maxMoves; i++ {
		move, solved := e.SolveStep(side)
		if move == nil {
			return line, solved
		}
		line = append(line, move)
		if solved {
			return line, true
		}
		side = side.Other()
	}
	log.Info().Msgf("stopping after %d moves without a solution", maxMoves)
	return line, false
}
