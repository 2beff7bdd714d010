package searcher

import (
	"math"

	"github.com/notnil/chess"

	"chesspuzzle/game"
)

type Option func(m *Minimax)

// Minimax is a fixed-depth alpha-beta solver. It mutates the one shared board
// in strict stack discipline: every speculative Apply is undone before the
// frame returns, so only the final committed move survives a FindBestMove.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  MetricsCollector
	last     SearchMetrics
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic("search depth must be at least 1")
	}
	m := &Minimax{ // Default values
		depth:    depth,
		evaluate: game.EvaluateMaterial,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Depth returns the fixed search depth in plies.
func (m *Minimax) Depth() int {
	return m.depth
}

// LastSearch returns the metrics of the most recent FindBestMove, zero valued
// unless the solver was built with WithMetrics.
func (m *Minimax) LastSearch() SearchMetrics {
	return m.last
}

// FindBestMove searches every root move to the configured depth and commits
// the one with the extremal score for side: maximal for White, minimal for
// Black. Ties keep the first move in move generation order. Returns nil, with
// no board mutation, when the game is already over.
//
// The recursive maximizing flag is derived from side, not from the board's
// side to move after the root move: it assumes turns strictly alternate from
// the mover's opponent. If side does not match the board's turn (possible
// after hand edits), the whole search optimizes for side anyway.
func (m *Minimax) FindBestMove(board *game.Board, side chess.Color) *chess.Move {
	if board.GameOver() {
		return nil
	}

	m.metrics.Start()
	bestValue := math.Inf(-1)
	if side != chess.White {
		bestValue = math.Inf(1)
	}
	var bestMove *chess.Move

	for _, move := range board.LegalMoves() {
		board.Apply(move)
		value := m.alphaBeta(board, m.depth-1, math.Inf(-1), math.Inf(1), side != chess.White)
		board.Undo()

		if (side == chess.White && value > bestValue) ||
			(side == chess.Black && value < bestValue) {
			bestValue = value
			bestMove = move
		}
	}

	if bestMove != nil {
		board.Apply(bestMove)
	}
	m.last = m.metrics.Complete()
	return bestMove
}

// alphaBeta returns the minimax value of the board searched depth plies
// deeper, pruning subtrees that cannot affect the result. Out of depth and
// game over both short-circuit to the static evaluation: there is no mate
// score, so a forced mate beyond the horizon looks like its bare material.
func (m *Minimax) alphaBeta(board *game.Board, depth int, alpha, beta float64, maximizing bool) float64 {
	if depth == 0 || board.GameOver() {
		m.metrics.AddLeaf()
		return m.evaluate(board)
	}
	m.metrics.AddNode()

	if maximizing {
		best := math.Inf(-1)
		for _, move := range board.LegalMoves() {
			board.Apply(move)
			value := m.alphaBeta(board, depth-1, alpha, beta, false)
			board.Undo()
			best = math.Max(best, value)
			alpha = math.Max(alpha, value)
			if beta <= alpha {
				m.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, move := range board.LegalMoves() {
		board.Apply(move)
		value := m.alphaBeta(board, depth-1, alpha, beta, true)
		board.Undo()
		best = math.Min(best, value)
		beta = math.Min(beta, value)
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}
