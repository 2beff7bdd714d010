package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chesspuzzle/engine"
	"chesspuzzle/game"
	"chesspuzzle/meta"
	"chesspuzzle/searcher"
)

type config struct {
	fen      string
	side     string
	depth    int
	step     bool
	maxMoves int
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := parseFlags()

	board, err := loadBoard(cfg.fen)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load puzzle")
	}
	side, err := parseSide(cfg.side)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse side")
	}

	solver := searcher.NewMinimax(cfg.depth, searcher.WithMetrics())
	e := engine.New(board, solver)

	if cfg.step {
		e.SolveStep(side)
	} else {
		line, solved := e.Run(side, cfg.maxMoves)
		log.Info().Msgf("committed %d moves, solved=%t", len(line), solved)
	}

	metrics := solver.LastSearch()
	log.Info().Msgf("last search: %d nodes, %d leafs, %d cutoffs in %s",
		metrics.Nodes, metrics.Leafs, metrics.Cutoffs, metrics.Duration)

	fmt.Println(board.FEN())
}

func parseFlags() config {
	cfg := config{}
	flag.StringVar(&cfg.fen, "fen", "", "puzzle position as FEN (default: starting position)")
	flag.StringVar(&cfg.side, "side", "white", "side to solve for: white or black")
	flag.IntVar(&cfg.depth, "depth", meta.SEARCH_DEPTH, "fixed search depth in plies")
	flag.BoolVar(&cfg.step, "step", false, "commit a single move instead of solving to the end")
	flag.IntVar(&cfg.maxMoves, "max-moves", meta.MAX_MOVES, "move cap for a full solve")
	flag.Parse()
	return cfg
}

func loadBoard(fen string) (*game.Board, error) {
	if fen == "" {
		return game.NewBoard(), nil
	}
	return game.NewBoardFromFEN(fen)
}

func parseSide(side string) (chess.Color, error) {
	switch side {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.NoColor, fmt.Errorf("unknown side %q", side)
}
