package main

import (
	"flag"
	"fmt"

	"chessforge/engine"
)

// runFEN parses a FEN, re-serializes it, and prints both the round-tripped
// string and a rendered board — a quick way to eyeball whether ParseFEN and
// ToFEN agree with each other and with the input.
func runFEN(args []string) error {
	fs := flag.NewFlagSet("fen", flag.ExitOnError)
	fen := fs.String("fen", engine.StartFEN, "FEN string to parse and round-trip")
	if err := fs.Parse(args); err != nil {
		return err
	}

	board, err := engine.ParseFEN(*fen)
	if err != nil {
		return fmt.Errorf("parsing FEN: %w", err)
	}

	fmt.Println(renderBoard(board))
	fmt.Println(board.ToFEN())
	return nil
}
