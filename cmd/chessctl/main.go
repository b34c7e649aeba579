// Command chessctl is a small operator tool for exercising the engine
// package directly: run perft counts, round-trip a FEN, or play a game on
// the terminal against one of the ai package's reference opponents.
//
// Grounded on GooseEngineMG's cmd/perft/main.go (flag-based subcommands,
// -fen/-depth/-divide flags, the same one-line timing report shape) and
// generalized to a single binary with subcommands instead of one binary
// per concern, since this repo only needs the one.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub, rest := os.Args[1], os.Args[2:]
	var err error
	switch sub {
	case "perft":
		err = runPerft(rest)
	case "fen":
		err = runFEN(rest)
	case "play":
		err = runPlay(rest)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "chessctl %s: %v\n", sub, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: chessctl <perft|fen|play> [flags]")
}
