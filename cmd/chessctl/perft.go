package main

import (
	"flag"
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"chessforge/engine"
)

// runPerft mirrors GooseEngineMG's cmd/perft binary: -fen/-depth/-divide,
// plus the same one-line "label depth nodes time nps" report. -divide's
// per-move breakdown is sorted with x/exp/slices.SortFunc rather than the
// teacher's sort.Slice, which is otherwise the same stable-by-move-string
// ordering.
func runPerft(args []string) error {
	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	fen := fs.String("fen", engine.StartFEN, "FEN string (defaults to initial position)")
	depth := fs.Int("depth", 0, "perft depth (required)")
	divide := fs.Bool("divide", false, "print per-move node counts at the root")
	label := fs.String("label", "", "optional label prefix for the one-line report")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *depth <= 0 {
		return fmt.Errorf("-depth must be > 0")
	}

	board, err := engine.ParseFEN(*fen)
	if err != nil {
		return fmt.Errorf("parsing FEN: %w", err)
	}

	if *divide {
		return printDivide(board, *depth)
	}

	start := time.Now()
	nodes := engine.Perft(board, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	fmt.Printf("%s\t%d\t%d\t%s\t%.0f\n", *label, *depth, nodes, elapsed, nps)
	return nil
}

func printDivide(board *engine.Board, depth int) error {
	div := engine.PerftDivide(board, depth)

	type kv struct {
		m engine.Move
		n uint64
	}
	arr := make([]kv, 0, len(div))
	var sum uint64
	for m, n := range div {
		arr = append(arr, kv{m, n})
		sum += n
	}
	slices.SortFunc(arr, func(a, b kv) bool { return a.m.String() < b.m.String() })

	for _, x := range arr {
		fmt.Printf("%s: %d\n", x.m.String(), x.n)
	}
	fmt.Printf("Total: %d\n", sum)
	return nil
}
