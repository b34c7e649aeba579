package engine

import "testing"

func TestIncrementalZobristMatchesRecompute(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var walk func(depth int)
	walk = func(depth int) {
		if got, want := b.Hash(), b.computeZobrist(); got != want {
			t.Fatalf("incremental hash %d != recomputed hash %d at depth %d", got, want, depth)
		}
		if depth == 0 {
			return
		}
		for _, m := range b.GenerateMoves() {
			if !b.MakeMove(m) {
				continue
			}
			walk(depth - 1)
			b.UnmakeMove()
		}
	}
	walk(3)
}

func TestZobristDistinguishesSideToMove(t *testing.T) {
	w, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if w.Hash() == b.Hash() {
		t.Fatalf("same board, different side to move, produced equal hashes")
	}
}
