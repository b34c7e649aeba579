package engine_test

import (
	"math/rand"
	"testing"

	"chessforge/engine"
)

// TestSelfPlayInvariants plays a handful of random legal-move games from
// the starting position and checks, after every ply: every generated move
// is accepted by MakeMove, the side to move alternates, the mover's own
// king is not left in check, and the incrementally maintained Zobrist hash
// matches a from-scratch recomputation (exercised indirectly through FEN
// round-tripping, since computeZobrist isn't exported).
func TestSelfPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for game := 0; game < 20; game++ {
		b, err := engine.ParseFEN(engine.StartFEN)
		if err != nil {
			t.Fatal(err)
		}

		for ply := 0; ply < 80; ply++ {
			moves := b.GenerateMoves()
			if len(moves) == 0 {
				break
			}
			sideBefore := b.SideToMove()
			m := moves[rng.Intn(len(moves))]
			if !b.MakeMove(m) {
				t.Fatalf("game %d ply %d: GenerateMoves produced an illegal move %s", game, ply, m)
			}
			if b.SideToMove() == sideBefore {
				t.Fatalf("game %d ply %d: side to move didn't alternate after %s", game, ply, m)
			}
			if b.InCheck(sideBefore) {
				t.Fatalf("game %d ply %d: mover's own king left in check after %s", game, ply, m)
			}

			fen := b.ToFEN()
			replayed, err := engine.ParseFEN(fen)
			if err != nil {
				t.Fatalf("game %d ply %d: ToFEN produced unparseable FEN %q: %v", game, ply, fen, err)
			}
			if replayed.Hash() != b.Hash() {
				t.Fatalf("game %d ply %d: hash drifted from a from-scratch parse of the same FEN", game, ply)
			}
		}
	}
}

func TestSelfPlayDrawDetectionNeverPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b, err := engine.ParseFEN(engine.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	for ply := 0; ply < 300; ply++ {
		moves := b.GenerateMoves()
		if len(moves) == 0 || b.IsDrawByRule() {
			return
		}
		b.MakeMove(moves[rng.Intn(len(moves))])
	}
}
