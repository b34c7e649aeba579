package engine

import "testing"

// findMove is a small test helper kept local to this test file, matching
// the corpus's own habit of a local findMove per test file rather than a
// shared test-only export.
func findMove(t *testing.T, b *Board, from, to Square) (Move, bool) {
	t.Helper()
	for _, m := range b.GenerateMoves() {
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return MoveNone, false
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	startFEN := b.ToFEN()
	startZ := b.Hash()

	m1, ok := findMove(t, b, E2, E4)
	if !ok {
		t.Fatalf("e2e4 not found")
	}
	if !b.MakeMove(m1) {
		t.Fatalf("MakeMove e2e4 failed")
	}

	m2, ok := findMove(t, b, E7, E5)
	if !ok {
		t.Fatalf("e7e5 not found")
	}
	if !b.MakeMove(m2) {
		t.Fatalf("MakeMove e7e5 failed")
	}

	b.UnmakeMove()
	b.UnmakeMove()

	if got := b.ToFEN(); got != startFEN {
		t.Fatalf("FEN mismatch after unmake: got %q want %q", got, startFEN)
	}
	if b.Hash() != startZ {
		t.Fatalf("Zobrist mismatch after unmake")
	}
	if len(b.stateStack) != 0 || len(b.hashHistory) != 1 {
		t.Fatalf("stack/history not back to the starting position: stack=%d hist=%d", len(b.stateStack), len(b.hashHistory))
	}
}

func TestMakeUnmakeCastling(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	startFEN := b.ToFEN()

	m, ok := findMove(t, b, E1, G1)
	if !ok {
		t.Fatalf("kingside castle not found")
	}
	if !b.MakeMove(m) {
		t.Fatalf("MakeMove castle failed")
	}
	if b.PieceAt(G1) != WhiteKing || b.PieceAt(F1) != WhiteRook {
		t.Fatalf("castle didn't relocate king/rook correctly")
	}
	if b.CastleRights()&(CastleWhiteKingside|CastleWhiteQueenside) != 0 {
		t.Fatalf("white castle rights should be cleared after castling")
	}

	b.UnmakeMove()
	if got := b.ToFEN(); got != startFEN {
		t.Fatalf("FEN mismatch after unmaking castle: got %q want %q", got, startFEN)
	}
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	b, err := ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		t.Fatal(err)
	}
	startFEN := b.ToFEN()

	m, ok := findMove(t, b, E5, D6)
	if !ok || !m.IsEnPassant() {
		t.Fatalf("en passant capture not found")
	}
	if !b.MakeMove(m) {
		t.Fatalf("MakeMove en passant failed")
	}
	if b.PieceAt(D5) != NoPiece {
		t.Fatalf("captured pawn still on d5")
	}
	if b.PieceAt(D6) != WhitePawn {
		t.Fatalf("capturing pawn didn't land on d6")
	}

	b.UnmakeMove()
	if got := b.ToFEN(); got != startFEN {
		t.Fatalf("FEN mismatch after unmaking en passant: got %q want %q", got, startFEN)
	}
}

func TestMakeUnmakePromotion(t *testing.T) {
	b, err := ParseFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	startFEN := b.ToFEN()

	var promo Move
	found := false
	for _, m := range b.GenerateMoves() {
		if m.From() == A7 && m.To() == A8 && m.PromotionType() == PieceTypeQueen {
			promo, found = m, true
		}
	}
	if !found {
		t.Fatalf("a7a8=Q not found")
	}
	if !b.MakeMove(promo) {
		t.Fatalf("MakeMove promotion failed")
	}
	if b.PieceAt(A8) != WhiteQueen {
		t.Fatalf("promotion didn't place a queen on a8")
	}

	b.UnmakeMove()
	if got := b.ToFEN(); got != startFEN {
		t.Fatalf("FEN mismatch after unmaking promotion: got %q want %q", got, startFEN)
	}
	if b.PieceAt(A7) != WhitePawn {
		t.Fatalf("unmake didn't restore the pawn on a7")
	}
}

func TestMakeMoveRejectsPinnedPawnSidestep(t *testing.T) {
	// The e2 pawn is pinned to the king by the rook on e8; moving it off
	// the e-file must not even be generated, and MakeMove must refuse it if
	// constructed by hand anyway.
	b, err := ParseFEN("4r3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range b.GenerateMoves() {
		if m.From() == E2 && m.To() != E3 && m.To() != E4 {
			t.Fatalf("pinned pawn produced an off-file move: %s", m)
		}
	}

	sidestep := NewMove(E2, D3, FlagNone)
	fen := b.ToFEN()
	if b.MakeMove(sidestep) {
		t.Fatalf("MakeMove should reject a hand-built move that leaves the king in check")
	}
	if got := b.ToFEN(); got != fen {
		t.Fatalf("rejected MakeMove left the board mutated: got %q want %q", got, fen)
	}
}
