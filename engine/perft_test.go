package engine

import "testing"

// Reference node counts are the standard perft positions used across the
// chess-engine-testing community; the same positions (initial, Kiwipete,
// "position 3", "position 4") appear in the teacher's own
// tests/perft_test.go, which this file is grounded on.

func TestPerftInitialPosition(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		if got := Perft(b, c.depth); got != c.want {
			t.Errorf("perft depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		if got := Perft(b, c.depth); got != c.want {
			t.Errorf("kiwipete depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

// TestPerftPosition3 stresses pins and discovered checks with very few
// pieces on the board.
func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}
	for _, c := range cases {
		if got := Perft(b, c.depth); got != c.want {
			t.Errorf("position3 depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

// TestPerftPosition4 stresses castling rights interacting with captures and
// promotions.
func TestPerftPosition4(t *testing.T) {
	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 6},
		{2, 264},
		{3, 9467},
	}
	for _, c := range cases {
		if got := Perft(b, c.depth); got != c.want {
			t.Errorf("position4 depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftEnPassantDiscoveredCheck(t *testing.T) {
	// White king on h5, black pawn just double-pushed to d5; capturing it en
	// passant with the e5 pawn would empty the fifth rank between the white
	// king and the black rook on a5.
	fen := "8/8/8/r2pP2K/8/8/8/8 w - d6 0 2"
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, m := range b.GenerateMoves() {
		if m.IsEnPassant() {
			t.Fatalf("en passant %s should be illegal: it exposes the white king on the fifth rank", m)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	div := PerftDivide(b, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	want := Perft(b, 3)
	if sum != want {
		t.Errorf("PerftDivide sum = %d, want %d", sum, want)
	}
}
