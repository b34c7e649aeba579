package ai

import (
	"math/rand"
	"testing"

	"chessforge/engine"
)

func TestRandomAlwaysRepliesWithALegalMove(t *testing.T) {
	b, err := engine.ParseFEN(engine.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRandom(rand.NewSource(7))
	r.Init(b.Clone())

	var got engine.Move
	r.AcceptMove(engine.MoveNone, func(m engine.Move) { got = m })
	if !got.IsValid() {
		t.Fatalf("Random didn't reply with any move")
	}
}

func TestRandomAppliesOpponentMoveBeforeReplying(t *testing.T) {
	b, err := engine.ParseFEN(engine.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	priv := b.Clone()
	r := NewRandom(rand.NewSource(7))
	r.Init(priv)

	var e2e4 engine.Move
	for _, m := range b.GenerateMoves() {
		if m.From() == engine.E2 && m.To() == engine.E4 {
			e2e4 = m
		}
	}
	if !e2e4.IsValid() {
		t.Fatalf("e2e4 not found")
	}

	r.AcceptMove(e2e4, func(engine.Move) {})
	if priv.PieceAt(engine.E4) != engine.WhitePawn {
		t.Fatalf("Random's private board didn't apply the opponent's move before its own")
	}
}

func TestNegamaxPrefersFreeMaterial(t *testing.T) {
	// White to move, black queen hangs en prise to the white rook with
	// nothing else going on; any reasonable depth-1+ search takes it.
	b, err := engine.ParseFEN("4k3/8/8/8/8/8/8/R3q1K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	n := NewNegamax(2)
	n.Init(b)

	var got engine.Move
	n.AcceptMove(engine.MoveNone, func(m engine.Move) { got = m })
	if got.To() != engine.E1 {
		t.Fatalf("Negamax played %s, expected to capture the hanging queen on e1", got)
	}
}

func TestNegamaxNeverReturnsOnStalemate(t *testing.T) {
	// Classic stalemate: black king on a8 has no legal move and isn't in check.
	b, err := engine.ParseFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	n := NewNegamax(1)
	n.Init(b)

	replied := false
	n.AcceptMove(engine.MoveNone, func(engine.Move) { replied = true })
	if replied {
		t.Fatalf("AcceptMove should not call reply when there's no legal move")
	}
}
