package game

import (
	"testing"

	"chessforge/engine"
)

func TestHandleTileClickedSelectsOwnPiece(t *testing.T) {
	g := NewGame()
	// e2 is row 6, col 4 under the top-down (rank 8 at row 0) convention.
	if _, applied := g.HandleTileClicked(6, 4); applied {
		t.Fatalf("selecting a piece should never itself apply a move")
	}
	if g.selected != engine.E2 {
		t.Fatalf("selected = %v, want e2", g.selected)
	}
}

func TestHandleTileClickedIgnoresEmptySquareWhileIdle(t *testing.T) {
	g := NewGame()
	// e4 (row 4, col 4) is empty in the starting position.
	if _, applied := g.HandleTileClicked(4, 4); applied {
		t.Fatalf("clicking an empty square from Idle should be a no-op")
	}
	if g.selected != engine.NoSquare {
		t.Fatalf("selected = %v, want NoSquare", g.selected)
	}
}

func TestHandleTileClickedAppliesLegalMove(t *testing.T) {
	g := NewGame()
	g.HandleTileClicked(6, 4) // select e2
	m, applied := g.HandleTileClicked(4, 4) // click e4
	if !applied {
		t.Fatalf("e2-e4 should have applied")
	}
	if m.From() != engine.E2 || m.To() != engine.E4 {
		t.Fatalf("applied move = %s, want e2e4", m)
	}
	if g.selected != engine.NoSquare {
		t.Fatalf("selection should clear after a move is applied")
	}
	if g.board.PieceAt(engine.E4) != engine.WhitePawn {
		t.Fatalf("pawn didn't land on e4")
	}
}

func TestHandleTileClickedIllegalDestinationClearsSelection(t *testing.T) {
	g := NewGame()
	g.HandleTileClicked(6, 4) // select e2
	// e5 (row 3, col 4) is one square past the e4 double push; illegal.
	if _, applied := g.HandleTileClicked(3, 4); applied {
		t.Fatalf("e2-e5 should be illegal")
	}
	if g.selected != engine.NoSquare {
		t.Fatalf("an illegal destination should still clear the selection")
	}
}

func TestHandleTileClickedReselectsOwnPiece(t *testing.T) {
	g := NewGame()
	g.HandleTileClicked(6, 4) // select e2
	g.HandleTileClicked(6, 3) // click d2, also white's
	if g.selected != engine.D2 {
		t.Fatalf("selected = %v, want d2 (re-selection)", g.selected)
	}
}

func TestHandleTileClickedAutoQueensPromotion(t *testing.T) {
	g := NewGame()
	if err := g.SetPosition("8/P6k/8/8/8/8/7K/8 w - - 0 1"); err != nil {
		t.Fatal(err)
	}
	g.HandleTileClicked(1, 0) // select a7 (row 1, col 0)
	m, applied := g.HandleTileClicked(0, 0) // click a8
	if !applied {
		t.Fatalf("a7-a8 promotion should have applied")
	}
	if m.PromotionType() != engine.PieceTypeQueen {
		t.Fatalf("promotion type = %v, want queen", m.PromotionType())
	}
}

func TestHandleTileClickedIgnoredWhenAIToMove(t *testing.T) {
	g := NewGame()
	g.SetAI(engine.White, stubAI{})
	if _, applied := g.HandleTileClicked(6, 4); applied {
		t.Fatalf("a click on the AI's turn should never apply a move")
	}
	if g.selected != engine.NoSquare {
		t.Fatalf("a click on the AI's turn shouldn't select anything either")
	}
}

// stubAI never replies; it exists purely to mark White as AI-controlled
// for TestHandleTileClickedIgnoredWhenAIToMove.
type stubAI struct{}

func (stubAI) Init(b *engine.Board)                              {}
func (stubAI) AcceptMove(m engine.Move, reply func(engine.Move)) {}
