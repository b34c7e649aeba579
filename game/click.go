package game

import "chessforge/engine"

// HandleTileClicked implements spec.md §4.7's Idle/Selected click state
// machine for one (row, col) grid cell (see squareToRowCol for the
// row/col convention). It returns the move that was applied, if any.
//
// Transition table, g.selected standing in for the state:
//
//	Idle,     empty or enemy piece  -> stays Idle, no-op
//	Idle,     own piece             -> selects that square
//	Selected, own piece again       -> re-selects the new square
//	Selected, legal destination     -> applies the move, clears selection
//	Selected, illegal destination   -> clears selection, no-op
//	Selected, AI now to move        -> no-op; a human can't move for the AI
//
// Clicks are ignored outright while the side to move is AI-controlled,
// matching "side is human" = AI handle absent from spec.md §4.7.
func (g *Game) HandleTileClicked(row, col int) (engine.Move, bool) {
	if !g.isHumanToMove() {
		return engine.MoveNone, false
	}

	clicked := rowColToSquare(row, col)
	piece := g.board.PieceAt(clicked)
	us := g.board.SideToMove()

	if g.selected == engine.NoSquare {
		if piece != engine.NoPiece && piece.Color() == us {
			g.selected = clicked
		}
		return engine.MoveNone, false
	}

	if piece != engine.NoPiece && piece.Color() == us {
		g.selected = clicked
		return engine.MoveNone, false
	}

	m, ok := g.findMove(g.selected, clicked)
	g.selected = engine.NoSquare
	if !ok {
		return engine.MoveNone, false
	}
	if !g.board.MakeMove(m) {
		return engine.MoveNone, false
	}
	g.lastMove = m
	g.dispatchToAI()
	return m, true
}

// findMove looks up the legal move from -> to for the side to move. When
// more than one legal move shares that (from, to) pair — only possible for
// an under-promotion choice — it resolves the ambiguity by picking the
// queen promotion, per spec.md §4.6's auto-queen-promotion policy for human
// clicks (under-promotions aren't reachable through tile clicks at all;
// an AI wanting one constructs the Move itself).
func (g *Game) findMove(from, to engine.Square) (engine.Move, bool) {
	best := engine.MoveNone
	found := false
	for _, m := range g.board.GenerateMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if !m.IsPromotion() {
			return m, true
		}
		if !found || m.PromotionType() == engine.PieceTypeQueen {
			best = m
			found = true
		}
	}
	return best, found
}
