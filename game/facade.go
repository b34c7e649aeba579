package game

import (
	"context"
	"fmt"

	"chessforge/engine"
)

// Effect is a visual annotation GetTiles attaches to a square, per spec.md
// §4.6's tile-query contract. It carries no engine meaning; it exists so a
// renderer never has to re-derive selection/check state itself.
type Effect int

const (
	EffectNone Effect = iota
	EffectHighlighted // the currently selected square
	EffectSpotted     // a legal destination for the selected piece, empty
	EffectTargeted    // a legal destination for the selected piece, occupied
	EffectChecked     // a king currently in check
)

// TileState is one square's worth of GetTiles output.
type TileState struct {
	Piece  engine.Piece
	Effect Effect
}

// replyMsg is what an AI's reply callback posts. Grounded on
// tux21b-ChessBuddy's Player.Out channel: the callback's only job is to hand
// a value to the façade's own goroutine, never touch g.board itself.
type replyMsg struct {
	move engine.Move
}

// Game is the façade spec.md §4.6 describes: the sole owner of a Board, the
// thing tile clicks and AI replies both funnel through. Neither a human
// click nor an AI's reply is allowed to reach into g.board directly — every
// mutation goes through MakeMove, called only from the goroutine that owns
// g (HandleTileClicked, PollReply, or Run, never from inside an AI's own
// search goroutine).
type Game struct {
	board    *engine.Board
	ais      [2]AI // nil entry means that color is played by a human
	selected engine.Square
	lastMove engine.Move // MoveNone until the first move of the game is made

	replies chan replyMsg
}

// NewGame returns a Game positioned at the standard starting position with
// both sides human-controlled.
func NewGame() *Game {
	b, err := engine.ParseFEN(engine.StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant; if this ever fails it's a
		// programming error in this package, not a runtime condition.
		panic(fmt.Sprintf("game: StartFEN failed to parse: %v", err))
	}
	return &Game{
		board:    b,
		selected: engine.NoSquare,
		lastMove: engine.MoveNone,
		replies:  make(chan replyMsg, 1),
	}
}

// SetPosition resets the game to the given FEN, clearing any selection and
// re-initializing whichever AI handles are attached on a fresh private copy
// of the new position.
func (g *Game) SetPosition(fen string) error {
	b, err := engine.ParseFEN(fen)
	if err != nil {
		return err
	}
	g.board = b
	g.selected = engine.NoSquare
	g.lastMove = engine.MoveNone
	for c := 0; c < 2; c++ {
		if g.ais[c] != nil {
			g.ais[c].Init(b.Clone())
		}
	}
	return nil
}

// SetAI attaches an AI to play color c. A nil ai makes c human-controlled
// again. Re-initializes the AI on the current position's private copy.
func (g *Game) SetAI(c engine.Color, ai AI) {
	g.ais[c] = ai
	g.selected = engine.NoSquare
	if ai != nil {
		ai.Init(g.board.Clone())
	}
}

// isHumanToMove reports whether the side to move has no attached AI.
func (g *Game) isHumanToMove() bool {
	return g.ais[g.board.SideToMove()] == nil
}

// Board exposes the current position for read-only inspection (FEN export,
// printing, perft on the live game, etc.)
func (g *Game) Board() *engine.Board { return g.board }

// IsDrawByRule reports whether the current position is a rule draw
// (threefold repetition or the fifty-move rule), per spec.md §8 scenario S6.
func (g *Game) IsDrawByRule() bool { return g.board.IsDrawByRule() }

// GetTiles renders the 8x8 board as a grid of TileState, row 0 = rank 8
// (the top of a conventionally-drawn board) down to row 7 = rank 1, so a
// renderer can index it directly without knowing the engine's a1=0 square
// numbering.
func (g *Game) GetTiles() [8][8]TileState {
	var tiles [8][8]TileState

	var legalFromSelected []engine.Move
	if g.selected != engine.NoSquare {
		for _, m := range g.board.GenerateMoves() {
			if m.From() == g.selected {
				legalFromSelected = append(legalFromSelected, m)
			}
		}
	}

	for sq := engine.Square(0); sq < 64; sq++ {
		row, col := squareToRowCol(sq)
		tiles[row][col] = TileState{Piece: g.board.PieceAt(sq)}
	}

	if g.selected != engine.NoSquare {
		row, col := squareToRowCol(g.selected)
		tiles[row][col].Effect = EffectHighlighted
	}
	for _, m := range legalFromSelected {
		row, col := squareToRowCol(m.To())
		if g.board.PieceAt(m.To()) != engine.NoPiece || m.IsEnPassant() {
			tiles[row][col].Effect = EffectTargeted
		} else {
			tiles[row][col].Effect = EffectSpotted
		}
	}

	for _, c := range [2]engine.Color{engine.White, engine.Black} {
		if g.board.InCheck(c) {
			row, col := squareToRowCol(g.board.KingSquare(c))
			tiles[row][col].Effect = EffectChecked
		}
	}

	return tiles
}

// squareToRowCol maps an engine.Square to the top-down (row, col) grid
// GetTiles and HandleTileClicked use: row 0 is rank 8, row 7 is rank 1, col
// 0 is the a-file. This is purely a view-layer convention the spec's façade
// contract leaves unspecified; GetTiles and HandleTileClicked must agree on
// it, so it lives here as the one place both reach.
func squareToRowCol(sq engine.Square) (row, col int) {
	return 7 - sq.Rank(), sq.File()
}

func rowColToSquare(row, col int) engine.Square {
	return engine.NewSquare(7-row, col)
}

// Start kicks off the AI dispatch loop if the side to move has an AI
// attached. Callers that drive the game with PollReply (rather than Run)
// must call this once after setup, since otherwise an AI playing the first
// move of the game would never be asked to move.
func (g *Game) Start() { g.dispatchToAI() }

// dispatchToAI hands the just-applied move to whichever AI is now on move,
// if any. The human side of a position never calls this; it's invoked
// right after any successful MakeMove.
func (g *Game) dispatchToAI() {
	toMove := g.board.SideToMove()
	ai := g.ais[toMove]
	if ai == nil {
		return
	}
	ai.AcceptMove(g.lastMove, func(m engine.Move) {
		g.replies <- replyMsg{move: m}
	})
}

// PollReply applies at most one pending AI reply without blocking. Returns
// the move applied and true, or (MoveNone, false) if no reply was waiting.
// A reply for a move the board no longer considers legal (the AI raced a
// position change) is silently dropped rather than applied.
func (g *Game) PollReply() (engine.Move, bool) {
	select {
	case r := <-g.replies:
		if !g.applyIfLegal(r.move) {
			return engine.MoveNone, false
		}
		g.dispatchToAI()
		return r.move, true
	default:
		return engine.MoveNone, false
	}
}

// Run blocks, applying AI replies as they arrive, until ctx is canceled.
// Intended to run on its own goroutine in a headless (non-UI-driven) game;
// a UI-driven game instead calls PollReply from its own event loop tick.
func (g *Game) Run(ctx context.Context) {
	g.dispatchToAI()
	for {
		select {
		case <-ctx.Done():
			return
		case r := <-g.replies:
			if g.applyIfLegal(r.move) {
				g.dispatchToAI()
			}
		}
	}
}

// MakeUCIMove parses a UCI-style move string ("e2e4", "e7e8q") and applies
// it if it names a currently legal move. Intended for CLI/headless callers
// that have no tile grid to click; HandleTileClicked is the UI-facing
// equivalent.
func (g *Game) MakeUCIMove(s string) (engine.Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return engine.MoveNone, false
	}
	from, ok := engine.ParseSquare(s[0:2])
	if !ok {
		return engine.MoveNone, false
	}
	to, ok := engine.ParseSquare(s[2:4])
	if !ok {
		return engine.MoveNone, false
	}
	promo := engine.PieceTypeNone
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = engine.PieceTypeQueen
		case 'r':
			promo = engine.PieceTypeRook
		case 'b':
			promo = engine.PieceTypeBishop
		case 'n':
			promo = engine.PieceTypeKnight
		default:
			return engine.MoveNone, false
		}
	}

	for _, m := range g.board.GenerateMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() && m.PromotionType() != promo {
			continue
		}
		if !m.IsPromotion() && promo != engine.PieceTypeNone {
			continue
		}
		if !g.applyIfLegal(m) {
			return engine.MoveNone, false
		}
		g.dispatchToAI()
		return m, true
	}
	return engine.MoveNone, false
}

// applyIfLegal applies m if it's currently a legal move, reporting whether
// it did.
func (g *Game) applyIfLegal(m engine.Move) bool {
	for _, legal := range g.board.GenerateMoves() {
		if legal == m {
			if !g.board.MakeMove(m) {
				return false
			}
			g.lastMove = m
			g.selected = engine.NoSquare
			return true
		}
	}
	return false
}
