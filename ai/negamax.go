package ai

import (
	"math"

	"chessforge/engine"
	"chessforge/game"
)

var _ game.AI = (*Negamax)(nil)

// pieceValues is the material-only evaluation table, extended to queens
// (tux21b-ChessBuddy's evaluate tops out at a rook since its board has no
// queen-aware special case beyond promotion rank).
var pieceValues = [7]int{
	engine.PieceTypeNone:   0,
	engine.PieceTypePawn:   100,
	engine.PieceTypeKnight: 300,
	engine.PieceTypeBishop: 300,
	engine.PieceTypeRook:   500,
	engine.PieceTypeQueen:  900,
	engine.PieceTypeKing:   20000,
}

// Negamax is a depth-limited negamax searcher with alpha-beta pruning and a
// material-only evaluation. Grounded on tux21b-ChessBuddy's negaMax/evaluate
// (chess/ai.go), generalized from that file's 64x64 mayMove scan to this
// package's GenerateMoves, and given actual pruning since this engine's
// move lists are long enough that a full-width search is wasteful.
//
// AcceptMove runs its search synchronously and calls reply before
// returning; it's still conformant with the AI contract's "reply may be
// called from any goroutine, including synchronously before AcceptMove
// returns" clause in game.AI, and callers that want search off their own
// goroutine are expected to call AcceptMove from one they spawned.
type Negamax struct {
	board *engine.Board
	depth int
}

// NewNegamax returns a Negamax that searches to the given ply depth.
func NewNegamax(depth int) *Negamax {
	if depth < 1 {
		depth = 1
	}
	return &Negamax{depth: depth}
}

func (n *Negamax) Init(b *engine.Board) { n.board = b }

func (n *Negamax) AcceptMove(m engine.Move, reply func(engine.Move)) {
	if m.IsValid() {
		n.board.MakeMove(m)
	}
	moves := n.board.GenerateMoves()
	if len(moves) == 0 {
		return
	}

	best := moves[0]
	bestScore := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)

	for _, candidate := range moves {
		if !n.board.MakeMove(candidate) {
			continue
		}
		score := -n.negamax(n.depth-1, -beta, -alpha)
		n.board.UnmakeMove()

		if score > bestScore {
			bestScore, best = score, candidate
		}
		if score > alpha {
			alpha = score
		}
	}

	n.board.MakeMove(best)
	reply(best)
}

// negamax searches to depth, returning a score from the perspective of the
// side to move at entry (positive is good for that side).
func (n *Negamax) negamax(depth int, alpha, beta float64) float64 {
	if n.board.IsDrawByRule() {
		return 0
	}
	if depth <= 0 {
		return n.evaluate()
	}

	moves := n.board.GenerateMoves()
	if len(moves) == 0 {
		if n.board.InCheck(n.board.SideToMove()) {
			return math.Inf(-1) // checkmated, as bad as it gets for the mover
		}
		return 0 // stalemate
	}

	best := math.Inf(-1)
	for _, m := range moves {
		if !n.board.MakeMove(m) {
			continue
		}
		score := -n.negamax(depth-1, -beta, -alpha)
		n.board.UnmakeMove()

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// evaluate scores the position from the perspective of the side to move:
// sum of material for the mover minus material for the opponent.
func (n *Negamax) evaluate() float64 {
	us := n.board.SideToMove()
	them := us.Opponent()
	score := 0

	for t := engine.PieceTypePawn; t <= engine.PieceTypeQueen; t++ {
		score += pieceValues[t] * popcount(n.board.Bitboard(us, t))
		score -= pieceValues[t] * popcount(n.board.Bitboard(them, t))
	}
	return float64(score)
}

func popcount(bb uint64) int {
	count := 0
	for bb != 0 {
		bb &= bb - 1
		count++
	}
	return count
}
