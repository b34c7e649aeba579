// Package ai holds reference AI implementations satisfying game.AI — not
// part of the search-algorithm contract spec.md scopes out, but simple
// enough to serve as worked examples of it: a uniform-random picker and a
// depth-limited negamax.
package ai

import (
	"math/rand"

	"chessforge/engine"
	"chessforge/game"
)

var _ game.AI = (*Random)(nil)

// Random plays a uniformly random legal move. Grounded on
// tux21b-ChessBuddy's negaMax, stripped down to depth 0 with an actual
// uniform choice instead of a scan-order tiebreak.
type Random struct {
	board *engine.Board
	rng   *rand.Rand
}

// NewRandom returns a Random seeded from src.
func NewRandom(src rand.Source) *Random {
	return &Random{rng: rand.New(src)}
}

func (r *Random) Init(b *engine.Board) { r.board = b }

func (r *Random) AcceptMove(m engine.Move, reply func(engine.Move)) {
	if m.IsValid() {
		r.board.MakeMove(m)
	}
	moves := r.board.GenerateMoves()
	if len(moves) == 0 {
		return
	}
	choice := moves[r.rng.Intn(len(moves))]
	r.board.MakeMove(choice)
	reply(choice)
}
