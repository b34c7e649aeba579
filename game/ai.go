// Package game implements the position engine's façade: the single
// Board owner that mediates between human tile clicks and AI opponents.
package game

import "chessforge/engine"

// AI is the contract an opponent implementation satisfies. Grounded on
// tux21b-ChessBuddy's Player/Out-channel split (main.go's play loop never
// lets a peer mutate shared game state directly, only post Messages on a
// channel) generalized from a network peer to a search worker: Init hands
// the AI its own board to search on, and AcceptMove's reply callback is
// expected to do nothing but post to a channel, never touch the façade's
// Board.
type AI interface {
	// Init receives a private copy of the starting position. The AI may
	// retain and mutate this copy freely; the façade never reads it back.
	Init(b *engine.Board)

	// AcceptMove is called once per ply, after the opponent's move has
	// already been applied on the caller's board. The AI must eventually
	// call reply exactly once with a legal move for the side now to move.
	// reply may be called from any goroutine, at any time after
	// AcceptMove returns, including synchronously before it returns.
	AcceptMove(m engine.Move, reply func(engine.Move))
}
