package engine

// pawnPushDir returns the single-step forward offset for a pawn of color c.
func pawnPushDir(c Color) int {
	if c == Black {
		return -8
	}
	return 8
}

// epCapturedSquare returns the square of the pawn captured by an en
// passant move landing on `to`, given the capturing side's push
// direction. Shared by movegen.go (to probe king safety before offering
// the move) and MakeMove (to actually remove the pawn) so the two can
// never compute it differently.
func epCapturedSquare(to Square, pushDir int) Square {
	return Square(int(to) - pushDir)
}

// MakeMove applies m to the board. If m leaves the mover's own king in
// check, the board is restored to exactly its pre-move state and MakeMove
// returns false — callers that only ever feed it GenerateMoves' output
// will never see this path taken, but MakeMove stays safe to call with any
// syntactically well-formed move (the AI contract in spec.md §4.8 doesn't
// promise its candidate moves came from this package's own generator).
//
// On success the reversing state is pushed onto the board's own undo
// stack; UnmakeMove pops and reverses it. Grounded on goosemg.MakeMove,
// restructured around Board.stateStack (spec.md §3's explicit "game-state
// stack" requirement) instead of a MoveState the caller must carry around,
// and around addPiece/removePiece/relocatePiece instead of per-piece-type
// bitboard case statements, since this package also has piece lists to
// keep in sync that the teacher's bitboard-only Board doesn't.
func (b *Board) MakeMove(m Move) bool {
	from, to := m.From(), m.To()
	moved := b.squares[from]
	us := moved.Color()
	them := us.Opponent()

	u := undoState{
		move:           m,
		movedPiece:     moved,
		capturedPiece:  NoPiece,
		capturedSquare: NoSquare,
		castleRights:   b.castleRights,
		enPassantFile:  b.enPassantFile,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
		zobristHash:    b.zobristHash,
		rookFrom:       NoSquare,
		rookTo:         NoSquare,
	}

	if b.enPassantFile != noEnPassantFile {
		b.zobristHash ^= enPassantFileKeys[b.enPassantFile]
	}
	b.zobristHash ^= castleRightsKeys[b.castleRights]

	switch {
	case m.IsEnPassant():
		capSq := epCapturedSquare(to, pawnPushDir(us))
		u.capturedSquare = capSq
		u.capturedPiece = b.removePiece(capSq)
		b.relocatePiece(from, to)

	case m.IsCastle():
		b.relocatePiece(from, to)
		rank := from.Rank()
		if to.File() == 6 {
			u.rookFrom, u.rookTo = NewSquare(rank, 7), NewSquare(rank, 5)
		} else {
			u.rookFrom, u.rookTo = NewSquare(rank, 0), NewSquare(rank, 3)
		}
		b.relocatePiece(u.rookFrom, u.rookTo)

	default:
		if b.squares[to] != NoPiece {
			u.capturedSquare = to
			u.capturedPiece = b.removePiece(to)
		}
		b.relocatePiece(from, to)
		if m.IsPromotion() {
			b.removePiece(to)
			b.addPiece(to, NewPiece(us, m.PromotionType()))
		}
	}

	b.updateCastleRights(from, u.capturedSquare, moved, u.capturedPiece)

	if m.IsDoublePush() {
		b.enPassantFile = int8(from.File())
	} else {
		b.enPassantFile = noEnPassantFile
	}

	if moved.Type() == PieceTypePawn || u.capturedPiece != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}

	b.sideToMove = them
	b.zobristHash ^= blackToMoveKey
	b.zobristHash ^= castleRightsKeys[b.castleRights]
	if b.enPassantFile != noEnPassantFile {
		b.zobristHash ^= enPassantFileKeys[b.enPassantFile]
	}
	b.plyCounter++

	if b.InCheck(us) {
		b.applyUndo(u)
		return false
	}

	b.stateStack = append(b.stateStack, u)
	b.hashHistory = append(b.hashHistory, b.zobristHash)
	b.assertValid()
	return true
}

// UnmakeMove reverses the most recently made move, restoring the position
// exactly as it was beforehand (including the Zobrist hash, which is
// restored verbatim from the stack rather than re-derived incrementally,
// so any drift would show up as a mismatch against computeZobrist in a
// debug build rather than silently compounding).
func (b *Board) UnmakeMove() {
	n := len(b.stateStack)
	u := b.stateStack[n-1]
	b.stateStack = b.stateStack[:n-1]
	b.hashHistory = b.hashHistory[:len(b.hashHistory)-1]
	b.applyUndo(u)
	b.assertValid()
}

// applyUndo reverses a single undoState in place. Shared by UnmakeMove and
// MakeMove's own illegal-move rollback.
func (b *Board) applyUndo(u undoState) {
	move := u.move
	from, to := move.From(), move.To()

	switch {
	case move.IsCastle():
		b.relocatePiece(to, from)
		b.relocatePiece(u.rookTo, u.rookFrom)

	default:
		if move.IsPromotion() {
			b.removePiece(to)
			b.addPiece(to, u.movedPiece)
		}
		b.relocatePiece(to, from)
		if u.capturedPiece != NoPiece {
			b.addPiece(u.capturedSquare, u.capturedPiece)
		}
	}

	b.sideToMove = u.movedPiece.Color()
	b.castleRights = u.castleRights
	b.enPassantFile = u.enPassantFile
	b.halfmoveClock = u.halfmoveClock
	b.fullmoveNumber = u.fullmoveNumber
	b.zobristHash = u.zobristHash
	b.plyCounter--
}

// updateCastleRights clears rights made stale by a king move, a rook
// leaving its home square, or a rook being captured on its home square.
func (b *Board) updateCastleRights(from, capturedSquare Square, moved, captured Piece) {
	if moved.Type() == PieceTypeKing {
		if moved.Color() == White {
			b.castleRights &^= CastleWhiteKingside | CastleWhiteQueenside
		} else {
			b.castleRights &^= CastleBlackKingside | CastleBlackQueenside
		}
	}
	clearForRookSquare := func(sq Square) {
		switch sq {
		case A1:
			b.castleRights &^= CastleWhiteQueenside
		case H1:
			b.castleRights &^= CastleWhiteKingside
		case A8:
			b.castleRights &^= CastleBlackQueenside
		case H8:
			b.castleRights &^= CastleBlackKingside
		}
	}
	clearForRookSquare(from)
	if captured.Type() == PieceTypeRook {
		clearForRookSquare(capturedSquare)
	}
}
