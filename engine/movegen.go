package engine

import "math/bits"

// Precomputed attack tables, built once at process start. Grounded on
// goosemg.initAttackTables/initRays (knightMoves, kingMoves, pawnAttacks,
// rookRays/bishopRays), generalized from the teacher's separate rook/bishop
// ray arrays into a single rayAttacks[64][8] indexed by the Direction enum
// square.go already defines, so slider attack code reuses square.go's
// directionOffsets rather than keeping its own per-direction step table.
var knightAttacks [64]uint64
var kingAttacks [64]uint64
var pawnAttacks [2][64]uint64
var rayAttacks [64][8]uint64

var knightDeltas = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
var kingDeltas = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

var rookDirs = [4]Direction{DirUp, DirRight, DirDown, DirLeft}
var bishopDirs = [4]Direction{DirUpRight, DirDownRight, DirDownLeft, DirUpLeft}

func init() {
	for sq := Square(0); sq < 64; sq++ {
		rank, file := sq.Rank(), sq.File()

		var kn, ki uint64
		for _, d := range knightDeltas {
			if r, f := rank+d[0], file+d[1]; r >= 0 && r < 8 && f >= 0 && f < 8 {
				kn |= sqBit(NewSquare(r, f))
			}
		}
		for _, d := range kingDeltas {
			if r, f := rank+d[0], file+d[1]; r >= 0 && r < 8 && f >= 0 && f < 8 {
				ki |= sqBit(NewSquare(r, f))
			}
		}
		knightAttacks[sq] = kn
		kingAttacks[sq] = ki

		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= sqBit(NewSquare(rank+1, file-1))
			}
			if file < 7 {
				pawnAttacks[White][sq] |= sqBit(NewSquare(rank+1, file+1))
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= sqBit(NewSquare(rank-1, file-1))
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= sqBit(NewSquare(rank-1, file+1))
			}
		}

		// This init runs before square.go's (files initialize in name
		// order), so squaresToEdge is still zero here; walk each ray until
		// it leaves the board or wraps to the other edge instead.
		for d := Direction(0); d < 8; d++ {
			var ray uint64
			cur := sq
			for {
				next := int(cur) + directionOffsets[d]
				if next < 0 || next > 63 || absInt(Square(next).File()-cur.File()) > 1 {
					break
				}
				cur = Square(next)
				ray |= sqBit(cur)
			}
			rayAttacks[sq][d] = ray
		}
	}
}

// slidingAttacks walks each of the four rays in dirs from sq, stopping at
// (and including) the first blocker in occ along each ray.
func slidingAttacks(sq Square, occ uint64, dirs [4]Direction) uint64 {
	var attacks uint64
	for _, d := range dirs {
		ray := rayAttacks[sq][d]
		blockers := ray & occ
		if blockers == 0 {
			attacks |= ray
			continue
		}
		var first Square
		if directionOffsets[d] > 0 {
			first = Square(bits.TrailingZeros64(blockers))
		} else {
			first = Square(63 - bits.LeadingZeros64(blockers))
		}
		attacks |= ray &^ rayAttacks[first][d]
	}
	return attacks
}

func rookAttacks(sq Square, occ uint64) uint64   { return slidingAttacks(sq, occ, rookDirs) }
func bishopAttacks(sq Square, occ uint64) uint64 { return slidingAttacks(sq, occ, bishopDirs) }

// pieceAttacks dispatches to the right attack table/function for a
// non-pawn, non-king piece type. Pawns and kings have enough special-cased
// behavior (direction asymmetry, castling) that they're generated directly
// rather than through this table.
func pieceAttacks(t PieceType, sq Square, occ uint64) uint64 {
	switch t {
	case PieceTypeKnight:
		return knightAttacks[sq]
	case PieceTypeBishop:
		return bishopAttacks(sq, occ)
	case PieceTypeRook:
		return rookAttacks(sq, occ)
	case PieceTypeQueen:
		return rookAttacks(sq, occ) | bishopAttacks(sq, occ)
	default:
		return 0
	}
}

// isAttackedBy reports whether sq is attacked by any piece of color `by`,
// given the supplied occupancy (which callers may have perturbed to probe
// a hypothetical position, e.g. the en passant discovered-check check).
// Grounded on goosemg.isSquareAttackedWithOcc.
func (b *Board) isAttackedBy(sq Square, by Color, occ uint64) bool {
	if pawnAttacks[by.Opponent()][sq]&b.bitboards[by][PieceTypePawn] != 0 {
		return true
	}
	if knightAttacks[sq]&b.bitboards[by][PieceTypeKnight] != 0 {
		return true
	}
	if b.kingSquare[by] != NoSquare && kingAttacks[sq]&sqBit(b.kingSquare[by]) != 0 {
		return true
	}
	rq := b.bitboards[by][PieceTypeRook] | b.bitboards[by][PieceTypeQueen]
	if rookAttacks(sq, occ)&rq != 0 {
		return true
	}
	bq := b.bitboards[by][PieceTypeBishop] | b.bitboards[by][PieceTypeQueen]
	if bishopAttacks(sq, occ)&bq != 0 {
		return true
	}
	return false
}

// IsAttacked reports whether sq is attacked by color `by` in the current
// position.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	return b.isAttackedBy(sq, by, b.AllOccupancy())
}

// rayDirection returns the Direction pointing from `from` toward `to` along
// a shared rank, file, or diagonal, if any. Used to build the check-block
// mask for a sliding checker without a second set of per-direction tables.
func rayDirection(from, to Square) (Direction, bool) {
	for d := Direction(0); d < 8; d++ {
		if rayAttacks[from][d]&sqBit(to) != 0 {
			return d, true
		}
	}
	return 0, false
}

// computeCheckAndPins reports the current side's check state and, for each
// square, the ray (if any) a piece on that square is pinned to. Grounded on
// goosemg.computeCheckAndPins, generalized to the single rayAttacks table
// and PieceType-based piece identification (the teacher switches on an
// internal numeric type code; this package already has PieceType for that).
func (b *Board) computeCheckAndPins(side Color) (inCheck, doubleCheck bool, checkMask uint64, pinLine [64]uint64) {
	them := side.Opponent()
	ks := b.kingSquare[side]
	occ := b.AllOccupancy()

	var checkers uint64
	checkers |= pawnAttacks[side][ks] & b.bitboards[them][PieceTypePawn]
	checkers |= knightAttacks[ks] & b.bitboards[them][PieceTypeKnight]
	checkers |= bishopAttacks(ks, occ) & (b.bitboards[them][PieceTypeBishop] | b.bitboards[them][PieceTypeQueen])
	checkers |= rookAttacks(ks, occ) & (b.bitboards[them][PieceTypeRook] | b.bitboards[them][PieceTypeQueen])

	inCheck = checkers != 0
	doubleCheck = inCheck && checkers&(checkers-1) != 0

	if inCheck && !doubleCheck {
		c := Square(bits.TrailingZeros64(checkers))
		switch b.squares[c].Type() {
		case PieceTypeKnight, PieceTypePawn:
			checkMask = sqBit(c)
		default:
			if d, ok := rayDirection(ks, c); ok {
				checkMask = rayAttacks[ks][d] &^ rayAttacks[c][d]
			} else {
				checkMask = sqBit(c)
			}
		}
	}

	orthSliders := b.bitboards[them][PieceTypeRook] | b.bitboards[them][PieceTypeQueen]
	diagSliders := b.bitboards[them][PieceTypeBishop] | b.bitboards[them][PieceTypeQueen]
	for d := Direction(0); d < 8; d++ {
		if (d < 4 && orthSliders == 0) || (d >= 4 && diagSliders == 0) {
			continue // no enemy slider can pin along this orientation
		}
		ray := rayAttacks[ks][d]
		blockers := ray & occ
		if blockers == 0 {
			continue
		}
		var first Square
		if directionOffsets[d] > 0 {
			first = Square(bits.TrailingZeros64(blockers))
		} else {
			first = Square(63 - bits.LeadingZeros64(blockers))
		}
		if sqBit(first)&b.occupancy[side] == 0 {
			continue // nearest piece on this ray is the opponent's, not a pin candidate
		}
		beyond := rayAttacks[first][d] & occ
		if beyond == 0 {
			continue
		}
		var next Square
		if directionOffsets[d] > 0 {
			next = Square(bits.TrailingZeros64(beyond))
		} else {
			next = Square(63 - bits.LeadingZeros64(beyond))
		}
		p := b.squares[next]
		if p.Color() != them {
			continue
		}
		isPinner := p.Type() == PieceTypeQueen
		if d < 4 {
			isPinner = isPinner || p.Type() == PieceTypeRook
		} else {
			isPinner = isPinner || p.Type() == PieceTypeBishop
		}
		if isPinner {
			pinLine[first] = rayAttacks[ks][d] &^ rayAttacks[next][d]
		}
	}

	return inCheck, doubleCheck, checkMask, pinLine
}

// Move-generation filters, mirroring goosemg's genAll/genCaptures/genQuiets.
const (
	genAll = iota
	genCaptures
	genQuiets
)

func appendPromotions(moves *[]Move, from, to Square) {
	*moves = append(*moves,
		NewMove(from, to, FlagPromoteQueen),
		NewMove(from, to, FlagPromoteRook),
		NewMove(from, to, FlagPromoteBishop),
		NewMove(from, to, FlagPromoteKnight),
	)
}

func (b *Board) generatePawnMoves(moves *[]Move, us Color, allOcc, oppOcc uint64, inCheck bool, checkMask uint64, pinLine [64]uint64, filter int) {
	them := us.Opponent()
	pushDir, startRank, promoRank := 8, 1, 7
	if us == Black {
		pushDir, startRank, promoRank = -8, 6, 0
	}
	epSq := b.EnPassantSquare()

	for _, from := range b.pieceLists[us][PieceTypePawn].Squares() {
		pin := pinLine[from]

		if one := Square(int(from) + pushDir); one >= 0 && one < 64 && b.squares[one] == NoPiece && filter != genCaptures {
			oneBit := sqBit(one)
			if (pin == 0 || pin&oneBit != 0) && (!inCheck || checkMask&oneBit != 0) {
				if one.Rank() == promoRank {
					appendPromotions(moves, from, one)
				} else {
					*moves = append(*moves, NewMove(from, one, FlagNone))
				}
			}
			if from.Rank() == startRank {
				two := Square(int(from) + 2*pushDir)
				if b.squares[two] == NoPiece {
					twoBit := sqBit(two)
					if (pin == 0 || pin&twoBit != 0) && (!inCheck || checkMask&twoBit != 0) {
						*moves = append(*moves, NewMove(from, two, FlagDoublePush))
					}
				}
			}
		}

		if filter != genQuiets {
			caps := pawnAttacks[us][from] & oppOcc
			for caps != 0 {
				to := Square(bits.TrailingZeros64(caps))
				caps &= caps - 1
				toBit := sqBit(to)
				if pin != 0 && pin&toBit == 0 {
					continue
				}
				if inCheck && checkMask&toBit == 0 {
					continue
				}
				if to.Rank() == promoRank {
					appendPromotions(moves, from, to)
				} else {
					*moves = append(*moves, NewMove(from, to, FlagNone))
				}
			}

			if epSq != NoSquare && pawnAttacks[us][from]&sqBit(epSq) != 0 {
				capSq := epCapturedSquare(epSq, pushDir)
				occAfter := (allOcc &^ sqBit(from) &^ sqBit(capSq)) | sqBit(epSq)
				// The captured pawn is gone after the move, so it must not
				// count as an attacker (it may be the piece giving check).
				b.bitboards[them][PieceTypePawn] &^= sqBit(capSq)
				exposed := b.isAttackedBy(b.kingSquare[us], them, occAfter)
				b.bitboards[them][PieceTypePawn] |= sqBit(capSq)
				if !exposed {
					*moves = append(*moves, NewMove(from, epSq, FlagEnPassant))
				}
			}
		}
	}
}

func (b *Board) generatePieceMoves(moves *[]Move, us Color, t PieceType, allOcc, ownOcc, oppOcc uint64, inCheck bool, checkMask uint64, pinLine [64]uint64, filter int) {
	for _, from := range b.pieceLists[us][t].Squares() {
		targets := pieceAttacks(t, from, allOcc) &^ ownOcc
		if pin := pinLine[from]; pin != 0 {
			targets &= pin
		}
		if inCheck {
			targets &= checkMask
		}
		switch filter {
		case genCaptures:
			targets &= oppOcc
		case genQuiets:
			targets &^= oppOcc
		}
		for targets != 0 {
			to := Square(bits.TrailingZeros64(targets))
			targets &= targets - 1
			*moves = append(*moves, NewMove(from, to, FlagNone))
		}
	}
}

func (b *Board) generateKingMoves(moves *[]Move, us Color, allOcc, ownOcc, oppOcc uint64, inCheck bool, filter int) {
	them := us.Opponent()
	from := b.kingSquare[us]

	targets := kingAttacks[from] &^ ownOcc
	for targets != 0 {
		to := Square(bits.TrailingZeros64(targets))
		targets &= targets - 1
		isCap := sqBit(to)&oppOcc != 0
		if filter == genCaptures && !isCap {
			continue
		}
		if filter == genQuiets && isCap {
			continue
		}
		occAfter := (allOcc &^ sqBit(from) &^ sqBit(to)) | sqBit(to)
		if b.isAttackedBy(to, them, occAfter) {
			continue
		}
		*moves = append(*moves, NewMove(from, to, FlagNone))
	}

	if filter == genCaptures || inCheck {
		return
	}

	rank := 0
	if us == Black {
		rank = 7
	}
	if from != NewSquare(rank, 4) {
		return
	}

	kingsideRight, queensideRight := CastleWhiteKingside, CastleWhiteQueenside
	if us == Black {
		kingsideRight, queensideRight = CastleBlackKingside, CastleBlackQueenside
	}

	if b.castleRights&kingsideRight != 0 {
		pass1, dest := NewSquare(rank, 5), NewSquare(rank, 6)
		rookSq := NewSquare(rank, 7)
		if b.squares[pass1] == NoPiece && b.squares[dest] == NoPiece &&
			b.squares[rookSq] == NewPiece(us, PieceTypeRook) &&
			!b.isAttackedBy(pass1, them, allOcc) && !b.isAttackedBy(dest, them, allOcc) {
			*moves = append(*moves, NewMove(from, dest, FlagCastle))
		}
	}
	if b.castleRights&queensideRight != 0 {
		pass1, dest, empty3 := NewSquare(rank, 3), NewSquare(rank, 2), NewSquare(rank, 1)
		rookSq := NewSquare(rank, 0)
		if b.squares[pass1] == NoPiece && b.squares[dest] == NoPiece && b.squares[empty3] == NoPiece &&
			b.squares[rookSq] == NewPiece(us, PieceTypeRook) &&
			!b.isAttackedBy(pass1, them, allOcc) && !b.isAttackedBy(dest, them, allOcc) {
			*moves = append(*moves, NewMove(from, dest, FlagCastle))
		}
	}
}

// generateMovesFilteredInto is the core generator behind GenerateMoves,
// GenerateCaptures, and GenerateQuiets.
func (b *Board) generateMovesFilteredInto(dst []Move, filter int) []Move {
	moves := dst[:0]
	us := b.sideToMove
	ownOcc := b.occupancy[us]
	oppOcc := b.occupancy[us.Opponent()]
	allOcc := ownOcc | oppOcc

	inCheck, doubleCheck, checkMask, pinLine := b.computeCheckAndPins(us)

	if !doubleCheck {
		b.generatePawnMoves(&moves, us, allOcc, oppOcc, inCheck, checkMask, pinLine, filter)
		for _, t := range [4]PieceType{PieceTypeKnight, PieceTypeBishop, PieceTypeRook, PieceTypeQueen} {
			b.generatePieceMoves(&moves, us, t, allOcc, ownOcc, oppOcc, inCheck, checkMask, pinLine, filter)
		}
	}
	b.generateKingMoves(&moves, us, allOcc, ownOcc, oppOcc, inCheck, filter)

	return moves
}

// GenerateMovesInto appends every legal move for the side to move into dst
// and returns it, reusing dst's backing array when its capacity allows.
func (b *Board) GenerateMovesInto(dst []Move) []Move { return b.generateMovesFilteredInto(dst, genAll) }

// GenerateMoves returns a freshly allocated slice of every legal move for
// the side to move.
func (b *Board) GenerateMoves() []Move { return b.GenerateMovesInto(make([]Move, 0, 64)) }

// GenerateCapturesInto appends legal captures (including en passant and
// capture-promotions) into dst.
func (b *Board) GenerateCapturesInto(dst []Move) []Move {
	return b.generateMovesFilteredInto(dst, genCaptures)
}

// GenerateCaptures returns a freshly allocated slice of legal captures.
func (b *Board) GenerateCaptures() []Move { return b.GenerateCapturesInto(make([]Move, 0, 32)) }

// GenerateQuietsInto appends legal non-capturing moves (including
// non-capturing promotions and castling) into dst.
func (b *Board) GenerateQuietsInto(dst []Move) []Move {
	return b.generateMovesFilteredInto(dst, genQuiets)
}

// GenerateQuiets returns a freshly allocated slice of legal non-capturing moves.
func (b *Board) GenerateQuiets() []Move { return b.GenerateQuietsInto(make([]Move, 0, 64)) }

// Perft counts leaf positions reachable from b at exactly the given depth,
// by fully making and unmaking every move in the tree. Grounded on
// goosemg.Perft; used by the engine's test suite to validate move
// generation against known reference counts (spec.md §8).
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateMoves() {
		if !b.MakeMove(m) {
			continue
		}
		nodes += Perft(b, depth-1)
		b.UnmakeMove()
	}
	return nodes
}

// PerftDivide breaks Perft's count down by root move, for debugging a move
// generator disagreement against a reference engine.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateMoves() {
		if !b.MakeMove(m) {
			continue
		}
		result[m] = Perft(b, depth-1)
		b.UnmakeMove()
	}
	return result
}
