package engine

// Move packs a chess move into 16 bits: bits 0-5 are the origin square,
// bits 6-11 the destination square, bits 12-15 a 4-bit flag. This differs
// from the 32-bit, piece-embedding move encoding the teacher's goosemg
// package uses (which stores moved/captured/promotion pieces directly in
// the word for speed) — the spec calls for the tighter 16-bit form, so the
// moved and captured pieces are looked up from the board at apply time
// instead of being carried in the move itself (see the movedPiece /
// capturedPiece fields MakeMove records in undoState).
type Move uint16

// MoveNone is the all-zero sentinel: an invalid/absent move.
const MoveNone Move = 0

const (
	moveFromMask = 0x3F
	moveToShift  = 6
	moveToMask   = 0x3F
	moveFlagShift = 12
	moveFlagMask  = 0xF
)

// Move flags. The top bit of the nibble (0x8) marks promotions; for a
// promotion move the remaining three bits are the promoted PieceType code,
// so flag&0b111 == promoted type exactly as spec.md §4.4 requires.
const (
	FlagNone       = 0x0
	FlagCastle     = 0x1
	FlagEnPassant  = 0x4
	FlagDoublePush = 0x5

	flagPromoBit = 0x8

	FlagPromoteKnight = flagPromoBit | int(PieceTypeKnight)
	FlagPromoteBishop = flagPromoBit | int(PieceTypeBishop)
	FlagPromoteRook   = flagPromoBit | int(PieceTypeRook)
	FlagPromoteQueen  = flagPromoBit | int(PieceTypeQueen)
)

// NewMove constructs a Move from its three fields. flag must fit in 4 bits.
func NewMove(from, to Square, flag int) Move {
	return Move(uint16(from)&moveFromMask |
		(uint16(to)&moveToMask)<<moveToShift |
		(uint16(flag)&moveFlagMask)<<moveFlagShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & moveFromMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> moveToShift) & moveToMask) }

// Flag returns the raw 4-bit flag.
func (m Move) Flag() int { return int((m >> moveFlagShift) & moveFlagMask) }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flag()&flagPromoBit != 0 }

// PromotionType returns the promoted piece's colorless type, or
// PieceTypeNone if this isn't a promotion.
func (m Move) PromotionType() PieceType {
	if !m.IsPromotion() {
		return PieceTypeNone
	}
	return PieceType(m.Flag() & 0x7)
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { return m.Flag() == FlagCastle }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

// IsDoublePush reports whether the move is a pawn double push.
func (m Move) IsDoublePush() bool { return m.Flag() == FlagDoublePush }

// IsValid reports whether the move is not the all-zero sentinel. A
// syntactically non-zero move is not necessarily legal; legality is only
// established by having come out of GenerateMoves for the current position.
func (m Move) IsValid() bool { return m != MoveNone }

func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		switch m.PromotionType() {
		case PieceTypeQueen:
			s += "q"
		case PieceTypeRook:
			s += "r"
		case PieceTypeBishop:
			s += "b"
		case PieceTypeKnight:
			s += "n"
		}
	}
	return s
}
