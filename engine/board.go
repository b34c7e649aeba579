package engine

// CastleRights is a 4-bit mask of {White kingside, White queenside, Black
// kingside, Black queenside} castling availability.
type CastleRights uint8

const (
	CastleWhiteKingside CastleRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	CastleAll CastleRights = CastleWhiteKingside | CastleWhiteQueenside |
		CastleBlackKingside | CastleBlackQueenside
)

// noEnPassantFile is the "no en passant available" sentinel for
// Board.enPassantFile, matching spec.md §3's "8 = none" encoding.
const noEnPassantFile int8 = 8

// Board is the authoritative position representation: squares is the
// source of truth, and every other field (bitboards, piece lists, king
// squares, Zobrist hash) is a derived index kept in lockstep by addPiece /
// removePiece so legality and generation code never has to fall back to a
// linear scan of squares.
//
// Grounded on goosemg.Board (board.go), generalized to also carry the
// PieceList index the teacher's bitboard-only design omits (spec.md §3
// requires it) and to use individual typed fields for castle rights /
// en-passant file / halfmove clock rather than the teacher's combined
// occupancy-only view, matching the "plain struct is equally good" license
// spec.md §9 gives for the packed game-state word.
type Board struct {
	squares [64]Piece

	sideToMove Color
	plyCounter int

	castleRights   CastleRights
	enPassantFile  int8 // 0..7, or noEnPassantFile
	halfmoveClock  int  // fifty-move-rule counter, half-moves since last pawn move/capture
	fullmoveNumber int

	pieceLists [2][7]PieceList // indexed [color][PieceType]; king (6) unused
	kingSquare [2]Square

	bitboards [2][7]uint64 // indexed [color][PieceType]; all 1..6 populated
	occupancy [2]uint64    // occupancy[color], derived cache of bitboards OR'd together

	zobristHash uint64

	stateStack []undoState
	hashHistory []uint64
}

// undoState is one entry of the game-state stack spec.md §3 calls for: the
// minimum information needed to reverse a single make_move. A plain struct,
// per the explicit license in spec.md §9 ("a plain struct is equally
// good" as a packed word).
type undoState struct {
	move           Move
	movedPiece     Piece
	capturedPiece  Piece
	capturedSquare Square // differs from move.To() only for en passant
	castleRights   CastleRights
	enPassantFile  int8
	halfmoveClock  int
	fullmoveNumber int
	zobristHash    uint64
	rookFrom       Square // NoSquare unless this was a castle
	rookTo         Square
}

// NewEmptyBoard returns a Board with no pieces, white to move, no castling
// rights, and no en-passant square. Mainly useful for tests that place
// pieces by hand via SetPiece.
func NewEmptyBoard() *Board {
	b := &Board{enPassantFile: noEnPassantFile, kingSquare: [2]Square{NoSquare, NoSquare}}
	for c := 0; c < 2; c++ {
		for t := PieceTypePawn; t <= PieceTypeQueen; t++ {
			b.pieceLists[c][t] = NewPieceList()
		}
	}
	b.zobristHash = b.computeZobrist()
	return b
}

// SideToMove reports which color is to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// PlyCounter reports the total number of half-moves made since game start.
func (b *Board) PlyCounter() int { return b.plyCounter }

// CastleRights reports the current castling-rights mask.
func (b *Board) CastleRights() CastleRights { return b.castleRights }

// EnPassantSquare returns the current en-passant target square, or NoSquare
// if none is available. The target square is on rank 3 (White capturing)
// or rank 6 (Black capturing) — the square the double-pushed pawn skipped
// over, not the square it landed on.
func (b *Board) EnPassantSquare() Square {
	if b.enPassantFile == noEnPassantFile {
		return NoSquare
	}
	// sideToMove is whoever moves next, i.e. the side that could play the
	// capture: if that's Black, White was the one who just double-pushed,
	// so the skipped square is on rank 3; otherwise it's on rank 6.
	rank := 5
	if b.sideToMove == Black {
		rank = 2
	}
	return NewSquare(rank, int(b.enPassantFile))
}

// HalfmoveClock returns the fifty-move-rule half-move counter.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full-move counter (increments after Black moves).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// KingSquare returns the square of the given color's king.
func (b *Board) KingSquare(c Color) Square { return b.kingSquare[c] }

// PieceAt returns the piece occupying sq, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// PieceList exposes the (color, type) piece list for read-only iteration.
// Querying PieceTypeKing panics: kings aren't tracked in piece lists (see
// KingSquare).
func (b *Board) PieceList(c Color, t PieceType) *PieceList {
	if t == PieceTypeKing {
		panic("engine: kings are not tracked in piece lists, use KingSquare")
	}
	return &b.pieceLists[c][t]
}

// Bitboard returns the occupancy bitboard for one (color, type) class.
func (b *Board) Bitboard(c Color, t PieceType) uint64 { return b.bitboards[c][t] }

// ColorOccupancy returns the bitboard of all squares occupied by one color.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[c] }

// AllOccupancy returns the bitboard of every occupied square.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[White] | b.occupancy[Black] }

func sqBit(sq Square) uint64 { return uint64(1) << uint(sq) }

// addPiece places p on an empty square, updating every derived index and
// XOR-ing the piece into the incremental Zobrist hash. Callers must ensure
// sq is currently empty.
func (b *Board) addPiece(sq Square, p Piece) {
	b.squares[sq] = p
	c := p.Color()
	t := p.Type()
	bit := sqBit(sq)
	b.occupancy[c] |= bit
	b.bitboards[c][t] |= bit
	if t == PieceTypeKing {
		b.kingSquare[c] = sq
	} else {
		b.pieceLists[c][t].Add(sq)
	}
	b.zobristHash ^= pieceSquareKey(p, sq)
}

// removePiece clears sq and returns the piece that was there, updating every
// derived index and the incremental hash. If sq is empty it changes nothing
// and returns NoPiece.
func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	c := p.Color()
	t := p.Type()
	bit := sqBit(sq)
	b.squares[sq] = NoPiece
	b.occupancy[c] &^= bit
	b.bitboards[c][t] &^= bit
	if t == PieceTypeKing {
		b.kingSquare[c] = NoSquare
	} else {
		b.pieceLists[c][t].Remove(sq)
	}
	b.zobristHash ^= pieceSquareKey(p, sq)
	return p
}

// relocatePiece moves the piece on `from` (which must be occupied) to `to`
// (which must be empty), updating piece lists in place via PieceList.Move
// rather than a Remove+Add pair.
func (b *Board) relocatePiece(from, to Square) {
	p := b.squares[from]
	c := p.Color()
	t := p.Type()
	fromBit, toBit := sqBit(from), sqBit(to)

	b.squares[from] = NoPiece
	b.squares[to] = p
	b.occupancy[c] ^= fromBit | toBit
	b.bitboards[c][t] ^= fromBit | toBit
	if t == PieceTypeKing {
		b.kingSquare[c] = to
	} else {
		b.pieceLists[c][t].Move(from, to)
	}
	b.zobristHash ^= pieceSquareKey(p, from)
	b.zobristHash ^= pieceSquareKey(p, to)
}

// SetPiece places p on sq, replacing and returning whatever was there
// (NoPiece if the square was empty). Intended for test/position setup, not
// for playing moves — use MakeMove for that.
func (b *Board) SetPiece(sq Square, p Piece) Piece {
	prev := b.removePiece(sq)
	if p != NoPiece {
		b.addPiece(sq, p)
	}
	return prev
}

// InCheck reports whether the given color's king is currently attacked.
func (b *Board) InCheck(c Color) bool {
	ks := b.kingSquare[c]
	if ks == NoSquare {
		return false
	}
	return b.isAttackedBy(ks, c.Opponent(), b.AllOccupancy())
}

// Clone returns a deep copy of the board, suitable for handing to an AI
// implementation's Init so its search never touches the façade's board.
func (b *Board) Clone() *Board {
	nb := *b
	nb.stateStack = append([]undoState(nil), b.stateStack...)
	nb.hashHistory = append([]uint64(nil), b.hashHistory...)
	return &nb
}

// validate recomputes every derived index from squares and reports whether
// it matches what's currently cached. Intended for assertions in debug
// builds and tests, not hot paths — see DESIGN.md for the invariant-check
// policy this implements (spec.md §7).
func (b *Board) validate() bool {
	var occ [2]uint64
	var bbs [2][7]uint64
	var kings [2]Square = [2]Square{NoSquare, NoSquare}
	var lists [2][7]PieceList
	for c := 0; c < 2; c++ {
		for t := PieceTypePawn; t <= PieceTypeQueen; t++ {
			lists[c][t] = NewPieceList()
		}
	}

	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		c, t := p.Color(), p.Type()
		occ[c] |= sqBit(sq)
		bbs[c][t] |= sqBit(sq)
		if t == PieceTypeKing {
			kings[c] = sq
		} else {
			lists[c][t].Add(sq)
		}
	}

	if occ != b.occupancy || bbs != b.bitboards || kings != b.kingSquare {
		return false
	}
	for c := 0; c < 2; c++ {
		for t := PieceTypePawn; t <= PieceTypeQueen; t++ {
			want := lists[c][t].Squares()
			got := b.pieceLists[c][t].Squares()
			if len(want) != len(got) {
				return false
			}
			seen := make(map[Square]bool, len(want))
			for _, sq := range got {
				seen[sq] = true
			}
			for _, sq := range want {
				if !seen[sq] {
					return false
				}
			}
		}
	}
	return b.zobristHash == b.computeZobrist()
}
