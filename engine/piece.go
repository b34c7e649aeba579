package engine

// Piece encodes a colored chess piece in a single byte. The low three bits
// carry the colorless type (1..6); bit 3 carries color (0=White, 1=Black).
// NoPiece is the zero value so a freshly zeroed [64]Piece array reads as an
// empty board.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is the colorless type of a piece, used for table lookups that
// don't care which side owns the piece.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Type strips the color bit, returning the colorless piece type.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color reports which side owns the piece. NoPiece is conventionally White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// IsDiagonalSlider reports whether the piece slides on diagonals (bishop or queen).
func (p Piece) IsDiagonalSlider() bool {
	t := p.Type()
	return t == PieceTypeBishop || t == PieceTypeQueen
}

// IsOrthogonalSlider reports whether the piece slides on ranks/files (rook or queen).
func (p Piece) IsOrthogonalSlider() bool {
	t := p.Type()
	return t == PieceTypeRook || t == PieceTypeQueen
}

// NewPiece combines a color and colorless type into a concrete Piece.
// Returns NoPiece for PieceTypeNone.
func NewPiece(c Color, t PieceType) Piece {
	if t == PieceTypeNone {
		return NoPiece
	}
	if c == Black {
		return Piece(t) | 8
	}
	return Piece(t)
}

// fenChars maps each piece to its FEN character. NoPiece has no entry
// (Piece.String handles it separately); a lookup of a missing key yields
// the zero byte.
var fenChars = map[Piece]byte{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B',
	WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b',
	BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

var fenPieces = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop,
	'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop,
	'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	return string(fenChars[p])
}
