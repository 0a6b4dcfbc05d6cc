package board

// Color identifies a side, White or Black.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoColor"
}

// PieceType is the closed enumeration of piece kinds. The numeric order
// is relied on by the move encoding (promotion pieces are Knight..Queen).
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

func (pt PieceType) String() string {
	names := [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if pt >= NoPieceType {
		return "None"
	}
	return names[pt]
}

// Piece packs a PieceType and Color into one byte: type + 6*color.
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn) + 6*Piece(White)
	WhiteKnight Piece = Piece(Knight) + 6*Piece(White)
	WhiteBishop Piece = Piece(Bishop) + 6*Piece(White)
	WhiteRook   Piece = Piece(Rook) + 6*Piece(White)
	WhiteQueen  Piece = Piece(Queen) + 6*Piece(White)
	WhiteKing   Piece = Piece(King) + 6*Piece(White)
	BlackPawn   Piece = Piece(Pawn) + 6*Piece(Black)
	BlackKnight Piece = Piece(Knight) + 6*Piece(Black)
	BlackBishop Piece = Piece(Bishop) + 6*Piece(Black)
	BlackRook   Piece = Piece(Rook) + 6*Piece(Black)
	BlackQueen  Piece = Piece(Queen) + 6*Piece(Black)
	BlackKing   Piece = Piece(King) + 6*Piece(Black)
	NoPiece     Piece = 12
)

// NewPiece combines a type and color into a Piece.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + 6*Piece(c)
}

// Type returns the piece kind.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the piece color.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the FEN letter of the piece, uppercase for white.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	return string("PNBRQKpnbrqk"[p])
}

// PieceFromChar converts a FEN letter into a Piece, NoPiece if invalid.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	}
	return NoPiece
}
