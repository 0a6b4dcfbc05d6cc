package board

import "fmt"

// Move is an immutable move intent packed into 16 bits:
//
//	bits 0-5   origin square
//	bits 6-11  destination square
//	bits 12-13 promotion piece (0=Knight .. 3=Queen)
//	bits 14-15 kind (normal, promotion, en passant, castling)
//
// Legality is a property of (Position, Move); a Move by itself is just
// a pair of squares plus flags.
type Move uint16

const (
	flagNormal    uint16 = 0 << 14
	flagPromotion uint16 = 1 << 14
	flagEnPassant uint16 = 2 << 14
	flagCastling  uint16 = 3 << 14
)

// NoMove is the zero, invalid move.
const NoMove Move = 0

// NewMove builds a plain move (quiet move or ordinary capture).
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion builds a promotion to promo (Knight..Queen).
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promo-Knight)<<12 | Move(flagPromotion)
}

// NewEnPassant builds an en passant capture onto the target square.
func NewEnPassant(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(flagEnPassant)
}

// NewCastling builds a castling move expressed as the king's two-square
// step; the rook relocation is a side effect of application.
func NewCastling(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(flagCastling)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion piece; meaningful only when
// IsPromotion is true.
func (m Move) Promotion() PieceType {
	return PieceType((m>>12)&3) + Knight
}

func (m Move) flag() uint16 { return uint16(m) & 0xC000 }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.flag() == flagPromotion }

// IsEnPassant reports whether m is an en passant capture.
func (m Move) IsEnPassant() bool { return m.flag() == flagEnPassant }

// IsCastling reports whether m is a castling move.
func (m Move) IsCastling() bool { return m.flag() == flagCastling }

// IsCapture reports whether m captures a piece in pos.
func (m Move) IsCapture(pos *Position) bool {
	return m.IsEnPassant() || !pos.IsEmpty(m.To())
}

// IsDoublePush reports whether m is a two-square pawn advance in pos.
func (m Move) IsDoublePush(pos *Position) bool {
	if pos.PieceAt(m.From()).Type() != Pawn {
		return false
	}
	diff := int(m.To()) - int(m.From())
	return diff == 16 || diff == -16
}

// String returns the move in coordinate notation ("e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string("nbrq"[m.Promotion()-Knight])
	}
	return s
}

// ParseMove parses coordinate notation against pos, classifying
// castling and en passant from the board context.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	if from == to {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece %q", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece on %v", from)
	}
	switch {
	case piece.Type() == King && abs(int(to)-int(from)) == 2:
		return NewCastling(from, to), nil
	case piece.Type() == Pawn && to == pos.EnPassant:
		return NewEnPassant(from, to), nil
	}
	return NewMove(from, to), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MoveList is a fixed-capacity move accumulator; 256 exceeds the
// maximum number of moves in any reachable position.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends a move.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of accumulated moves.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Contains reports whether the list holds m.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the accumulated moves as a freshly allocated slice.
func (ml *MoveList) Slice() []Move {
	out := make([]Move, ml.count)
	copy(out, ml.moves[:ml.count])
	return out
}

// Undo captures every field MakeMove may change besides the piece
// placement itself, so UnmakeMove can restore the prior position
// bit-for-bit.
type Undo struct {
	Captured       Piece
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	Hash           uint64
	Checkers       Bitboard
}
