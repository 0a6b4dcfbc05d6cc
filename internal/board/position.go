package board

import (
	"fmt"
	"strings"
)

// CastlingRights is a bitmask of the four castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle CastlingRights = 1 << iota
	WhiteQueenSideCastle
	BlackKingSideCastle
	BlackQueenSideCastle

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle |
		BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling field ("KQkq", "-", ...).
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	if cr&WhiteKingSideCastle != 0 {
		sb.WriteByte('K')
	}
	if cr&WhiteQueenSideCastle != 0 {
		sb.WriteByte('Q')
	}
	if cr&BlackKingSideCastle != 0 {
		sb.WriteByte('k')
	}
	if cr&BlackQueenSideCastle != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// CanCastle reports whether color c still has the given castling right.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	var bit CastlingRights
	switch {
	case c == White && kingSide:
		bit = WhiteKingSideCastle
	case c == White:
		bit = WhiteQueenSideCastle
	case kingSide:
		bit = BlackKingSideCastle
	default:
		bit = BlackQueenSideCastle
	}
	return cr&bit != 0
}

// Position is the canonical board state: twelve piece bitboards plus
// derived occupancy, side to move, castling rights, en passant target
// and the move counters. It is a plain value; Copy is a struct copy and
// instances are not safe for concurrent mutation.
type Position struct {
	Pieces [2][6]Bitboard // [Color][PieceType]

	// Occupancy, kept in sync with Pieces on every mutation.
	Occupied    [2]Bitboard
	AllOccupied Bitboard

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // target square after a double push, else NoSquare
	HalfMoveClock  int    // plies since the last pawn move or capture
	FullMoveNumber int

	// Hash is the Zobrist signature of placement, side to move,
	// castling rights and en passant target.
	Hash uint64

	KingSquare [2]Square
	Checkers   Bitboard // pieces giving check to the side to move
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// PieceAt returns the piece on sq, NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	if p.AllOccupied&bb == 0 {
		return NoPiece
	}
	c := White
	if p.Occupied[Black]&bb != 0 {
		c = Black
	}
	for pt := Pawn; pt <= King; pt++ {
		if p.Pieces[c][pt]&bb != 0 {
			return NewPiece(pt, c)
		}
	}
	return NoPiece
}

// IsEmpty reports whether sq holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.AllOccupied&SquareBB(sq) == 0
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.Checkers != 0
}

func (p *Position) setPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	c, pt := piece.Color(), piece.Type()
	bb := SquareBB(sq)
	p.Pieces[c][pt] |= bb
	p.Occupied[c] |= bb
	p.AllOccupied |= bb
	if pt == King {
		p.KingSquare[c] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}
	bb := SquareBB(sq)
	p.Pieces[piece.Color()][piece.Type()] &^= bb
	p.Occupied[piece.Color()] &^= bb
	p.AllOccupied &^= bb
	return piece
}

func (p *Position) movePiece(from, to Square) {
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return
	}
	c, pt := piece.Color(), piece.Type()
	moveBB := SquareBB(from) | SquareBB(to)
	p.Pieces[c][pt] ^= moveBB
	p.Occupied[c] ^= moveBB
	p.AllOccupied ^= moveBB
	if pt == King {
		p.KingSquare[c] = to
	}
}

func (p *Position) updateOccupied() {
	p.Occupied[White] = Empty
	p.Occupied[Black] = Empty
	for pt := Pawn; pt <= King; pt++ {
		p.Occupied[White] |= p.Pieces[White][pt]
		p.Occupied[Black] |= p.Pieces[Black][pt]
	}
	p.AllOccupied = p.Occupied[White] | p.Occupied[Black]
}

func (p *Position) findKings() {
	p.KingSquare[White] = p.Pieces[White][King].LSB()
	p.KingSquare[Black] = p.Pieces[Black][King].LSB()
}

// Validate checks the structural invariants: exactly one king per side,
// no two piece bitboards overlapping, no pawns on the back ranks.
func (p *Position) Validate() error {
	if n := p.Pieces[White][King].PopCount(); n != 1 {
		return fmt.Errorf("white has %d kings", n)
	}
	if n := p.Pieces[Black][King].PopCount(); n != 1 {
		return fmt.Errorf("black has %d kings", n)
	}

	var seen Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if seen&p.Pieces[c][pt] != 0 {
				return fmt.Errorf("overlapping piece bitboards at %v", (seen & p.Pieces[c][pt]).LSB())
			}
			seen |= p.Pieces[c][pt]
		}
	}

	if (p.Pieces[White][Pawn]|p.Pieces[Black][Pawn])&(Rank1|Rank8) != 0 {
		return fmt.Errorf("pawn on a back rank")
	}
	return nil
}

// MakeMove applies a pseudo-legal move and returns the record needed to
// reverse it. It is total over structurally valid pseudo-legal moves
// and performs no legality checking; callers that need legality go
// through the move generator (or Game.Apply).
func (p *Position) MakeMove(m Move) Undo {
	undo := Undo{
		Captured:       NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		Hash:           p.Hash,
		Checkers:       p.Checkers,
	}

	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	pt := p.PieceAt(from).Type()

	p.Hash ^= zobristSideToMove
	p.Hash ^= zobristCastling[p.CastlingRights]
	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	p.EnPassant = NoSquare

	// Captures. En passant removes a pawn from a square other than the
	// destination; everything else captures on the destination.
	if m.IsEnPassant() {
		capSq := epCapturedSquare(to, us)
		undo.Captured = p.removePiece(capSq)
		p.Hash ^= zobristPiece[them][Pawn][capSq]
	} else if captured := p.PieceAt(to); captured != NoPiece {
		undo.Captured = captured
		p.removePiece(to)
		p.Hash ^= zobristPiece[them][captured.Type()][to]
	}

	p.movePiece(from, to)
	p.Hash ^= zobristPiece[us][pt][from]
	p.Hash ^= zobristPiece[us][pt][to]

	// Promotion swaps the arrived pawn for the chosen piece.
	if m.IsPromotion() {
		promo := m.Promotion()
		p.Pieces[us][Pawn] &^= SquareBB(to)
		p.Pieces[us][promo] |= SquareBB(to)
		p.Hash ^= zobristPiece[us][Pawn][to]
		p.Hash ^= zobristPiece[us][promo][to]
	}

	// Castling drags the rook along.
	if m.IsCastling() {
		rookFrom, rookTo := castleRookSquares(from, to)
		p.movePiece(rookFrom, rookTo)
		p.Hash ^= zobristPiece[us][Rook][rookFrom]
		p.Hash ^= zobristPiece[us][Rook][rookTo]
	}

	// Castling rights lapse when the king moves, and per side when a
	// rook leaves or is captured on its home square.
	if pt == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSideCastle
	}
	p.Hash ^= zobristCastling[p.CastlingRights]

	// A double push leaves the skipped square as the en passant target
	// for exactly one reply.
	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		ep := Square((int(from) + int(to)) / 2)
		p.EnPassant = ep
		p.Hash ^= zobristEnPassant[ep.File()]
	}

	if pt == Pawn || undo.Captured != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
	p.UpdateCheckers()

	return undo
}

// UnmakeMove reverses m, restoring the position that produced undo.
func (p *Position) UnmakeMove(m Move, undo Undo) {
	us := p.SideToMove.Other() // the side that made the move
	from, to := m.From(), m.To()

	p.SideToMove = us
	if us == Black {
		p.FullMoveNumber--
	}

	// A promoted piece reverts to a pawn before walking back.
	if m.IsPromotion() {
		p.Pieces[us][m.Promotion()] &^= SquareBB(to)
		p.Pieces[us][Pawn] |= SquareBB(to)
	}

	p.movePiece(to, from)

	if m.IsCastling() {
		rookFrom, rookTo := castleRookSquares(from, to)
		p.movePiece(rookTo, rookFrom)
	}

	if undo.Captured != NoPiece {
		capSq := to
		if m.IsEnPassant() {
			capSq = epCapturedSquare(to, us)
		}
		p.setPiece(undo.Captured, capSq)
	}

	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock
	p.Hash = undo.Hash
	p.Checkers = undo.Checkers
}

// epCapturedSquare is the square of the pawn removed by an en passant
// capture landing on the target square to, for the capturing side us.
func epCapturedSquare(to Square, us Color) Square {
	if us == White {
		return to - 8
	}
	return to + 8
}

// castleRookSquares maps a castling king move to the rook relocation on
// the same rank.
func castleRookSquares(kingFrom, kingTo Square) (rookFrom, rookTo Square) {
	if kingTo > kingFrom { // king side
		return NewSquare(7, kingFrom.Rank()), NewSquare(5, kingFrom.Rank())
	}
	return NewSquare(0, kingFrom.Rank()), NewSquare(3, kingFrom.Rank())
}

// String renders the position as a piece-per-square grid plus the state
// fields; a debugging aid, not a stable format.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %v\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %v\n", p.CastlingRights)
	fmt.Fprintf(&sb, "En passant: %v\n", p.EnPassant)
	fmt.Fprintf(&sb, "Halfmove clock: %d\n", p.HalfMoveClock)
	fmt.Fprintf(&sb, "Signature: %016x\n", p.Hash)
	return sb.String()
}
