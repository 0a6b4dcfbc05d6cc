package board

// scratchBoard is the throwaway placement state used by the legality
// filter: a value copy of the bitboards, cheap to take per candidate
// move and mutated without hash or counter bookkeeping. Simulating on a
// copy and then probing king safety covers discovered checks and the
// en passant double-removal case with no special-case pin logic.
type scratchBoard struct {
	Pieces      [2][6]Bitboard
	Occupied    [2]Bitboard
	AllOccupied Bitboard
	KingSquare  [2]Square
}

func newScratch(p *Position) scratchBoard {
	return scratchBoard{
		Pieces:      p.Pieces,
		Occupied:    p.Occupied,
		AllOccupied: p.AllOccupied,
		KingSquare:  p.KingSquare,
	}
}

// apply plays m for side us on the scratch board. No validation and no
// undo; the board is discarded after the king-safety probe.
func (s *scratchBoard) apply(m Move, us Color) {
	them := us.Other()
	from, to := m.From(), m.To()
	fromBB, toBB := SquareBB(from), SquareBB(to)

	var pt PieceType
	for t := Pawn; t <= King; t++ {
		if s.Pieces[us][t]&fromBB != 0 {
			pt = t
			break
		}
	}

	// Capture on the destination square.
	for t := Pawn; t <= King; t++ {
		if s.Pieces[them][t]&toBB != 0 {
			s.Pieces[them][t] &^= toBB
			s.Occupied[them] &^= toBB
			break
		}
	}

	// En passant removes the pawn behind the target square; both the
	// origin and the captured pawn's square end up vacated, which is
	// what exposes the horizontal-pin case to the king-safety probe.
	if m.IsEnPassant() {
		capBB := SquareBB(epCapturedSquare(to, us))
		s.Pieces[them][Pawn] &^= capBB
		s.Occupied[them] &^= capBB
	}

	s.Pieces[us][pt] ^= fromBB | toBB
	s.Occupied[us] ^= fromBB | toBB

	if pt == King {
		s.KingSquare[us] = to
	}

	if m.IsPromotion() {
		s.Pieces[us][Pawn] &^= toBB
		s.Pieces[us][m.Promotion()] |= toBB
	}

	if m.IsCastling() {
		rookFrom, rookTo := castleRookSquares(from, to)
		rookBB := SquareBB(rookFrom) | SquareBB(rookTo)
		s.Pieces[us][Rook] ^= rookBB
		s.Occupied[us] ^= rookBB
	}

	s.AllOccupied = s.Occupied[White] | s.Occupied[Black]
}

// kingAttacked reports whether the king of side side is attacked by the
// opponent on the scratch board.
func (s *scratchBoard) kingAttacked(side Color) bool {
	sq := s.KingSquare[side]
	by := side.Other()

	if pawnAttacks[side][sq]&s.Pieces[by][Pawn] != 0 {
		return true
	}
	if knightAttacks[sq]&s.Pieces[by][Knight] != 0 {
		return true
	}
	if kingAttacks[sq]&s.Pieces[by][King] != 0 {
		return true
	}
	if BishopAttacks(sq, s.AllOccupied)&(s.Pieces[by][Bishop]|s.Pieces[by][Queen]) != 0 {
		return true
	}
	if RookAttacks(sq, s.AllOccupied)&(s.Pieces[by][Rook]|s.Pieces[by][Queen]) != 0 {
		return true
	}
	return false
}
