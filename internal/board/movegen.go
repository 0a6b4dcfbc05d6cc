package board

// LegalMoves generates every legal move in the position. Candidate
// moves come from the per-piece pseudo-legal generators; each candidate
// is then played on a scratch copy and kept only if the mover's king is
// not attacked afterwards.
func (p *Position) LegalMoves() *MoveList {
	var pseudo MoveList
	p.generatePseudoLegal(&pseudo)

	legal := &MoveList{}
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if p.isLegal(m) {
			legal.Add(m)
		}
	}
	return legal
}

// PseudoLegalMoves generates moves consistent with piece movement and
// occupancy, without the king-safety filter.
func (p *Position) PseudoLegalMoves() *MoveList {
	ml := &MoveList{}
	p.generatePseudoLegal(ml)
	return ml
}

// HasLegalMoves reports whether any legal move exists, stopping at the
// first one found.
func (p *Position) HasLegalMoves() bool {
	var pseudo MoveList
	p.generatePseudoLegal(&pseudo)
	for i := 0; i < pseudo.Len(); i++ {
		if p.isLegal(pseudo.Get(i)) {
			return true
		}
	}
	return false
}

// isLegal simulates m on a scratch copy and probes king safety.
func (p *Position) isLegal(m Move) bool {
	us := p.SideToMove
	s := newScratch(p)
	s.apply(m, us)
	return !s.kingAttacked(us)
}

func (p *Position) generatePseudoLegal(ml *MoveList) {
	us := p.SideToMove
	occupied := p.AllOccupied
	enemies := p.Occupied[us.Other()]

	p.generatePawnMoves(ml, us, enemies, occupied)

	// Knights, then the sliders: attack table intersected with anything
	// that is not our own piece.
	for knights := p.Pieces[us][Knight]; knights != 0; {
		from := knights.PopLSB()
		for attacks := KnightAttacks(from) &^ p.Occupied[us]; attacks != 0; {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}
	for bishops := p.Pieces[us][Bishop]; bishops != 0; {
		from := bishops.PopLSB()
		for attacks := BishopAttacks(from, occupied) &^ p.Occupied[us]; attacks != 0; {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}
	for rooks := p.Pieces[us][Rook]; rooks != 0; {
		from := rooks.PopLSB()
		for attacks := RookAttacks(from, occupied) &^ p.Occupied[us]; attacks != 0; {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}
	for queens := p.Pieces[us][Queen]; queens != 0; {
		from := queens.PopLSB()
		for attacks := QueenAttacks(from, occupied) &^ p.Occupied[us]; attacks != 0; {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}

	kingBB := p.Pieces[us][King]
	if kingBB != 0 {
		from := kingBB.LSB()
		for attacks := KingAttacks(from) &^ p.Occupied[us]; attacks != 0; {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}

	p.generateCastlingMoves(ml, us)
}

// generatePawnMoves emits pushes, captures, promotions and en passant
// with setwise shifts over the whole pawn bitboard.
func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.Pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, capL, capR, promoRank Bitboard
	var forward int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty // double push through an empty third rank
		capL = pawns.NorthWest() & enemies
		capR = pawns.NorthEast() & enemies
		promoRank = Rank8
		forward = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		capL = pawns.SouthWest() & enemies
		capR = pawns.SouthEast() & enemies
		promoRank = Rank1
		forward = -8
	}

	for bb := push1 &^ promoRank; bb != 0; {
		to := bb.PopLSB()
		ml.Add(NewMove(Square(int(to)-forward), to))
	}
	for bb := push2; bb != 0; {
		to := bb.PopLSB()
		ml.Add(NewMove(Square(int(to)-2*forward), to))
	}
	for bb := capL &^ promoRank; bb != 0; {
		to := bb.PopLSB()
		ml.Add(NewMove(Square(int(to)-forward+1), to))
	}
	for bb := capR &^ promoRank; bb != 0; {
		to := bb.PopLSB()
		ml.Add(NewMove(Square(int(to)-forward-1), to))
	}

	// A pawn reaching the far rank yields one candidate per promotion
	// piece; each is filtered for king safety independently.
	for bb := push1 & promoRank; bb != 0; {
		to := bb.PopLSB()
		addPromotions(ml, Square(int(to)-forward), to)
	}
	for bb := capL & promoRank; bb != 0; {
		to := bb.PopLSB()
		addPromotions(ml, Square(int(to)-forward+1), to)
	}
	for bb := capR & promoRank; bb != 0; {
		to := bb.PopLSB()
		addPromotions(ml, Square(int(to)-forward-1), to)
	}

	// En passant: any pawn attacking the target square may take.
	if p.EnPassant != NoSquare {
		epBB := SquareBB(p.EnPassant)
		var attackers Bitboard
		if us == White {
			attackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			attackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for attackers != 0 {
			ml.Add(NewEnPassant(attackers.PopLSB(), p.EnPassant))
		}
	}
}

func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

// generateCastlingMoves emits castling candidates. Pseudo-legality here
// already includes the chess-specific conditions: the rights flag, an
// empty corridor, and a king that neither stands in nor passes through
// check. (The landing square is re-checked by the legality filter, but
// transit squares can only be checked here.)
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()

	kingFrom := E1
	ksRight, qsRight := WhiteKingSideCastle, WhiteQueenSideCastle
	if us == Black {
		kingFrom = E8
		ksRight, qsRight = BlackKingSideCastle, BlackQueenSideCastle
	}
	rank := kingFrom.Rank()
	fSq, gSq := NewSquare(5, rank), NewSquare(6, rank)
	dSq, cSq, bSq := NewSquare(3, rank), NewSquare(2, rank), NewSquare(1, rank)

	if p.CastlingRights&ksRight != 0 &&
		p.AllOccupied&(SquareBB(fSq)|SquareBB(gSq)) == 0 &&
		!p.IsSquareAttacked(kingFrom, them) &&
		!p.IsSquareAttacked(fSq, them) &&
		!p.IsSquareAttacked(gSq, them) {
		ml.Add(NewCastling(kingFrom, gSq))
	}

	if p.CastlingRights&qsRight != 0 &&
		p.AllOccupied&(SquareBB(bSq)|SquareBB(cSq)|SquareBB(dSq)) == 0 &&
		!p.IsSquareAttacked(kingFrom, them) &&
		!p.IsSquareAttacked(dSq, them) &&
		!p.IsSquareAttacked(cSq, them) {
		ml.Add(NewCastling(kingFrom, cSq))
	}
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
