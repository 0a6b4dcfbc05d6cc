package board

import "strings"

// ToSAN renders m in Standard Algebraic Notation for the position it is
// about to be played in.
func (m Move) ToSAN(pos *Position) string {
	if m == NoMove {
		return "-"
	}

	from, to := m.From(), m.To()
	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return m.String()
	}

	if m.IsCastling() {
		if to > from {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder
	pt := piece.Type()

	if pt != Pawn {
		sb.WriteByte("PNBRQK"[pt])
		sb.WriteString(disambiguate(pos, m, pt))
	}

	if m.IsCapture(pos) {
		if pt == Pawn {
			sb.WriteByte('a' + byte(from.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte("PNBRQK"[m.Promotion()])
	}

	// Check and mate markers need the successor position.
	next := pos.Copy()
	next.MakeMove(m)
	if next.IsCheckmate() {
		sb.WriteByte('#')
	} else if next.InCheck() {
		sb.WriteByte('+')
	}

	return sb.String()
}

// disambiguate returns the origin qualifier required when several
// pieces of the same type can reach the destination.
func disambiguate(pos *Position, m Move, pt PieceType) string {
	from, to := m.From(), m.To()
	pieces := pos.Pieces[pos.SideToMove][pt]

	var rivals []Square
	legal := pos.LegalMoves()
	for i := 0; i < legal.Len(); i++ {
		other := legal.Get(i)
		if other.To() != to || other.From() == from {
			continue
		}
		if pieces.IsSet(other.From()) {
			rivals = append(rivals, other.From())
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string('a' + byte(from.File()))
	case !sameRank:
		return string('1' + byte(from.Rank()))
	}
	return from.String()
}

// ParseSAN resolves a SAN string against the position's legal moves.
// Returns NoMove when nothing matches.
func ParseSAN(s string, pos *Position) (Move, error) {
	s = strings.TrimSpace(s)

	if s == "O-O" || s == "0-0" {
		if pos.SideToMove == White {
			return NewCastling(E1, G1), nil
		}
		return NewCastling(E8, G8), nil
	}
	if s == "O-O-O" || s == "0-0-0" {
		if pos.SideToMove == White {
			return NewCastling(E1, C1), nil
		}
		return NewCastling(E8, C8), nil
	}

	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSuffix(s, "#")

	promo := NoPieceType
	if idx := strings.Index(s, "="); idx >= 0 && idx+1 < len(s) {
		switch s[idx+1] {
		case 'N':
			promo = Knight
		case 'B':
			promo = Bishop
		case 'R':
			promo = Rook
		case 'Q':
			promo = Queen
		}
		s = s[:idx]
	}

	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	pt := Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		switch s[0] {
		case 'N':
			pt = Knight
		case 'B':
			pt = Bishop
		case 'R':
			pt = Rook
		case 'Q':
			pt = Queen
		case 'K':
			pt = King
		}
		s = s[1:]
	}

	if len(s) < 2 {
		return NoMove, nil
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NoMove, err
	}
	s = s[:len(s)-2]

	fromFile, fromRank := -1, -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			fromFile = int(c - 'a')
		case c >= '1' && c <= '8':
			fromRank = int(c - '1')
		}
	}

	legal := pos.LegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.To() != dest {
			continue
		}
		from := m.From()
		if pos.PieceAt(from).Type() != pt {
			continue
		}
		if fromFile >= 0 && from.File() != fromFile {
			continue
		}
		if fromRank >= 0 && from.Rank() != fromRank {
			continue
		}
		if isCapture && !m.IsCapture(pos) {
			continue
		}
		if promo != NoPieceType && (!m.IsPromotion() || m.Promotion() != promo) {
			continue
		}
		return m, nil
	}
	return NoMove, nil
}
