package board

import "testing"

// A move from a square onto itself shares its encoding with NoMove and
// must never come out of the parser.
func TestParseMoveRejectsSameSquare(t *testing.T) {
	pos := NewPosition()
	for _, s := range []string{"a1a1", "e2e2", "a1a1q"} {
		if m, err := ParseMove(s, pos); err == nil {
			t.Errorf("ParseMove(%q) = %v, want error", s, m)
		}
	}
}

func TestParseMoveClassification(t *testing.T) {
	pos := NewPosition()

	m, err := ParseMove("e2e4", pos)
	if err != nil {
		t.Fatalf("ParseMove(e2e4): %v", err)
	}
	if m.From() != E2 || m.To() != E4 || m.IsPromotion() || m.IsCastling() || m.IsEnPassant() {
		t.Errorf("e2e4 parsed as %v with unexpected flags", m)
	}

	m, err = ParseMove("e7e8q", pos)
	if err != nil {
		t.Fatalf("ParseMove(e7e8q): %v", err)
	}
	if !m.IsPromotion() || m.Promotion() != Queen {
		t.Errorf("e7e8q parsed as %v, want queen promotion", m)
	}

	castleReady, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err = ParseMove("e1g1", castleReady)
	if err != nil {
		t.Fatalf("ParseMove(e1g1): %v", err)
	}
	if !m.IsCastling() {
		t.Errorf("e1g1 parsed as %v, want castling", m)
	}
}
