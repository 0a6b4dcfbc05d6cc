package board

import "testing"

var roundTripFENs = []string{
	StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
}

// Make/unmake must restore every field of the position, not just the
// signature, for every legal move.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	for _, fen := range roundTripFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		before := *pos

		moves := pos.LegalMoves()
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			undo := pos.MakeMove(m)
			pos.UnmakeMove(m, undo)
			if *pos != before {
				t.Errorf("%q: %v does not round-trip:\ngot  %v\nwant %v", fen, m, pos, &before)
			}
		}
	}
}

// The incrementally maintained hash must always equal a from-scratch
// recomputation after a move.
func TestIncrementalHashMatchesRecompute(t *testing.T) {
	for _, fen := range roundTripFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		moves := pos.LegalMoves()
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			undo := pos.MakeMove(m)
			if pos.Hash != pos.ComputeHash() {
				t.Errorf("%q: hash drift after %v: incremental %x, recomputed %x",
					fen, m, pos.Hash, pos.ComputeHash())
			}
			pos.UnmakeMove(m, undo)
		}
	}
}

func TestCastlingRightsRevocation(t *testing.T) {
	tests := []struct {
		name string
		uci  string
		want CastlingRights
	}{
		{"king move drops both white rights", "e1d1", BlackKingSideCastle | BlackQueenSideCastle},
		{"a1 rook move drops white queen side", "a1b1", WhiteKingSideCastle | BlackKingSideCastle | BlackQueenSideCastle},
		{"h1 rook move drops white king side", "h1g1", WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle},
		{"capture on h8 drops black king side", "h1h8", WhiteQueenSideCastle | BlackQueenSideCastle},
	}

	for _, tc := range tests {
		pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		m, err := ParseMove(tc.uci, pos)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", tc.uci, err)
		}
		pos.MakeMove(m)
		if pos.CastlingRights != tc.want {
			t.Errorf("%s: rights = %v, want %v", tc.name, pos.CastlingRights, tc.want)
		}
	}
}

func TestEnPassantTargetLifecycle(t *testing.T) {
	pos := NewPosition()

	m, _ := ParseMove("e2e4", pos)
	undo := pos.MakeMove(m)
	if pos.EnPassant != E3 {
		t.Errorf("after e2e4: en passant target = %v, want e3", pos.EnPassant)
	}
	pos.UnmakeMove(m, undo)
	if pos.EnPassant != NoSquare {
		t.Errorf("after undo: en passant target = %v, want -", pos.EnPassant)
	}

	// A single push must not set a target.
	m, _ = ParseMove("e2e3", pos)
	pos.MakeMove(m)
	if pos.EnPassant != NoSquare {
		t.Errorf("after e2e3: en passant target = %v, want -", pos.EnPassant)
	}
}

func TestHalfmoveClock(t *testing.T) {
	g := NewGame()
	mustApply(t, g, "g1f3")
	if c := g.Position().HalfMoveClock; c != 1 {
		t.Errorf("after knight move: clock = %d, want 1", c)
	}
	mustApply(t, g, "e7e5")
	if c := g.Position().HalfMoveClock; c != 0 {
		t.Errorf("after pawn move: clock = %d, want 0", c)
	}
	mustApply(t, g, "f3e5")
	if c := g.Position().HalfMoveClock; c != 0 {
		t.Errorf("after capture: clock = %d, want 0", c)
	}
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range roundTripFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("FEN round trip: got %q, want %q", got, fen)
		}
	}
}

func TestParseFENRejectsImpossibleEnPassant(t *testing.T) {
	for _, fen := range []string{
		// Target on a rank no double push can produce.
		"rnbqkbnr/ppp1pppp/8/3p4/8/8/PPPPPPPP/RNBQKBNR w KQkq d5 0 2",
		// Rank belonging to the wrong side to move.
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e3 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/8/8/PPPPPPPP/RNBQKBNR b KQkq d6 0 2",
	} {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) succeeded, want error", fen)
		}
	}

	for _, fen := range []string{
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/8/8/PPPPPPPP/RNBQKBNR w KQkq d6 0 2",
	} {
		if _, err := ParseFEN(fen); err != nil {
			t.Errorf("ParseFEN(%q): %v", fen, err)
		}
	}
}

func TestValidateDetectsOverlap(t *testing.T) {
	pos := NewPosition()
	if err := pos.Validate(); err != nil {
		t.Fatalf("starting position invalid: %v", err)
	}

	// Force a knight onto an occupied pawn square.
	pos.Pieces[White][Knight] |= SquareBB(E2)
	if err := pos.Validate(); err == nil {
		t.Error("overlapping bitboards not detected")
	}
}
