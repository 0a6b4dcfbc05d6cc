package board

import (
	"errors"
	"testing"
)

// mustApply commits a coordinate-notation move or fails the test.
func mustApply(t *testing.T, g *Game, uci string) {
	t.Helper()
	m, err := ParseMove(uci, g.Position())
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", uci, err)
	}
	if err := g.Apply(m); err != nil {
		t.Fatalf("Apply(%q): %v", uci, err)
	}
}

func TestNewGameStartingPosition(t *testing.T) {
	g := NewGame()
	if fen := g.Position().ToFEN(); fen != StartFEN {
		t.Errorf("NewGame position = %q, want %q", fen, StartFEN)
	}
	if got := g.Status(); got != Ongoing {
		t.Errorf("Status() = %v, want %v", got, Ongoing)
	}
	if n := len(g.LegalMoves()); n != 20 {
		t.Errorf("len(LegalMoves()) = %d, want 20", n)
	}
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	g := NewGame()
	for _, san := range []string{"f3", "e5", "g4", "Qh4#"} {
		if err := g.ApplySAN(san); err != nil {
			t.Fatalf("ApplySAN(%q): %v", san, err)
		}
	}

	if got := g.Status(); got != Checkmate {
		t.Errorf("Status() = %v, want %v", got, Checkmate)
	}
	if moves := g.LegalMoves(); len(moves) != 0 {
		t.Errorf("checkmated side has %d legal moves, want 0", len(moves))
	}
}

func TestStalemate(t *testing.T) {
	// Black king a8 boxed in by the b6 queen; no check, no moves.
	g, err := GameFromFEN("k7/8/1Q6/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("GameFromFEN: %v", err)
	}
	if got := g.Status(); got != Stalemate {
		t.Errorf("Status() = %v, want %v", got, Stalemate)
	}
}

func TestCheckIsNotTerminal(t *testing.T) {
	g, err := GameFromFEN("4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("GameFromFEN: %v", err)
	}
	got := g.Status()
	if got != Check {
		t.Errorf("Status() = %v, want %v", got, Check)
	}
	if got.Terminal() {
		t.Error("Check must not be terminal")
	}
}

func TestThreefoldRepetition(t *testing.T) {
	g := NewGame()

	// Both sides shuffle knights out and back; the starting signature
	// recurs after every full cycle.
	cycle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	for _, uci := range cycle {
		mustApply(t, g, uci)
	}
	// Second occurrence of the starting position: not yet a draw.
	if got := g.Status(); got != Ongoing {
		t.Fatalf("after one cycle: Status() = %v, want %v", got, Ongoing)
	}

	for _, uci := range cycle {
		mustApply(t, g, uci)
	}
	// Third occurrence: draw by repetition.
	if got := g.Status(); got != DrawByRepetition {
		t.Errorf("after two cycles: Status() = %v, want %v", got, DrawByRepetition)
	}

	// Undoing the last move leaves only two occurrences again.
	if err := g.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := g.Status(); got == DrawByRepetition {
		t.Error("repetition draw persists after undo")
	}
}

func TestRepetitionRequiresIdenticalRights(t *testing.T) {
	// King and rook shuffles reproduce the same piece placement, but
	// the first white king move burned the castling rights, so the
	// "repeated" positions differ by signature.
	g, err := GameFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("GameFromFEN: %v", err)
	}
	sigBefore := g.Signature()

	for _, uci := range []string{"e1d1", "e8d8", "d1e1", "d8e8"} {
		mustApply(t, g, uci)
	}

	if g.Signature() == sigBefore {
		t.Error("signature unchanged although castling rights were lost")
	}
	if got := g.Status(); got != Ongoing {
		t.Errorf("Status() = %v, want %v", got, Ongoing)
	}
}

func TestApplyRejectsMalformedMove(t *testing.T) {
	g := NewGame()
	before := *g.Position()

	// The zero move, indistinguishable from a1a1 in the encoding.
	if err := g.Apply(NoMove); !errors.Is(err, ErrMalformedMove) {
		t.Errorf("NoMove: got %v, want ErrMalformedMove", err)
	}
	// A square moving onto itself.
	if err := g.Apply(NewMove(E2, E2)); !errors.Is(err, ErrMalformedMove) {
		t.Errorf("same square: got %v, want ErrMalformedMove", err)
	}
	// Empty origin square.
	if err := g.Apply(NewMove(E4, E5)); !errors.Is(err, ErrMalformedMove) {
		t.Errorf("empty origin: got %v, want ErrMalformedMove", err)
	}
	// Opponent's piece on the origin.
	if err := g.Apply(NewMove(E7, E5)); !errors.Is(err, ErrMalformedMove) {
		t.Errorf("wrong color: got %v, want ErrMalformedMove", err)
	}

	if *g.Position() != before {
		t.Error("rejected move mutated the position")
	}
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	g := NewGame()
	before := *g.Position()

	// A rook cannot jump over its own pawn.
	if err := g.Apply(NewMove(A1, A5)); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("got %v, want ErrIllegalMove", err)
	}
	if *g.Position() != before {
		t.Error("rejected move mutated the position")
	}

	// A pinned-piece move must be refused as well: after exposing the
	// king on the e-file, the blocking piece may not step aside.
	g2, err := GameFromFEN("4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("GameFromFEN: %v", err)
	}
	if err := g2.Apply(NewMove(E2, D3)); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("pinned bishop move: got %v, want ErrIllegalMove", err)
	}
}

func TestUndoUnderflow(t *testing.T) {
	g := NewGame()
	before := *g.Position()

	if err := g.Undo(); !errors.Is(err, ErrNoMoveToUndo) {
		t.Errorf("got %v, want ErrNoMoveToUndo", err)
	}
	if *g.Position() != before {
		t.Error("underflowing undo mutated the position")
	}
}

func TestUndoRestoresEveryField(t *testing.T) {
	g := NewGame()
	start := *g.Position()

	// A sequence touching castling rights, en passant and a capture.
	seq := []string{"e2e4", "d7d5", "e4d5", "g8f6", "f1b5", "c7c6", "d5c6", "e7e6"}
	for _, uci := range seq {
		mustApply(t, g, uci)
	}
	for range seq {
		if err := g.Undo(); err != nil {
			t.Fatalf("Undo: %v", err)
		}
	}

	if *g.Position() != start {
		t.Errorf("undo chain did not restore the start:\ngot  %v\nwant %v", g.Position(), &start)
	}
	if g.MoveCount() != 0 {
		t.Errorf("MoveCount() = %d after full undo, want 0", g.MoveCount())
	}
	if g.Signature() != start.Hash {
		t.Errorf("Signature() = %x, want %x", g.Signature(), start.Hash)
	}
}

func TestNotationRecordsAppliedMoves(t *testing.T) {
	g := NewGame()
	for _, san := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5"} {
		if err := g.ApplySAN(san); err != nil {
			t.Fatalf("ApplySAN(%q): %v", san, err)
		}
	}
	want := []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}
	got := g.Notation()
	if len(got) != len(want) {
		t.Fatalf("Notation() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Notation()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGameFromFENRejectsBrokenPositions(t *testing.T) {
	for _, fen := range []string{
		"8/8/8/8/8/8/8/8 w - - 0 1",          // no kings
		"4k3/8/8/8/8/8/8/KK6 w - - 0 1",      // two white kings
		"rnbqkbnr/pppppppp/8/8 w KQkq - 0 1", // truncated placement
		"4k3/8/8/8/8/8/8/4K3 x - - 0 1",      // bad side to move
	} {
		if _, err := GameFromFEN(fen); err == nil {
			t.Errorf("GameFromFEN(%q) succeeded, want error", fen)
		}
	}
}
