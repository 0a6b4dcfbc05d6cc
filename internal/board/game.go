package board

import (
	"errors"
	"fmt"
)

// Status classifies a position for the driving layer. Checkmate,
// Stalemate and DrawByRepetition are terminal; Check is informational.
type Status uint8

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
	DrawByRepetition
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByRepetition:
		return "draw by repetition"
	}
	return "unknown"
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	return s == Checkmate || s == Stalemate || s == DrawByRepetition
}

// Recoverable failures of the game surface. All are reported as
// explicit results; none mutate the board.
var (
	// ErrMalformedMove marks a structurally broken move: identical
	// origin and destination, or an origin that does not hold a piece
	// of the side to move.
	ErrMalformedMove = errors.New("malformed move")
	// ErrIllegalMove marks a structurally valid move that is not among
	// the legal moves of the current position.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNoMoveToUndo is returned when there is no applied move left.
	ErrNoMoveToUndo = errors.New("no move to undo")
)

// moveRecord pairs an applied move with its undo data and notation.
type moveRecord struct {
	move Move
	undo Undo
	san  string
}

// Game owns one Position together with the signature history used for
// threefold-repetition detection and the log of applied moves. It is
// the surface the UI and AI layers drive; a Game is single-owner and
// not safe for concurrent use.
type Game struct {
	pos     *Position
	history []uint64 // signatures of every position seen, current included
	log     []moveRecord
}

// NewGame starts a game from the standard starting position.
func NewGame() *Game {
	return newGame(NewPosition())
}

// GameFromFEN starts a game from an arbitrary position.
func GameFromFEN(fen string) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	if err := pos.Validate(); err != nil {
		return nil, err
	}
	return newGame(pos), nil
}

func newGame(pos *Position) *Game {
	return &Game{
		pos:     pos,
		history: []uint64{pos.Hash},
	}
}

// Position exposes the underlying position. Mutating it directly
// bypasses the history bookkeeping; callers wanting speculative play
// should work on Position.Copy.
func (g *Game) Position() *Position {
	return g.pos
}

// LegalMoves returns the legal moves of the current position.
func (g *Game) LegalMoves() []Move {
	return g.pos.LegalMoves().Slice()
}

// Apply validates and commits m. Structural problems and illegal moves
// are rejected without touching the board; the move generator's
// legality filter is the single source of truth for what is playable.
func (g *Game) Apply(m Move) error {
	// The packed move encoding cannot express an out-of-range square,
	// so the structural checks are the degenerate same-square move
	// (which includes the NoMove value) and the origin piece.
	from := m.From()
	if from == m.To() {
		return fmt.Errorf("%w: identical origin and destination %v", ErrMalformedMove, from)
	}
	piece := g.pos.PieceAt(from)
	if piece == NoPiece {
		return fmt.Errorf("%w: no piece on %v", ErrMalformedMove, from)
	}
	if piece.Color() != g.pos.SideToMove {
		return fmt.Errorf("%w: %v piece on %v with %v to move",
			ErrMalformedMove, piece.Color(), from, g.pos.SideToMove)
	}
	if !g.pos.LegalMoves().Contains(m) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}

	san := m.ToSAN(g.pos)
	undo := g.pos.MakeMove(m)
	g.history = append(g.history, g.pos.Hash)
	g.log = append(g.log, moveRecord{move: m, undo: undo, san: san})
	return nil
}

// ApplySAN resolves a SAN string and commits it.
func (g *Game) ApplySAN(s string) error {
	m, err := ParseSAN(s, g.pos)
	if err != nil {
		return err
	}
	if m == NoMove {
		return fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	return g.Apply(m)
}

// Undo reverts the most recently applied move. With an empty log it
// reports ErrNoMoveToUndo and leaves the board untouched.
func (g *Game) Undo() error {
	if len(g.log) == 0 {
		return ErrNoMoveToUndo
	}
	last := g.log[len(g.log)-1]
	g.log = g.log[:len(g.log)-1]
	g.history = g.history[:len(g.history)-1]
	g.pos.UnmakeMove(last.move, last.undo)
	return nil
}

// Status classifies the current position. Evaluation order: terminal
// no-move states first, then repetition, then the informational check
// state.
func (g *Game) Status() Status {
	if !g.pos.HasLegalMoves() {
		if g.pos.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if g.repetitions() >= 3 {
		return DrawByRepetition
	}
	if g.pos.InCheck() {
		return Check
	}
	return Ongoing
}

// repetitions counts how often the current signature has occurred.
func (g *Game) repetitions() int {
	sig := g.pos.Hash
	n := 0
	for _, h := range g.history {
		if h == sig {
			n++
		}
	}
	return n
}

// Signature returns the opaque comparable signature of the current
// position, for external repetition bookkeeping or transposition
// caching.
func (g *Game) Signature() uint64 {
	return g.pos.Hash
}

// MoveCount returns the number of applied moves.
func (g *Game) MoveCount() int {
	return len(g.log)
}

// Notation returns the SAN record of all applied moves in order.
func (g *Game) Notation() []string {
	out := make([]string, len(g.log))
	for i, r := range g.log {
		out[i] = r.san
	}
	return out
}
