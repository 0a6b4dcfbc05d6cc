// Package board implements the rules core of a chess program: bitboard
// position representation, precomputed attack tables, legal move
// generation and reversible move application.
package board

import "fmt"

// Square indexes a board square 0-63 in little-endian rank-file order:
// A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Named constants for all 64 squares, rank by rank from white's side.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63

	// NoSquare marks the absence of a square (e.g. no en passant target).
	NoSquare Square = 64
)

// NewSquare builds a square from 0-indexed file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the square's file, 0 (a) through 7 (h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the square's rank, 0 (first) through 7 (eighth).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// IsValid reports whether sq addresses a real board square.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic name of the square ("e4"), or "-" for
// NoSquare, matching the FEN convention for an empty en passant field.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ParseSquare converts algebraic notation ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return NewSquare(file, rank), nil
}
