package board

import "fmt"

// Sliding piece attacks use fancy magic bitboards: per square the
// relevant occupancy is hashed by (occ & mask) * magic >> shift into a
// shared flat table. The magic constants below are a known
// collision-free set; table construction re-verifies that property and
// refuses to start the process on any collision, since a silently wrong
// attack entry would corrupt every downstream legality decision.

// magicEntry holds the per-square lookup parameters.
type magicEntry struct {
	Mask   Bitboard // relevant occupancy mask, board edges excluded
	Magic  uint64   // multiplier
	Shift  uint8    // 64 - popcount(Mask)
	Offset uint32   // base index into the shared attack table
}

var (
	bishopMagics [64]magicEntry
	rookMagics   [64]magicEntry

	bishopTable [5248]Bitboard
	rookTable   [102400]Bitboard
)

var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

func initMagics() {
	if err := buildMagicTable(bishopMagics[:], bishopTable[:], bishopMagicNumbers, bishopMask, bishopAttacksSlow); err != nil {
		panic(fmt.Sprintf("board: bishop magic table: %v", err))
	}
	if err := buildMagicTable(rookMagics[:], rookTable[:], rookMagicNumbers, rookMask, rookAttacksSlow); err != nil {
		panic(fmt.Sprintf("board: rook magic table: %v", err))
	}
}

// buildMagicTable fills one sliding-piece family's attack table. For
// every square it enumerates all subsets of the relevant occupancy mask,
// ray-casts the true attack set, and stores it at the hashed index. Two
// subsets may share an index only if they produce the same attack set;
// anything else is a collision and the table is unusable.
func buildMagicTable(magics []magicEntry, table []Bitboard, numbers [64]uint64,
	mask func(Square) Bitboard, slow func(Square, Bitboard) Bitboard) error {

	var offset uint32
	for sq := A1; sq <= H8; sq++ {
		m := mask(sq)
		bits := m.PopCount()

		magics[sq] = magicEntry{
			Mask:   m,
			Magic:  numbers[sq],
			Shift:  uint8(64 - bits),
			Offset: offset,
		}

		entries := 1 << bits
		for i := 0; i < entries; i++ {
			occ := occupancySubset(i, bits, m)
			attacks := slow(sq, occ)
			idx := offset + uint32((uint64(occ)*numbers[sq])>>(64-bits))
			// A sliding piece always attacks at least one square, so
			// zero doubles as the "unset" sentinel.
			if table[idx] != Empty && table[idx] != attacks {
				return fmt.Errorf("collision at square %v subset %d", sq, i)
			}
			table[idx] = attacks
		}
		offset += uint32(entries)
	}
	return nil
}

// bishopMask is the bishop's rays from sq with the board edge removed:
// an edge square can never block anything beyond it.
func bishopMask(sq Square) Bitboard {
	return bishopAttacksSlow(sq, 0) &^ (Rank1 | Rank8 | FileA | FileH)
}

// rookMask is the rook's rays from sq, excluding the final square of
// each ray.
func rookMask(sq Square) Bitboard {
	file, rank := sq.File(), sq.Rank()
	var mask Bitboard
	for f := 1; f < 7; f++ {
		if f != file {
			mask |= SquareBB(NewSquare(f, rank))
		}
	}
	for r := 1; r < 7; r++ {
		if r != rank {
			mask |= SquareBB(NewSquare(file, r))
		}
	}
	return mask
}

// occupancySubset maps subset index i onto the squares of mask.
func occupancySubset(i, bits int, mask Bitboard) Bitboard {
	var occ Bitboard
	for b := 0; b < bits; b++ {
		sq := mask.PopLSB()
		if i&(1<<b) != 0 {
			occ |= SquareBB(sq)
		}
	}
	return occ
}

var (
	bishopDirs = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	rookDirs   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
)

// bishopAttacksSlow ray-casts diagonal attacks, stopping at the first
// blocker in each direction. Used for table construction and as the
// reference in tests.
func bishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, occupied, bishopDirs)
}

// rookAttacksSlow ray-casts orthogonal attacks.
func rookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, occupied, rookDirs)
}

func rayAttacks(sq Square, occupied Bitboard, dirs [4][2]int) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			s := NewSquare(f, r)
			attacks |= SquareBB(s)
			if occupied.IsSet(s) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}
