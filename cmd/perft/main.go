// Command perft walks the move tree of a position to a fixed depth and
// counts the leaf nodes. The counts are a stock way to cross-check a
// move generator against published reference values.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"chesscore/internal/board"
)

var (
	fen    = flag.String("fen", board.StartFEN, "position to search, in FEN")
	depth  = flag.Int("depth", 5, "search depth in plies")
	divide = flag.Bool("divide", false, "print per-move subtotals at the root")
)

func main() {
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("bad FEN %q: %v", *fen, err)
	}
	if err := pos.Validate(); err != nil {
		log.Fatalf("invalid position: %v", err)
	}

	start := time.Now()
	var total int64
	if *divide {
		moves := pos.LegalMoves()
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			undo := pos.MakeMove(m)
			nodes := perft(pos, *depth-1)
			pos.UnmakeMove(m, undo)
			fmt.Printf("%v: %d\n", m, nodes)
			total += nodes
		}
	} else {
		total = perft(pos, *depth)
	}
	elapsed := time.Since(start)

	fmt.Printf("perft(%d) = %d in %v", *depth, total, elapsed.Round(time.Millisecond))
	if s := elapsed.Seconds(); s > 0 {
		fmt.Printf(" (%.0f nodes/s)", float64(total)/s)
	}
	fmt.Println()
}

func perft(p *board.Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UnmakeMove(m, undo)
	}
	return nodes
}
