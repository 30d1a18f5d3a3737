// Command perft counts legal-move tree leaves from a position, the standard
// tool for verifying move generation.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/unkokaeru/chess-mini-me/internal/board"
	"github.com/unkokaeru/chess-mini-me/internal/engine"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to the initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		counts := make(map[string]uint64)
		var total uint64
		for _, m := range pos.LegalMoves() {
			pos.MakeMove(m)
			n := engine.Perft(pos, *depth-1)
			pos.UndoMove()
			counts[m.String()] = n
			total += n
		}

		// Sort moves for stable output.
		keys := maps.Keys(counts)
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, counts[k])
		}
		fmt.Printf("Total: %d\n", total)
		return
	}

	start := time.Now()
	nodes := engine.Perft(pos, *depth)
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %v (%.0f nps)\n",
		*depth, nodes, elapsed.Round(time.Millisecond), float64(nodes)/elapsed.Seconds())
}
