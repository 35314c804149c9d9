// perft counts the legal move tree of a chess position, optionally split
// by root move and across workers, and reports nodes per second.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/exp/slices"

	"github.com/lgray/chessrules-go/internal/worker"
	"github.com/lgray/chessrules-go/rules"
)

func main() {
	fen := flag.String("fen", rules.InitialFEN, "FEN string (defaults to the initial position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at the root")
	workers := flag.Int("workers", runtime.NumCPU(), "number of parallel workers")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := rules.NewPositionFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid FEN: %v\n", err)
		os.Exit(2)
	}

	start := time.Now()
	entries := countRoots(pos, *depth, *workers)
	elapsed := time.Since(start)

	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}

	if *divide {
		byMove := make(map[string]uint64, len(entries))
		keys := make([]string, 0, len(entries))
		for _, e := range entries {
			uci := e.Move.UCI()
			byMove[uci] = e.Nodes
			keys = append(keys, uci)
		}
		slices.Sort(keys)
		for _, uci := range keys {
			fmt.Printf("%s: %d\n", uci, byMove[uci])
		}
	}

	nps := float64(total) / elapsed.Seconds()
	fmt.Printf("depth %d: %d nodes in %s (%.0f nps)\n", *depth, total, elapsed, nps)
}

// countRoots splits the count across root moves using the worker pool,
// falling back to the plain recursive count when one worker suffices.
func countRoots(pos *rules.Position, depth, workers int) []rules.DivideEntry {
	if workers <= 1 || depth == 1 {
		return pos.Divide(depth)
	}

	pool := worker.NewPool(worker.WithWorkers(workers))
	pool.Start()

	moves := pos.LegalMoves()
	go func() {
		for i, m := range moves {
			pool.Submit(worker.WorkItem{Move: m, Position: pos.Clone(), Depth: depth, Index: i})
		}
		pool.Close()
	}()

	entries := make([]rules.DivideEntry, len(moves))
	for r := range pool.Results() {
		entries[r.Index] = rules.DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries
}
