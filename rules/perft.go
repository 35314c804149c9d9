package rules

import (
	"github.com/lgray/chessrules-go/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The position is restored before returning.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.PushMove(m)
		nodes += p.Perft(depth - 1)
		p.PopMove(m)
	}
	return nodes
}

// DivideEntry is a root move and the node count of its subtree.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft split by root move, which is the usual way of
// pinning down where two move generators disagree.
func (p *Position) Divide(depth int) []DivideEntry {
	moves := p.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		p.PushMove(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: p.Perft(depth - 1)})
		p.PopMove(m)
	}
	return entries
}
