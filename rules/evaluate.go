package rules

import (
	"github.com/lgray/chessrules-go/chess"
)

// Terminal classifies a finished position from the point of view of the
// side to move.
type Terminal int

const (
	NotTerminal Terminal = iota
	WCheckmate           // White is checkmated
	BCheckmate           // Black is checkmated
	WStalemate           // White is stalemated
	BStalemate           // Black is stalemated
)

// String returns a readable name for the terminal state.
func (t Terminal) String() string {
	switch t {
	case WCheckmate:
		return "white checkmated"
	case BCheckmate:
		return "black checkmated"
	case WStalemate:
		return "white stalemated"
	case BStalemate:
		return "black stalemated"
	}
	return "not terminal"
}

// Evaluate reports whether the position is legal for the side that just
// moved, i.e. the king of the side no longer to move is not attacked.
func (p *Position) Evaluate() bool {
	enemyKing := p.d.WKingSquare
	if p.white {
		enemyKing = p.d.BKingSquare
	}
	return !p.attackedPiece(enemyKing)
}

// IsLegalMove reports whether the pseudo-legal move m leaves the mover's
// own king safe.
func (p *Position) IsLegalMove(m chess.Move) bool {
	p.PushMove(m)
	ok := p.Evaluate()
	p.PopMove(m)
	return ok
}

// SelectLegal filters candidates down to the moves that leave the mover's
// king safe, preserving order.
func (p *Position) SelectLegal(candidates []chess.Move) []chess.Move {
	legal := make([]chess.Move, 0, len(candidates))
	for _, m := range candidates {
		if p.IsLegalMove(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves generates all legal moves, in the order of PseudoLegalMoves.
func (p *Position) LegalMoves() []chess.Move {
	return p.SelectLegal(p.PseudoLegalMoves())
}

// EvaluateTerminal reports whether the position is legal for the side
// that just moved and, when it is, whether the side to move has been
// checkmated or stalemated.
func (p *Position) EvaluateTerminal() (Terminal, bool) {
	if !p.Evaluate() {
		return NotTerminal, false
	}

	// The game is over when no pseudo-legal move leaves our king safe.
	any := 0
	for _, m := range p.PseudoLegalMoves() {
		p.PushMove(m)
		myKing := p.d.WKingSquare
		if p.white {
			myKing = p.d.BKingSquare
		}
		if !p.attackedPiece(myKing) {
			any++
		}
		p.PopMove(m)
	}
	if any > 0 {
		return NotTerminal, true
	}

	myKing := p.d.BKingSquare
	if p.white {
		myKing = p.d.WKingSquare
	}
	if p.attackedPiece(myKing) {
		if p.white {
			return WCheckmate, true
		}
		return BCheckmate, true
	}
	if p.white {
		return WStalemate, true
	}
	return BStalemate, true
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	myKing := p.d.BKingSquare
	if p.white {
		myKing = p.d.WKingSquare
	}
	return p.attackedPiece(myKing)
}

// AnnotatedMove is a legal move together with the state it produces.
type AnnotatedMove struct {
	Move      chess.Move
	Check     bool // the move gives check (and is not mate)
	Mate      bool // the move checkmates
	Stalemate bool // the move stalemates
}

// LegalMovesAnnotated generates all legal moves, each annotated with
// whether it gives check, mate or stalemate. Order matches LegalMoves.
func (p *Position) LegalMovesAnnotated() []AnnotatedMove {
	pseudo := p.PseudoLegalMoves()
	annotated := make([]AnnotatedMove, 0, len(pseudo))
	for _, m := range pseudo {
		p.PushMove(m)
		terminal, okay := p.EvaluateTerminal()
		kingToMove := p.d.BKingSquare
		if p.white {
			kingToMove = p.d.WKingSquare
		}
		check := p.attackedPiece(kingToMove)
		p.PopMove(m)

		if !okay {
			continue
		}
		mate := terminal == WCheckmate || terminal == BCheckmate
		annotated = append(annotated, AnnotatedMove{
			Move:      m,
			Check:     check && !mate,
			Mate:      mate,
			Stalemate: terminal == WStalemate || terminal == BStalemate,
		})
	}
	return annotated
}
