package rules

import (
	"github.com/lgray/chessrules-go/chess"
)

// AttackedSquare reports whether sq is attacked by the given colour. Each
// attack ray is walked outwards until a piece is found; the occupant's
// attacker mask then decides whether the ray delivers an attack. Knight
// attacks are checked from the jump table afterwards; pawn and king
// attacks are encoded as unit-length steps of the rays themselves.
func (p *Position) AttackedSquare(sq chess.Square, byWhite bool) bool {
	rays := attacksByBlack[sq]
	if byWhite {
		rays = attacksByWhite[sq]
	}
	for _, ray := range rays {
		for _, step := range ray {
			piece := p.squares[step.sq]
			if chess.IsEmpty(piece) {
				continue
			}
			if byWhite == chess.IsWhite(piece) && pieceMask[piece]&step.mask != 0 {
				return true
			}
			break // ray is blocked
		}
	}
	for _, dst := range knightMoves[sq] {
		piece := p.squares[dst]
		if (byWhite && piece == 'N') || (!byWhite && piece == 'n') {
			return true
		}
	}
	return false
}

// attackedPiece reports whether the occupied square sq is attacked by the
// colour opposing its occupant.
func (p *Position) attackedPiece(sq chess.Square) bool {
	return p.AttackedSquare(sq, chess.IsBlack(p.squares[sq]))
}
