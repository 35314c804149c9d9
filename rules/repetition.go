package rules

import (
	"github.com/lgray/chessrules-go/chess"
	"github.com/lgray/chessrules-go/internal/hashing"
)

// RepetitionCount returns how many times the current position has
// occurred, counting the current occurrence, so the result is always at
// least 1.
//
// The walk runs backwards over the played history on a scratch clone; the
// live position is never mutated. A candidate match needs the same side
// to move, the same king squares and a byte-equal board. When the detail
// records additionally agree the match counts outright; otherwise it
// counts only if the *effective* en passant and castling possibilities
// agree (a set castling flag means nothing once king or rook has left
// home, and an en passant target means nothing without an enemy pawn in
// place to use it).
//
// The walk stops at the first pawn move or capture: such moves are
// irreversible, so no earlier position can match.
func (p *Position) RepetitionCount() int {
	nbrHalfMoves := (p.fullMoveCount - 1) * 2
	if !p.white {
		nbrHalfMoves++
	}
	if nbrHalfMoves > len(p.history) {
		nbrHalfMoves = len(p.history)
	}
	if nbrHalfMoves > len(p.detailStack) {
		nbrHalfMoves = len(p.detailStack)
	}
	if nbrHalfMoves == 0 {
		return 1
	}

	clone := p.Clone()
	savedSquares := p.squares
	savedWeak := hashing.Weak(&savedSquares)
	savedDetail := p.d
	savedWhite := p.white

	// The hash trail lines up with the history only when every push came
	// through PlayMove; when it does, it prefilters the board comparison.
	useTrail := len(p.hashTrail) == len(p.history)+1
	var currentHash uint64
	if useTrail {
		currentHash = p.hashTrail[len(p.hashTrail)-1]
	}

	matches := 0
	idx := len(p.history)
	for i := 0; i < nbrHalfMoves; i++ {
		idx--
		m := p.history[idx]
		clone.PopMove(m)

		// Weak equality is necessary for board equality, so it confirms
		// trail hits cheaply before the exact comparison below.
		candidate := !useTrail || p.hashTrail[idx] == currentHash
		if candidate {
			candidate = hashing.Weak(&clone.squares) == savedWeak
		}
		if candidate &&
			clone.white == savedWhite &&
			clone.d.WKingSquare == savedDetail.WKingSquare &&
			clone.d.BKingSquare == savedDetail.BKingSquare &&
			clone.squares == savedSquares {
			matches++
			if clone.d != savedDetail && revokeMatch(&savedSquares, savedDetail, &clone.squares, clone.d) {
				matches--
			}
		}

		if clone.squares[m.Src] == 'P' || clone.squares[m.Src] == 'p' || m.IsCapture() {
			break
		}
	}
	return matches + 1
}

// revokeMatch decides whether a board-equal candidate with a differing
// detail record is in fact a different position, because the en passant
// or castling differences are real rather than cosmetic.
func revokeMatch(savedSquares *[64]byte, savedDetail chess.Detail, nowSquares *[64]byte, nowDetail chess.Detail) bool {
	if savedDetail.EnPassantTarget != nowDetail.EnPassantTarget {
		epSaved := effectiveEnPassant(savedSquares, savedDetail.EnPassantTarget)
		epNow := effectiveEnPassant(nowSquares, nowDetail.EnPassantTarget)
		if epSaved != epNow {
			return true
		}
	}

	if !savedDetail.EqCastling(nowDetail) {
		wkSaved := savedSquares[chess.E1] == 'K' && savedSquares[chess.H1] == 'R' && savedDetail.WKing
		wkNow := nowSquares[chess.E1] == 'K' && nowSquares[chess.H1] == 'R' && nowDetail.WKing
		wqSaved := savedSquares[chess.E1] == 'K' && savedSquares[chess.A1] == 'R' && savedDetail.WQueen
		wqNow := nowSquares[chess.E1] == 'K' && nowSquares[chess.A1] == 'R' && nowDetail.WQueen
		bkSaved := savedSquares[chess.E8] == 'k' && savedSquares[chess.H8] == 'r' && savedDetail.BKing
		bkNow := nowSquares[chess.E8] == 'k' && nowSquares[chess.H8] == 'r' && nowDetail.BKing
		bqSaved := savedSquares[chess.E8] == 'k' && savedSquares[chess.A8] == 'r' && savedDetail.BQueen
		bqNow := nowSquares[chess.E8] == 'k' && nowSquares[chess.A8] == 'r' && nowDetail.BQueen
		if wkSaved != wkNow || wqSaved != wqNow || bkSaved != bkNow || bqSaved != bqNow {
			return true
		}
	}
	return false
}

// effectiveEnPassant normalizes an en passant target: the target only
// counts when an enemy pawn actually stands ready to make the capture.
// Otherwise the preceding move was just a double pawn advance with no en
// passant consequences, and the target is reported as invalid.
func effectiveEnPassant(squares *[64]byte, ep chess.Square) chess.Square {
	real := false
	switch {
	case ep == chess.A6:
		real = squares[ep.South().East()] == 'P'
	case chess.B6 <= ep && ep <= chess.G6:
		real = squares[ep.South().West()] == 'P' || squares[ep.South().East()] == 'P'
	case ep == chess.H6:
		real = squares[ep.South().West()] == 'P'
	case ep == chess.A3:
		real = squares[ep.North().East()] == 'p'
	case chess.B3 <= ep && ep <= chess.G3:
		real = squares[ep.North().East()] == 'p' || squares[ep.North().West()] == 'p'
	case ep == chess.H3:
		real = squares[ep.North().West()] == 'p'
	}
	if real {
		return ep
	}
	return chess.SquareInvalid
}
