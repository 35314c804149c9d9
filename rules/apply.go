package rules

import (
	"github.com/lgray/chessrules-go/chess"
	"github.com/lgray/chessrules-go/internal/hashing"
)

// PushMove applies m to the position so that it can later be taken back
// with PopMove. The current detail snapshot is stacked first; castling
// rights are cleared purely by the move's destination square (a move
// arriving on a king or rook home square covers both the rook leaving
// home and an enemy capturing it, since actual castling re-checks king
// and rook presence); the en passant target is cleared and only re-set by
// a two-square pawn advance.
//
// PushMove does not touch the history or the move clocks; that
// bookkeeping belongs to PlayMove.
func (p *Position) PushMove(m chess.Move) {
	p.detailStack = append(p.detailStack, p.d)

	switch m.Dst {
	case chess.A8:
		p.d.BQueen = false
	case chess.E8:
		p.d.BQueen = false
		p.d.BKing = false
	case chess.H8:
		p.d.BKing = false
	case chess.A1:
		p.d.WQueen = false
	case chess.E1:
		p.d.WQueen = false
		p.d.WKing = false
	case chess.H1:
		p.d.WKing = false
	}
	p.d.EnPassantTarget = chess.SquareInvalid

	switch m.Special {
	default:
		p.squares[m.Dst] = p.squares[m.Src]
		p.squares[m.Src] = chess.EmptySquare

	case chess.KingMove:
		p.squares[m.Dst] = p.squares[m.Src]
		p.squares[m.Src] = chess.EmptySquare
		if p.white {
			p.d.WKingSquare = m.Dst
		} else {
			p.d.BKingSquare = m.Dst
		}

	case chess.PromotionQueen, chess.PromotionRook, chess.PromotionBishop, chess.PromotionKnight:
		p.squares[m.Src] = chess.EmptySquare
		promoted := m.PromotionPiece()
		if !p.white {
			promoted |= 0x20 // lowercase
		}
		p.squares[m.Dst] = promoted

	case chess.WEnPassant:
		p.squares[m.Src] = chess.EmptySquare
		p.squares[m.Dst] = 'P'
		p.squares[m.Dst.South()] = chess.EmptySquare

	case chess.BEnPassant:
		p.squares[m.Src] = chess.EmptySquare
		p.squares[m.Dst] = 'p'
		p.squares[m.Dst.North()] = chess.EmptySquare

	case chess.WPawn2Squares:
		p.squares[m.Src] = chess.EmptySquare
		p.squares[m.Dst] = 'P'
		p.d.EnPassantTarget = m.Dst.South()

	case chess.BPawn2Squares:
		p.squares[m.Src] = chess.EmptySquare
		p.squares[m.Dst] = 'p'
		p.d.EnPassantTarget = m.Dst.North()

	case chess.WKCastling:
		p.squares[chess.E1] = chess.EmptySquare
		p.squares[chess.F1] = 'R'
		p.squares[chess.G1] = 'K'
		p.squares[chess.H1] = chess.EmptySquare
		p.d.WKingSquare = chess.G1

	case chess.WQCastling:
		p.squares[chess.E1] = chess.EmptySquare
		p.squares[chess.D1] = 'R'
		p.squares[chess.C1] = 'K'
		p.squares[chess.A1] = chess.EmptySquare
		p.d.WKingSquare = chess.C1

	case chess.BKCastling:
		p.squares[chess.E8] = chess.EmptySquare
		p.squares[chess.F8] = 'r'
		p.squares[chess.G8] = 'k'
		p.squares[chess.H8] = chess.EmptySquare
		p.d.BKingSquare = chess.G8

	case chess.BQCastling:
		p.squares[chess.E8] = chess.EmptySquare
		p.squares[chess.D8] = 'r'
		p.squares[chess.C8] = 'k'
		p.squares[chess.A8] = chess.EmptySquare
		p.d.BKingSquare = chess.C8
	}

	p.white = !p.white
}

// PopMove takes back a move made with PushMove. Pushes and pops must be
// strictly balanced; popping with an empty detail stack is a programmer
// error and panics.
func (p *Position) PopMove(m chess.Move) {
	n := len(p.detailStack)
	p.d = p.detailStack[n-1]
	p.detailStack = p.detailStack[:n-1]

	p.white = !p.white

	switch m.Special {
	default:
		p.squares[m.Src] = p.squares[m.Dst]
		p.squares[m.Dst] = m.Capture

	case chess.PromotionQueen, chess.PromotionRook, chess.PromotionBishop, chess.PromotionKnight:
		if p.white {
			p.squares[m.Src] = 'P'
		} else {
			p.squares[m.Src] = 'p'
		}
		p.squares[m.Dst] = m.Capture

	case chess.WEnPassant:
		p.squares[m.Src] = 'P'
		p.squares[m.Dst] = chess.EmptySquare
		p.squares[m.Dst.South()] = 'p'

	case chess.BEnPassant:
		p.squares[m.Src] = 'p'
		p.squares[m.Dst] = chess.EmptySquare
		p.squares[m.Dst.North()] = 'P'

	case chess.WKCastling:
		p.squares[chess.E1] = 'K'
		p.squares[chess.F1] = chess.EmptySquare
		p.squares[chess.G1] = chess.EmptySquare
		p.squares[chess.H1] = 'R'

	case chess.WQCastling:
		p.squares[chess.E1] = 'K'
		p.squares[chess.D1] = chess.EmptySquare
		p.squares[chess.C1] = chess.EmptySquare
		p.squares[chess.A1] = 'R'

	case chess.BKCastling:
		p.squares[chess.E8] = 'k'
		p.squares[chess.F8] = chess.EmptySquare
		p.squares[chess.G8] = chess.EmptySquare
		p.squares[chess.H8] = 'r'

	case chess.BQCastling:
		p.squares[chess.E8] = 'k'
		p.squares[chess.D8] = chess.EmptySquare
		p.squares[chess.C8] = chess.EmptySquare
		p.squares[chess.A8] = 'r'
	}
}

// PlayMove records m in the history, updates the move clocks and then
// pushes it. Unlike the push itself, the bookkeeping done here is not
// reverted by PopMove.
func (p *Position) PlayMove(m chess.Move) {
	p.history = append(p.history, m)

	if !p.white {
		p.fullMoveCount++
	}

	if p.squares[m.Src] == 'P' || p.squares[m.Src] == 'p' || m.IsCapture() {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.PushMove(m)
	p.hashTrail = append(p.hashTrail, hashing.Board(&p.squares, p.white))
}
