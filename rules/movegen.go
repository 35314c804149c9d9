package rules

import (
	"github.com/lgray/chessrules-go/chess"
)

// PseudoLegalMoves generates every move the side to move can make
// ignoring the safety of its own king. Squares are scanned a8..h1;
// promotions for a single pawn destination are emitted in the order
// Q, N, B, R. Callers must not rely on the ordering beyond that.
func (p *Position) PseudoLegalMoves() []chess.Move {
	moves := make([]chess.Move, 0, 64)
	for sq := chess.A8; sq <= chess.H1; sq++ {
		piece := p.squares[sq]
		if (p.white && !chess.IsWhite(piece)) || (!p.white && !chess.IsBlack(piece)) {
			continue
		}
		switch piece {
		case 'P':
			moves = p.whitePawnMoves(moves, sq)
		case 'p':
			moves = p.blackPawnMoves(moves, sq)
		case 'N', 'n':
			moves = p.shortMoves(moves, sq, knightMoves[sq], chess.NotSpecial)
		case 'B', 'b':
			moves = p.longMoves(moves, sq, bishopRays[sq])
		case 'R', 'r':
			moves = p.longMoves(moves, sq, rookRays[sq])
		case 'Q', 'q':
			moves = p.longMoves(moves, sq, queenRays[sq])
		case 'K', 'k':
			moves = p.kingMoves(moves, sq)
		}
	}
	return moves
}

// longMoves walks multi-square rays for bishops, rooks and queens. A ray
// ends at the first occupied square, emitting a capture when the occupant
// is an enemy.
func (p *Position) longMoves(moves []chess.Move, src chess.Square, rays [][]chess.Square) []chess.Move {
	for _, ray := range rays {
		for _, dst := range ray {
			piece := p.squares[dst]
			if chess.IsEmpty(piece) {
				moves = append(moves, chess.Move{Src: src, Dst: dst, Special: chess.NotSpecial, Capture: chess.EmptySquare})
				continue
			}
			if p.white == chess.IsBlack(piece) {
				moves = append(moves, chess.Move{Src: src, Dst: dst, Special: chess.NotSpecial, Capture: piece})
			}
			break
		}
	}
	return moves
}

// shortMoves handles single-step targets for knights and kings.
func (p *Position) shortMoves(moves []chess.Move, src chess.Square, targets []chess.Square, special chess.Special) []chess.Move {
	for _, dst := range targets {
		piece := p.squares[dst]
		if chess.IsEmpty(piece) {
			moves = append(moves, chess.Move{Src: src, Dst: dst, Special: special, Capture: chess.EmptySquare})
		} else if p.white == chess.IsBlack(piece) {
			moves = append(moves, chess.Move{Src: src, Dst: dst, Special: special, Capture: piece})
		}
	}
	return moves
}

// kingMoves emits ordinary king steps plus castling. Castling needs the
// rights flag, the king and rook on their home squares, an empty path,
// and the king's origin, path and destination free of enemy attack. The
// rook's path is not attack-checked, per the rules of chess.
func (p *Position) kingMoves(moves []chess.Move, src chess.Square) []chess.Move {
	moves = p.shortMoves(moves, src, kingSteps[src], chess.KingMove)

	if src == chess.E1 && p.white {
		if p.d.WKing &&
			p.squares[chess.F1] == ' ' && p.squares[chess.G1] == ' ' &&
			p.squares[chess.H1] == 'R' &&
			!p.AttackedSquare(chess.E1, false) &&
			!p.AttackedSquare(chess.F1, false) &&
			!p.AttackedSquare(chess.G1, false) {
			moves = append(moves, chess.Move{Src: chess.E1, Dst: chess.G1, Special: chess.WKCastling, Capture: chess.EmptySquare})
		}
		if p.d.WQueen &&
			p.squares[chess.B1] == ' ' && p.squares[chess.C1] == ' ' && p.squares[chess.D1] == ' ' &&
			p.squares[chess.A1] == 'R' &&
			!p.AttackedSquare(chess.E1, false) &&
			!p.AttackedSquare(chess.D1, false) &&
			!p.AttackedSquare(chess.C1, false) {
			moves = append(moves, chess.Move{Src: chess.E1, Dst: chess.C1, Special: chess.WQCastling, Capture: chess.EmptySquare})
		}
	}

	if src == chess.E8 && !p.white {
		if p.d.BKing &&
			p.squares[chess.F8] == ' ' && p.squares[chess.G8] == ' ' &&
			p.squares[chess.H8] == 'r' &&
			!p.AttackedSquare(chess.E8, true) &&
			!p.AttackedSquare(chess.F8, true) &&
			!p.AttackedSquare(chess.G8, true) {
			moves = append(moves, chess.Move{Src: chess.E8, Dst: chess.G8, Special: chess.BKCastling, Capture: chess.EmptySquare})
		}
		if p.d.BQueen &&
			p.squares[chess.B8] == ' ' && p.squares[chess.C8] == ' ' && p.squares[chess.D8] == ' ' &&
			p.squares[chess.A8] == 'r' &&
			!p.AttackedSquare(chess.E8, true) &&
			!p.AttackedSquare(chess.D8, true) &&
			!p.AttackedSquare(chess.C8, true) {
			moves = append(moves, chess.Move{Src: chess.E8, Dst: chess.C8, Special: chess.BQCastling, Capture: chess.EmptySquare})
		}
	}
	return moves
}

// whitePawnMoves follows the capture ray (including en passant) and then
// the advance ray, expanding seventh-rank destinations into promotions.
func (p *Position) whitePawnMoves(moves []chess.Move, src chess.Square) []chess.Move {
	promotion := src.Rank() == '7'

	for _, dst := range whitePawnCaptures[src] {
		if dst == p.d.EnPassantTarget {
			moves = append(moves, chess.Move{Src: src, Dst: dst, Special: chess.WEnPassant, Capture: 'p'})
		} else if chess.IsBlack(p.squares[dst]) {
			moves = appendPawnMove(moves, src, dst, p.squares[dst], chess.NotSpecial, promotion)
		}
	}

	for i, dst := range whitePawnAdvances[src] {
		if !chess.IsEmpty(p.squares[dst]) {
			break
		}
		special := chess.NotSpecial
		if i == 1 {
			special = chess.WPawn2Squares
		}
		moves = appendPawnMove(moves, src, dst, chess.EmptySquare, special, promotion)
	}
	return moves
}

// blackPawnMoves mirrors whitePawnMoves for Black.
func (p *Position) blackPawnMoves(moves []chess.Move, src chess.Square) []chess.Move {
	promotion := src.Rank() == '2'

	for _, dst := range blackPawnCaptures[src] {
		if dst == p.d.EnPassantTarget {
			moves = append(moves, chess.Move{Src: src, Dst: dst, Special: chess.BEnPassant, Capture: 'P'})
		} else if chess.IsWhite(p.squares[dst]) {
			moves = appendPawnMove(moves, src, dst, p.squares[dst], chess.NotSpecial, promotion)
		}
	}

	for i, dst := range blackPawnAdvances[src] {
		if !chess.IsEmpty(p.squares[dst]) {
			break
		}
		special := chess.NotSpecial
		if i == 1 {
			special = chess.BPawn2Squares
		}
		moves = appendPawnMove(moves, src, dst, chess.EmptySquare, special, promotion)
	}
	return moves
}

// appendPawnMove emits a single pawn move, or the four promotions in the
// order Q, N, B, R when the pawn reaches the back rank.
func appendPawnMove(moves []chess.Move, src, dst chess.Square, capture byte, special chess.Special, promotion bool) []chess.Move {
	if !promotion {
		return append(moves, chess.Move{Src: src, Dst: dst, Special: special, Capture: capture})
	}
	for _, s := range [4]chess.Special{chess.PromotionQueen, chess.PromotionKnight, chess.PromotionBishop, chess.PromotionRook} {
		moves = append(moves, chess.Move{Src: src, Dst: dst, Special: s, Capture: capture})
	}
	return moves
}
