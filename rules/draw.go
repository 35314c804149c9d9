package rules

import (
	"github.com/lgray/chessrules-go/chess"
)

// DrawType classifies why a position is drawn.
type DrawType int

const (
	NotDraw DrawType = iota
	Draw50Move
	DrawRepetition
	DrawInsufficient     // claimable: the asking side faces a lone king
	DrawInsufficientAuto // automatic: neither side can ever mate
)

// String returns a readable name for the draw type.
func (t DrawType) String() string {
	switch t {
	case Draw50Move:
		return "fifty move rule"
	case DrawRepetition:
		return "threefold repetition"
	case DrawInsufficient:
		return "insufficient material (claimable)"
	case DrawInsufficientAuto:
		return "insufficient material"
	}
	return "not a draw"
}

// IsDraw reports whether the position is drawn for the given claimant.
// Draw types are checked in priority order: automatic insufficient
// material, the fifty move rule, threefold repetition, then claimable
// insufficient material.
func (p *Position) IsDraw(whiteAsks bool) (bool, DrawType) {
	auto, claimable := p.insufficientMaterial(whiteAsks)
	if auto {
		return true, DrawInsufficientAuto
	}
	if p.halfMoveClock >= 100 {
		return true, Draw50Move
	}
	if p.RepetitionCount() >= 3 {
		return true, DrawRepetition
	}
	if claimable {
		return true, DrawInsufficient
	}
	return false, NotDraw
}

// insufficientMaterial scans the board once. The draw is automatic for
// K v K and for K v K plus a single minor piece (note that K+B v K+N and
// similar are not automatic because of corner selfmates). It is claimable
// when the asking side faces a lone enemy king, whatever material the
// asker still has, because no selfmate applies in that direction.
func (p *Position) insufficientMaterial(whiteAsks bool) (auto, claimable bool) {
	pieceCount := 0
	bishopOrKnight := false
	loneWKing, loneBKing := true, true

	for sq := chess.A8; sq <= chess.H1; sq++ {
		piece := p.squares[sq]
		switch piece {
		case 'B', 'b', 'N', 'n':
			bishopOrKnight = true
			fallthrough
		case 'Q', 'q', 'R', 'r', 'P', 'p':
			pieceCount++
			if chess.IsWhite(piece) {
				loneWKing = false
			} else {
				loneBKing = false
			}
		}
	}

	if pieceCount == 0 || (pieceCount == 1 && bishopOrKnight) {
		return true, false
	}
	if whiteAsks && loneBKing {
		return false, true
	}
	if !whiteAsks && loneWKing {
		return false, true
	}
	return false, false
}
