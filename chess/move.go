package chess

// Special classifies the moves that need handling beyond a plain
// displacement when they are applied or taken back.
type Special int

const (
	NotSpecial Special = iota
	KingMove           // ordinary king step; updates the king square cache
	WKCastling
	WQCastling
	BKCastling
	BQCastling
	WEnPassant
	BEnPassant
	WPawn2Squares
	BPawn2Squares
	PromotionQueen
	PromotionRook
	PromotionBishop
	PromotionKnight
)

// Move is a compact value type describing a single move. Capture holds the
// piece removed by the move (' ' for quiet moves, 'P'/'p' for en passant)
// so the board can be restored exactly on undo.
type Move struct {
	Src     Square
	Dst     Square
	Special Special
	Capture byte
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return !IsEmpty(m.Capture)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	switch m.Special {
	case PromotionQueen, PromotionRook, PromotionBishop, PromotionKnight:
		return true
	}
	return false
}

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool {
	switch m.Special {
	case WKCastling, WQCastling, BKCastling, BQCastling:
		return true
	}
	return false
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Special == WEnPassant || m.Special == BEnPassant
}

// PromotionPiece returns the uppercase letter of the promoted piece,
// or 0 when the move is not a promotion.
func (m Move) PromotionPiece() byte {
	switch m.Special {
	case PromotionQueen:
		return 'Q'
	case PromotionRook:
		return 'R'
	case PromotionBishop:
		return 'B'
	case PromotionKnight:
		return 'N'
	}
	return 0
}

// UCI returns the move in pure coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	buf := []byte{m.Src.File(), m.Src.Rank(), m.Dst.File(), m.Dst.Rank()}
	if p := m.PromotionPiece(); p != 0 {
		buf = append(buf, p|0x20) // lowercase
	}
	return string(buf)
}

// String returns the UCI form of the move.
func (m Move) String() string {
	return m.UCI()
}
