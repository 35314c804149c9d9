package chess

// Detail is the slice of position state that cannot be recomputed from a
// move alone and must therefore be saved on every push: the en passant
// target, the four castling rights flags and the cached king squares.
//
// A castling flag being true means the right has not yet been invalidated
// by a move arriving on the king's or the corresponding rook's home square.
// Final castling legality additionally requires the king and rook to stand
// on their home squares.
type Detail struct {
	EnPassantTarget Square
	WKing           bool
	WQueen          bool
	BKing           bool
	BQueen          bool
	WKingSquare     Square
	BKingSquare     Square
}

// NewDetail returns a detail with no en passant target, all castling
// rights set and the king squares on their initial squares.
func NewDetail() Detail {
	return Detail{
		EnPassantTarget: SquareInvalid,
		WKing:           true,
		WQueen:          true,
		BKing:           true,
		BQueen:          true,
		WKingSquare:     E1,
		BKingSquare:     E8,
	}
}

// EqCastling reports whether the four castling rights flags agree.
func (d Detail) EqCastling(o Detail) bool {
	return d.WKing == o.WKing && d.WQueen == o.WQueen &&
		d.BKing == o.BKing && d.BQueen == o.BQueen
}
