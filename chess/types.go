// Package chess provides the core value types of the rules engine:
// squares, piece codes, moves and the detail snapshot saved on every push.
package chess

// Square identifies a board square. Squares are numbered from the top-left
// corner of the board as White sees it: a8=0, b8=1, ... h8=7, a7=8, ... h1=63.
type Square int

// The 64 squares in board order.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// SquareInvalid marks "no square", e.g. an absent en passant target.
const SquareInvalid Square = 64

// Valid reports whether sq names a real board square.
func (sq Square) Valid() bool {
	return A8 <= sq && sq <= H1
}

// File returns the file character 'a'..'h' of the square.
func (sq Square) File() byte {
	return byte('a' + int(sq)%8)
}

// Rank returns the rank character '1'..'8' of the square.
func (sq Square) Rank() byte {
	return byte('8' - int(sq)/8)
}

// North returns the square one rank up (towards rank 8). The caller must
// know the destination exists; there is no wrap check.
func (sq Square) North() Square { return sq - 8 }

// South returns the square one rank down (towards rank 1).
func (sq Square) South() Square { return sq + 8 }

// East returns the square one file right (towards the h file).
func (sq Square) East() Square { return sq + 1 }

// West returns the square one file left (towards the a file).
func (sq Square) West() Square { return sq - 1 }

// MakeSquare builds a square from file ('a'..'h') and rank ('1'..'8')
// characters.
func MakeSquare(file, rank byte) Square {
	return Square(int('8'-rank)*8 + int(file-'a'))
}

// String returns the square in coordinate form, e.g. "e4", or "-" when
// the square is invalid.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{sq.File(), sq.Rank()})
}

// ParseSquare parses a two character coordinate like "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return SquareInvalid, false
	}
	return MakeSquare(s[0], s[1]), true
}

// Piece codes are single bytes: ' ' empty, uppercase PNBRQK for White,
// lowercase pnbrqk for Black.
const EmptySquare byte = ' '

// IsWhite reports whether p is a white piece code.
func IsWhite(p byte) bool {
	switch p {
	case 'P', 'N', 'B', 'R', 'Q', 'K':
		return true
	}
	return false
}

// IsBlack reports whether p is a black piece code.
func IsBlack(p byte) bool {
	switch p {
	case 'p', 'n', 'b', 'r', 'q', 'k':
		return true
	}
	return false
}

// IsEmpty reports whether p marks an empty square.
func IsEmpty(p byte) bool {
	return p == EmptySquare
}
