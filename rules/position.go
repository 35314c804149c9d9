package rules

import (
	"strings"

	"github.com/lgray/chessrules-go/chess"
	"github.com/lgray/chessrules-go/errors"
	"github.com/lgray/chessrules-go/internal/hashing"
)

// Position holds the full state of a game in progress: the board, side to
// move, the detail snapshot (castling rights, en passant target, king
// squares), the move clocks, the played-move history and the detail stack
// used to take moves back.
//
// A Position is owned by a single caller; it is not safe for concurrent
// use. Distinct positions share nothing but the read-only lookup tables.
type Position struct {
	squares       [64]byte
	white         bool // true when White is to move
	d             chess.Detail
	fullMoveCount int
	halfMoveClock int

	history     []chess.Move
	detailStack []chess.Detail

	// hashTrail holds the board hash after every played move, preceded by
	// the hash of the starting position. It is a prefilter for repetition
	// counting; castling and en passant state is deliberately excluded
	// from the hash so the filter can never reject an effective match.
	hashTrail []uint64
}

// NewPosition returns the standard initial position.
func NewPosition() *Position {
	p, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic("rules: initial position rejected: " + err.Error())
	}
	return p
}

// WhiteToMove reports whether White has the move.
func (p *Position) WhiteToMove() bool {
	return p.white
}

// At returns the piece code on sq (' ' when empty).
func (p *Position) At(sq chess.Square) byte {
	return p.squares[sq]
}

// Detail returns a copy of the current detail snapshot.
func (p *Position) Detail() chess.Detail {
	return p.d
}

// EnPassantTarget returns the current en passant target square, or
// chess.SquareInvalid when there is none.
func (p *Position) EnPassantTarget() chess.Square {
	return p.d.EnPassantTarget
}

// KingSquare returns the cached square of the white or black king.
func (p *Position) KingSquare(white bool) chess.Square {
	if white {
		return p.d.WKingSquare
	}
	return p.d.BKingSquare
}

// HalfMoveClock returns the number of half moves since the last pawn move
// or capture.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveCount returns the full move number, starting at 1.
func (p *Position) FullMoveCount() int {
	return p.fullMoveCount
}

// History returns the played moves. The returned slice is owned by the
// position and must not be modified.
func (p *Position) History() []chess.Move {
	return p.history
}

// Hash returns a 64-bit hash of the board and side to move. Castling and
// en passant state is not hashed.
func (p *Position) Hash() uint64 {
	return hashing.Board(&p.squares, p.white)
}

// Clone returns a deep copy. The clone shares nothing with the original,
// so the two may be used from different goroutines.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]chess.Move(nil), p.history...)
	c.detailStack = append([]chess.Detail(nil), p.detailStack...)
	c.hashTrail = append([]uint64(nil), p.hashTrail...)
	return &c
}

// String renders the board as eight ranks of piece codes with dots for
// empty squares, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for sq := chess.A8; sq <= chess.H1; sq++ {
		c := p.squares[sq]
		if chess.IsEmpty(c) {
			c = '.'
		}
		sb.WriteByte(c)
		if sq.File() == 'h' && sq != chess.H1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Validate checks the position against the static legality rules: pawns
// off the back ranks, exactly one king each, per-side piece and pawn
// limits, and the side not to move not being in check. All violations are
// reported at once in the error's reason mask.
func (p *Position) Validate() error {
	var reasons errors.Reason
	var wkings, bkings, wpawns, bpawns, wpieces, bpieces int
	oppositionKing := chess.SquareInvalid

	for sq := chess.A8; sq <= chess.H1; sq++ {
		c := p.squares[sq]
		rank := sq.Rank()
		if (c == 'P' || c == 'p') && (rank == '1' || rank == '8') {
			reasons |= errors.PawnPosition
		}
		switch {
		case chess.IsWhite(c):
			if c == 'P' {
				wpawns++
			} else {
				wpieces++
				if c == 'K' {
					wkings++
					if !p.white {
						oppositionKing = sq
					}
				}
			}
		case chess.IsBlack(c):
			if c == 'p' {
				bpawns++
			} else {
				bpieces++
				if c == 'k' {
					bkings++
					if p.white {
						oppositionKing = sq
					}
				}
			}
		}
	}

	if wkings != 1 || bkings != 1 {
		reasons |= errors.NotOneKingEach
	}
	if oppositionKing != chess.SquareInvalid && p.attackedPiece(oppositionKing) {
		reasons |= errors.CanTakeKing
	}
	if wpieces > 8 && wpieces+wpawns > 16 {
		reasons |= errors.WhiteTooManyPieces
	}
	if bpieces > 8 && bpieces+bpawns > 16 {
		reasons |= errors.BlackTooManyPieces
	}
	if wpawns > 8 {
		reasons |= errors.WhiteTooManyPawns
	}
	if bpawns > 8 {
		reasons |= errors.BlackTooManyPawns
	}

	if reasons != 0 {
		return &errors.PositionError{Reasons: reasons}
	}
	return nil
}
