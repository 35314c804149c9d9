package rules

import (
	"fmt"
	"strings"

	"github.com/lgray/chessrules-go/chess"
	"github.com/lgray/chessrules-go/errors"
	"github.com/lgray/chessrules-go/internal/hashing"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// validPieceCode reports whether c is one of the twelve piece letters.
func validPieceCode(c byte) bool {
	return chess.IsWhite(c) || chess.IsBlack(c)
}

// NewPositionFromFEN parses a Forsyth-Edwards string. The halfmove clock
// and fullmove number fields may be omitted, as in many EPD sources. The
// parsed position is validated; an illegal setup is rejected with a
// *errors.PositionError carrying the full reason mask.
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	p := &Position{
		white:         true,
		fullMoveCount: 1,
		d:             chess.NewDetail(),
	}
	for i := range p.squares {
		p.squares[i] = chess.EmptySquare
	}
	p.d.WKing, p.d.WQueen, p.d.BKing, p.d.BQueen = false, false, false, false
	p.d.WKingSquare, p.d.BKingSquare = chess.SquareInvalid, chess.SquareInvalid

	if err := p.parsePlacement(parts[0]); err != nil {
		return nil, err
	}
	if err := p.parseSideToMove(parts); err != nil {
		return nil, err
	}
	p.parseCastlingRights(parts)
	if err := p.parseEnPassant(parts); err != nil {
		return nil, err
	}
	p.parseClocks(parts)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.hashTrail = []uint64{hashing.Board(&p.squares, p.white)}
	return p, nil
}

// parsePlacement parses the piece placement field, caching king squares as
// it goes.
func (p *Position) parsePlacement(placement string) error {
	file, row := 0, 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			row++
			file = 0
			if row > 7 {
				return errors.Wrap(errors.ErrInvalidFEN, "too many ranks")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > 8 {
				return errors.Wrap(errors.ErrInvalidFEN, "rank overflow")
			}
		default:
			if !validPieceCode(c) {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %q", c)
			}
			if file > 7 {
				return errors.Wrap(errors.ErrInvalidFEN, "rank overflow")
			}
			sq := chess.Square(row*8 + file)
			p.squares[sq] = c
			if c == 'K' {
				p.d.WKingSquare = sq
			} else if c == 'k' {
				p.d.BKingSquare = sq
			}
			file++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field; White moves when the
// field is absent.
func (p *Position) parseSideToMove(parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		p.white = true
	case "b":
		p.white = false
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %q", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Rights are
// recorded exactly as given; whether castling is actually playable is
// decided at generation time from king and rook presence.
func (p *Position) parseCastlingRights(parts []string) {
	if len(parts) < 3 || parts[2] == "-" {
		return
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			p.d.WKing = true
		case 'Q':
			p.d.WQueen = true
		case 'k':
			p.d.BKing = true
		case 'q':
			p.d.BQueen = true
		}
	}
}

// parseEnPassant parses the en passant target square field.
func (p *Position) parseEnPassant(parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid en passant square %q", parts[3])
	}
	p.d.EnPassantTarget = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func (p *Position) parseClocks(parts []string) {
	if len(parts) >= 5 {
		fmt.Sscanf(parts[4], "%d", &p.halfMoveClock)
	}
	if len(parts) >= 6 {
		fmt.Sscanf(parts[5], "%d", &p.fullMoveCount)
	}
}

// FEN returns the position as a Forsyth-Edwards string.
func (p *Position) FEN() string {
	var sb strings.Builder
	p.writePlacement(&sb)
	sb.WriteByte(' ')
	if p.white {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	p.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	p.writeEnPassant(&sb)
	fmt.Fprintf(&sb, " %d %d", p.halfMoveClock, p.fullMoveCount)
	return sb.String()
}

func (p *Position) writePlacement(sb *strings.Builder) {
	for row := 0; row < 8; row++ {
		empty := 0
		for file := 0; file < 8; file++ {
			c := p.squares[row*8+file]
			if chess.IsEmpty(c) {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
}

func (p *Position) writeCastlingRights(sb *strings.Builder) {
	any := false
	if p.d.WKing {
		sb.WriteByte('K')
		any = true
	}
	if p.d.WQueen {
		sb.WriteByte('Q')
		any = true
	}
	if p.d.BKing {
		sb.WriteByte('k')
		any = true
	}
	if p.d.BQueen {
		sb.WriteByte('q')
		any = true
	}
	if !any {
		sb.WriteByte('-')
	}
}

func (p *Position) writeEnPassant(sb *strings.Builder) {
	sb.WriteString(p.d.EnPassantTarget.String())
}
