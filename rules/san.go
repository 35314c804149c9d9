package rules

import (
	"strings"

	"github.com/lgray/chessrules-go/chess"
	"github.com/lgray/chessrules-go/errors"
)

// sanIntent is the normalized result of tokenizing SAN input: the piece
// and whatever squares and qualifiers the text pins down. Matching
// against the legal move list happens in a single pass afterwards.
type sanIntent struct {
	piece        byte // resolved piece code of the mover
	defaultPiece bool // piece was defaulted to a pawn, not written
	srcFile      byte // 'a'..'h' or 0
	srcRank      byte // '1'..'8' or 0
	dstFile      byte
	dstRank      byte
	promotion    byte // 'Q' 'R' 'B' 'N' or 0
	enPassant    bool
	kCastling    bool
	qCastling    bool
}

func isFileChar(c byte) bool { return 'a' <= c && c <= 'h' }
func isRankChar(c byte) bool { return '1' <= c && c <= '8' }

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// trimTrailing strips annotation characters (+ # ! ? = .) from the end.
func trimTrailing(s string) string {
	for len(s) > 0 && !isAlnum(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

// ParseSAN resolves a move in standard algebraic notation against the
// legal moves of the position. Accepted forms include piece moves with
// optional file/rank disambiguators ("Nf3", "Rae1", "R2d2", "Qb1d3"),
// pawn moves and captures ("e4", "exd6", short forms "ab" and "a5b"),
// promotions with or without "=" ("a8=Q", "a8Q"), castling in several
// spellings ("O-O", "o-o-o", "OO"), and an explicit "ep"/"e.p." suffix.
//
// One inherited subtlety is kept deliberately: a trailing 'b' on a three
// character move whose middle character is a rank 2..7 is read as a
// destination file (the "a5b" pawn capture form), and only otherwise as
// a bishop promotion.
func (p *Position) ParseSAN(text string) (chess.Move, error) {
	invalid := func() (chess.Move, error) {
		return chess.Move{}, &errors.MoveError{Input: text, Notation: "SAN"}
	}

	intent, ok := p.tokenizeSAN(text)
	if !ok {
		return invalid()
	}
	found, ok := p.matchIntent(intent)
	if !ok {
		return invalid()
	}

	// Reconcile the promotion letter with the matched move.
	if intent.promotion != 0 && !found.IsPromotion() {
		return invalid()
	}
	if found.IsPromotion() {
		switch intent.promotion {
		case 'R':
			found.Special = chess.PromotionRook
		case 'B':
			found.Special = chess.PromotionBishop
		case 'N':
			found.Special = chess.PromotionKnight
		default:
			found.Special = chess.PromotionQueen
		}
	}
	return found, nil
}

// tokenizeSAN reduces the input to a sanIntent.
func (p *Position) tokenizeSAN(text string) (sanIntent, bool) {
	intent := sanIntent{defaultPiece: true, piece: 'P'}
	if !p.white {
		intent.piece = 'p'
	}

	move := strings.TrimLeft(text, " \t")
	if i := strings.IndexAny(move, " \t\r\n"); i >= 0 {
		move = move[:i]
	}
	if len(move) > 9 {
		return intent, false
	}
	move = trimTrailing(move)

	// Explicit en passant suffix.
	if len(move) >= 2 && move[len(move)-1] == 'p' {
		if strings.HasSuffix(move, "ep") {
			move = move[:len(move)-2]
			intent.enPassant = true
		} else if len(move) >= 3 && strings.HasSuffix(move, "e.p") {
			move = move[:len(move)-3]
			intent.enPassant = true
		}
		move = trimTrailing(move)
	}

	// Promotion letter; only considered when the move is longer than a
	// bare pawn-capture pair so that "ab" and "ef" stay untouched.
	if len(move) > 2 {
		last := move[len(move)-1]
		if !isRankChar(last) {
			promote := byte(0)
			switch last {
			case 'O', 'o':
				// castling, handled below
			case 'q', 'Q':
				promote = 'Q'
			case 'r', 'R':
				promote = 'R'
			case 'b':
				if len(move) == 3 && '2' <= move[1] && move[1] <= '7' {
					break // trailing 'b' is a destination file here
				}
				promote = 'B'
			case 'B':
				promote = 'B'
			case 'n', 'N':
				promote = 'N'
			default:
				return intent, false
			}
			if promote != 0 {
				switch move[len(move)-2] {
				case '=', '1', '8': // "=" may be omitted on the back ranks
				default:
					return intent, false
				}
				intent.promotion = promote
				move = trimTrailing(move[:len(move)-1])
			}
		}
	}

	// Castling rewrites to the king's coordinate move.
	lower := strings.ToLower(move)
	if lower == "oo" || lower == "o-o" {
		move = "e1g1"
		if !p.white {
			move = "e8g8"
		}
		intent.piece = pieceForSide('K', p.white)
		intent.defaultPiece = false
		intent.kCastling = true
	} else if lower == "ooo" || lower == "o-o-o" {
		move = "e1c1"
		if !p.white {
			move = "e8c8"
		}
		intent.piece = pieceForSide('K', p.white)
		intent.defaultPiece = false
		intent.qCastling = true
	}

	// Destination.
	n := len(move)
	switch {
	case n == 2 && isFileChar(move[0]) && isFileChar(move[1]):
		intent.srcFile = move[0] // "ab": pawn takes pawn
		intent.dstFile = move[1]
	case n == 3 && isFileChar(move[0]) && '2' <= move[1] && move[1] <= '7' && isFileChar(move[2]):
		intent.srcFile = move[0] // "a5b": disambiguated pawn takes pawn
		intent.dstFile = move[2]
	case n >= 2 && isFileChar(move[n-2]) && isRankChar(move[n-1]):
		intent.dstFile = move[n-2]
		intent.dstRank = move[n-1]
	default:
		return intent, false
	}

	// Source square and/or piece letter.
	if n > 2 {
		if isFileChar(move[0]) && isRankChar(move[1]) {
			intent.srcFile = move[0]
			intent.srcRank = move[1]
		} else {
			switch move[0] {
			case 'K', 'Q', 'R', 'N', 'P', 'B':
				intent.piece = pieceForSide(move[0], p.white)
				intent.defaultPiece = false
			default:
				if isFileChar(move[0]) {
					intent.srcFile = move[0] // "ef4"
				} else {
					return intent, false
				}
			}
			if n > 3 && intent.srcFile == 0 {
				if isRankChar(move[1]) {
					intent.srcRank = move[1]
				} else if isFileChar(move[1]) {
					intent.srcFile = move[1]
					if n > 4 && isRankChar(move[2]) {
						intent.srcRank = move[2]
					}
				}
			}
		}
	}
	return intent, true
}

// pieceForSide returns the piece code for an uppercase SAN letter and a
// side to move.
func pieceForSide(letter byte, white bool) byte {
	if white {
		return letter
	}
	return letter | 0x20
}

// matchIntent finds the unique legal move matching the intent's
// discriminants. The branches run from the most to the least constrained
// form, mirroring the notation's grammar.
func (p *Position) matchIntent(intent sanIntent) (chess.Move, bool) {
	list := p.LegalMoves()

	srcFile, srcRank := intent.srcFile, intent.srcRank
	dstFile, dstRank := intent.dstFile, intent.dstRank
	if intent.enPassant {
		srcRank, dstRank = 0, 0
	}
	var dst chess.Square
	if dstFile != 0 && dstRank != 0 {
		dst = chess.MakeSquare(dstFile, dstRank)
	}

	switch {
	// Full source and destination, e.g. "d2d3" (and rewritten castling).
	case srcFile != 0 && srcRank != 0 && dstFile != 0 && dstRank != 0:
		for _, m := range list {
			if (intent.defaultPiece || intent.piece == p.squares[m.Src]) &&
				srcFile == m.Src.File() && srcRank == m.Src.Rank() && dst == m.Dst {
				if intent.kCastling {
					if m.Special == castlingSpecial(p.white, true) {
						return m, true
					}
					return chess.Move{}, false
				}
				if intent.qCastling {
					if m.Special == castlingSpecial(p.white, false) {
						return m, true
					}
					return chess.Move{}, false
				}
				return m, true
			}
		}

	// Source file only, e.g. "Rae1".
	case srcFile != 0 && dstFile != 0 && dstRank != 0:
		for _, m := range list {
			if intent.piece == p.squares[m.Src] && srcFile == m.Src.File() && dst == m.Dst {
				return m, true
			}
		}

	// Source rank only, e.g. "R2d2".
	case srcRank != 0 && dstFile != 0 && dstRank != 0:
		for _, m := range list {
			if intent.piece == p.squares[m.Src] && srcRank == m.Src.Rank() && dst == m.Dst {
				return m, true
			}
		}

	// Destination file only, e.g. "e4f" (when two "ef" moves exist).
	case srcFile != 0 && srcRank != 0 && dstFile != 0:
		for _, m := range list {
			if intent.piece == p.squares[m.Src] && srcFile == m.Src.File() &&
				srcRank == m.Src.Rank() && dstFile == m.Dst.File() {
				return m, true
			}
		}

	// Files only, e.g. "ef".
	case srcFile != 0 && dstFile != 0:
		for _, m := range list {
			if intent.piece == p.squares[m.Src] && srcFile == m.Src.File() &&
				dstFile == m.Dst.File() {
				if intent.enPassant {
					if m.IsEnPassant() {
						return m, true
					}
					return chess.Move{}, false
				}
				return m, true
			}
		}

	// Destination square only, e.g. "a4" or "Nf3".
	case dstFile != 0 && dstRank != 0:
		for _, m := range list {
			if intent.piece == p.squares[m.Src] && dst == m.Dst {
				return m, true
			}
		}
	}
	return chess.Move{}, false
}

// castlingSpecial returns the castling special for a side.
func castlingSpecial(white, kingside bool) chess.Special {
	if white {
		if kingside {
			return chess.WKCastling
		}
		return chess.WQCastling
	}
	if kingside {
		return chess.BKCastling
	}
	return chess.BQCastling
}

// SAN disambiguation stages, tried in order until the rendering is
// unique among the legal moves.
const (
	algPieceDst     = iota // "Nd2" / "Nxd2"
	algPieceFileDst        // "Nbd2"
	algPieceRankDst        // "N1d2"
	algPieceFull           // "Nb1d2", unconditional fallback
)

// FormatSAN renders a legal move in standard algebraic notation, using
// the shortest unambiguous disambiguation and appending '+' for check or
// '#' for mate. An illegal move renders as "--".
func (p *Position) FormatSAN(m chess.Move) string {
	annotated := p.LegalMovesAnnotated()
	found := false
	var suffix byte
	for _, am := range annotated {
		if am.Move == m {
			found = true
			if am.Mate {
				suffix = '#'
			} else if am.Check {
				suffix = '+'
			}
			break
		}
	}
	if !found {
		return "--"
	}

	san := p.renderBase(m)
	if suffix != 0 {
		san += string(suffix)
	}
	return san
}

// renderBase picks the SAN body: pawn form, castling, then the staged
// piece forms, each checked for uniqueness against every legal move
// rendered the same way.
func (p *Position) renderBase(m chess.Move) string {
	piece := upperPiece(p.squares[m.Src])
	if piece == 'P' {
		return pawnSAN(m)
	}
	switch m.Special {
	case chess.WKCastling, chess.BKCastling:
		return "O-O"
	case chess.WQCastling, chess.BQCastling:
		return "O-O-O"
	}

	legal := p.LegalMoves()
	for alg := algPieceDst; alg < algPieceFull; alg++ {
		candidate := p.renderPiece(alg, m)
		matches := 0
		for _, other := range legal {
			if p.renderPiece(alg, other) == candidate {
				matches++
			}
		}
		if matches == 1 {
			return candidate
		}
	}
	return p.renderPiece(algPieceFull, m)
}

// pawnSAN renders a pawn move: "e4", "exf6", with "=Q" etc on promotion.
func pawnSAN(m chess.Move) string {
	var sb strings.Builder
	if m.IsCapture() {
		sb.WriteByte(m.Src.File())
		sb.WriteByte('x')
	}
	sb.WriteByte(m.Dst.File())
	sb.WriteByte(m.Dst.Rank())
	if promo := m.PromotionPiece(); promo != 0 {
		sb.WriteByte('=')
		sb.WriteByte(promo)
	}
	return sb.String()
}

// renderPiece renders a non-pawn move at the given disambiguation stage.
func (p *Position) renderPiece(alg int, m chess.Move) string {
	var sb strings.Builder
	sb.WriteByte(upperPiece(p.squares[m.Src]))
	switch alg {
	case algPieceFileDst:
		sb.WriteByte(m.Src.File())
	case algPieceRankDst:
		sb.WriteByte(m.Src.Rank())
	case algPieceFull:
		sb.WriteByte(m.Src.File())
		sb.WriteByte(m.Src.Rank())
	}
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteByte(m.Dst.File())
	sb.WriteByte(m.Dst.Rank())
	return sb.String()
}

// upperPiece uppercases a piece code.
func upperPiece(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c &^ 0x20
	}
	return c
}

// PlaySAN parses a SAN move and plays it.
func (p *Position) PlaySAN(text string) (chess.Move, error) {
	m, err := p.ParseSAN(text)
	if err != nil {
		return chess.Move{}, err
	}
	p.PlayMove(m)
	return m, nil
}
