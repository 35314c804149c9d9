package rules

import (
	"github.com/lgray/chessrules-go/chess"
	"github.com/lgray/chessrules-go/errors"
)

// promotionSpecial maps a lowercase UCI promotion letter to its special.
func promotionSpecial(c byte) (chess.Special, bool) {
	switch c {
	case 'q', 'Q':
		return chess.PromotionQueen, true
	case 'r', 'R':
		return chess.PromotionRook, true
	case 'b', 'B':
		return chess.PromotionBishop, true
	case 'n', 'N':
		return chess.PromotionKnight, true
	}
	return chess.NotSpecial, false
}

// ParseUCI resolves a pure coordinate move like "e2e4" or "e7e8q" against
// the legal moves of the position.
func (p *Position) ParseUCI(text string) (chess.Move, error) {
	invalid := func() (chess.Move, error) {
		return chess.Move{}, &errors.MoveError{Input: text, Notation: "UCI"}
	}

	if len(text) != 4 && len(text) != 5 {
		return invalid()
	}
	src, ok := chess.ParseSquare(text[:2])
	if !ok {
		return invalid()
	}
	dst, ok := chess.ParseSquare(text[2:4])
	if !ok {
		return invalid()
	}
	promo := chess.NotSpecial
	if len(text) == 5 {
		promo, ok = promotionSpecial(text[4])
		if !ok {
			return invalid()
		}
	}

	for _, m := range p.LegalMoves() {
		if m.Src != src || m.Dst != dst {
			continue
		}
		// A promotion must be matched by kind; a promotion letter on a
		// non-promotion move (or vice versa) is a mismatch.
		if m.IsPromotion() || promo != chess.NotSpecial {
			if m.Special != promo {
				continue
			}
		}
		return m, nil
	}
	return invalid()
}

// FormatUCI returns the move in pure coordinate notation.
func (p *Position) FormatUCI(m chess.Move) string {
	return m.UCI()
}

// PlayUCI parses a UCI move and plays it.
func (p *Position) PlayUCI(text string) (chess.Move, error) {
	m, err := p.ParseUCI(text)
	if err != nil {
		return chess.Move{}, err
	}
	p.PlayMove(m)
	return m, nil
}
