package chess

import (
	"testing"
)

func TestSquareFileRank(t *testing.T) {
	tests := []struct {
		sq   Square
		file byte
		rank byte
	}{
		{A8, 'a', '8'},
		{H8, 'h', '8'},
		{A1, 'a', '1'},
		{H1, 'h', '1'},
		{E4, 'e', '4'},
	}
	for _, tt := range tests {
		t.Run(tt.sq.String(), func(t *testing.T) {
			if got := tt.sq.File(); got != tt.file {
				t.Errorf("File() = %c; want %c", got, tt.file)
			}
			if got := tt.sq.Rank(); got != tt.rank {
				t.Errorf("Rank() = %c; want %c", got, tt.rank)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	if got := E4.String(); got != "e4" {
		t.Errorf("E4.String() = %q; want %q", got, "e4")
	}
	if got := SquareInvalid.String(); got != "-" {
		t.Errorf("SquareInvalid.String() = %q; want %q", got, "-")
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input string
		want  Square
		ok    bool
	}{
		{"a8", A8, true},
		{"h1", H1, true},
		{"e4", E4, true},
		{"i4", SquareInvalid, false},
		{"e9", SquareInvalid, false},
		{"e", SquareInvalid, false},
		{"", SquareInvalid, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSquare(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSquareSteps(t *testing.T) {
	if got := E4.North(); got != E5 {
		t.Errorf("E4.North() = %v; want e5", got)
	}
	if got := E4.South(); got != E3 {
		t.Errorf("E4.South() = %v; want e3", got)
	}
	if got := E4.East(); got != F4 {
		t.Errorf("E4.East() = %v; want f4", got)
	}
	if got := E4.West(); got != D4 {
		t.Errorf("E4.West() = %v; want d4", got)
	}
}

func TestMakeSquare(t *testing.T) {
	if got := MakeSquare('e', '4'); got != E4 {
		t.Errorf("MakeSquare('e','4') = %v; want e4", got)
	}
	if got := MakeSquare('a', '8'); got != A8 {
		t.Errorf("MakeSquare('a','8') = %v; want a8", got)
	}
}

func TestPieceClassification(t *testing.T) {
	for _, c := range []byte{'P', 'N', 'B', 'R', 'Q', 'K'} {
		if !IsWhite(c) || IsBlack(c) || IsEmpty(c) {
			t.Errorf("%c misclassified", c)
		}
	}
	for _, c := range []byte{'p', 'n', 'b', 'r', 'q', 'k'} {
		if !IsBlack(c) || IsWhite(c) || IsEmpty(c) {
			t.Errorf("%c misclassified", c)
		}
	}
	if !IsEmpty(EmptySquare) {
		t.Error("EmptySquare not classified as empty")
	}
}

func TestMoveUCI(t *testing.T) {
	tests := []struct {
		name string
		m    Move
		want string
	}{
		{"quiet", Move{Src: E2, Dst: E4, Special: WPawn2Squares, Capture: EmptySquare}, "e2e4"},
		{"capture", Move{Src: E4, Dst: D5, Special: NotSpecial, Capture: 'p'}, "e4d5"},
		{"promotion", Move{Src: A7, Dst: A8, Special: PromotionQueen, Capture: EmptySquare}, "a7a8q"},
		{"underpromotion", Move{Src: A7, Dst: A8, Special: PromotionKnight, Capture: EmptySquare}, "a7a8n"},
		{"castling", Move{Src: E1, Dst: G1, Special: WKCastling, Capture: EmptySquare}, "e1g1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.UCI(); got != tt.want {
				t.Errorf("UCI() = %q; want %q", got, tt.want)
			}
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMoveClassification(t *testing.T) {
	ep := Move{Src: E5, Dst: F6, Special: WEnPassant, Capture: 'p'}
	if !ep.IsEnPassant() || !ep.IsCapture() || ep.IsPromotion() || ep.IsCastling() {
		t.Error("en passant move misclassified")
	}
	castle := Move{Src: E8, Dst: C8, Special: BQCastling, Capture: EmptySquare}
	if !castle.IsCastling() || castle.IsCapture() {
		t.Error("castling move misclassified")
	}
	promo := Move{Src: B7, Dst: B8, Special: PromotionRook, Capture: EmptySquare}
	if !promo.IsPromotion() || promo.PromotionPiece() != 'R' {
		t.Error("promotion move misclassified")
	}
	if quiet := (Move{Src: G1, Dst: F3, Capture: EmptySquare}); quiet.PromotionPiece() != 0 {
		t.Error("quiet move reported a promotion piece")
	}
}

func TestDetailEqCastling(t *testing.T) {
	a := NewDetail()
	b := NewDetail()
	if !a.EqCastling(b) {
		t.Error("identical details should have equal castling")
	}
	b.WQueen = false
	if a.EqCastling(b) {
		t.Error("details with different castling flags compared equal")
	}
	c := NewDetail()
	c.EnPassantTarget = E3
	if !a.EqCastling(c) {
		t.Error("EqCastling should ignore the en passant target")
	}
}
