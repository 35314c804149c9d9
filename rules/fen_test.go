package rules

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgray/chessrules-go/chess"
	"github.com/lgray/chessrules-go/errors"
	"github.com/lgray/chessrules-go/internal/testutil"
)

func mustPosition(t *testing.T, fen string) *Position {
	t.Helper()
	p, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	return p
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/4Pp2/8/8/4K3 b - e3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 3 9",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			p := mustPosition(t, fen)
			testutil.AssertEqual(t, p.FEN(), fen)
		})
	}
}

func TestFENShortForms(t *testing.T) {
	// Clock fields may be omitted, as in EPD sources.
	p := mustPosition(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	testutil.AssertEqual(t, p.HalfMoveClock(), 0)
	testutil.AssertEqual(t, p.FullMoveCount(), 1)
	testutil.AssertTrue(t, p.WhiteToMove())

	// Placement alone defaults everything else.
	p = mustPosition(t, "4k3/8/8/8/8/8/8/4K3")
	testutil.AssertTrue(t, p.WhiteToMove())
	testutil.AssertEqual(t, p.EnPassantTarget(), chess.SquareInvalid)
}

func TestFENParsedState(t *testing.T) {
	p := mustPosition(t, "4k3/8/8/8/4Pp2/8/8/4K3 b - e3 0 1")
	testutil.AssertFalse(t, p.WhiteToMove())
	testutil.AssertEqual(t, p.EnPassantTarget(), chess.E3)
	testutil.AssertEqual(t, p.At(chess.E4), byte('P'))
	testutil.AssertEqual(t, p.At(chess.F4), byte('p'))
	testutil.AssertEqual(t, p.KingSquare(true), chess.E1)
	testutil.AssertEqual(t, p.KingSquare(false), chess.E8)

	d := p.Detail()
	testutil.AssertFalse(t, d.WKing || d.WQueen || d.BKing || d.BQueen,
		"no castling rights expected")
}

func TestFENInvalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBXR w KQkq - 0 1"},
		{"rank overflow", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"too many ranks", "8/8/8/8/8/8/8/4k3/4K3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPositionFromFEN(tt.fen)
			if !stderrors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("NewPositionFromFEN(%q) = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestFENErrorContext(t *testing.T) {
	_, err := NewPositionFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBXR w KQkq - 0 1")
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrInvalidFEN), "sentinel must survive wrapping")
	testutil.AssertTrue(t, strings.Contains(err.Error(), "'X'"), "offending character should be named")

	_, err = NewPositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - e9 0 1")
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrInvalidFEN))
	testutil.AssertTrue(t, strings.Contains(err.Error(), `"e9"`), "offending square should be named")
}

func TestFENInvalidPosition(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		reason errors.Reason
	}{
		{"no kings", "8/8/8/8/8/8/8/8 w - - 0 1", errors.NotOneKingEach},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", errors.NotOneKingEach},
		{"pawn on back rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1", errors.PawnPosition},
		{"opponent in check", "4k3/4R3/8/8/8/8/8/4K3 w - - 0 1", errors.CanTakeKing},
		{"nine white pawns", "4k3/8/8/8/8/8/PPPPPPPP/P3K3 w - - 0 1", errors.WhiteTooManyPawns},
		{"nine black pawns", "p3k3/pppppppp/8/8/8/8/8/4K3 w - - 0 1", errors.BlackTooManyPawns},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPositionFromFEN(tt.fen)
			if !stderrors.Is(err, errors.ErrInvalidPosition) {
				t.Fatalf("NewPositionFromFEN(%q) = %v; want ErrInvalidPosition", tt.fen, err)
			}
			var pe *errors.PositionError
			if !stderrors.As(err, &pe) {
				t.Fatal("error is not a *errors.PositionError")
			}
			if pe.Reasons&tt.reason == 0 {
				t.Errorf("Reasons = %v; want %v set", pe.Reasons, tt.reason)
			}
		})
	}
}

func TestNewPosition(t *testing.T) {
	p := NewPosition()
	testutil.AssertEqual(t, p.FEN(), InitialFEN)
	testutil.AssertEqual(t, p.At(chess.E1), byte('K'))
	testutil.AssertEqual(t, p.At(chess.E8), byte('k'))
	d := p.Detail()
	testutil.AssertTrue(t, d.WKing && d.WQueen && d.BKing && d.BQueen)
}

func TestPositionString(t *testing.T) {
	got := NewPosition().String()
	want := "rnbqkbnr\n" +
		"pppppppp\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"PPPPPPPP\n" +
		"RNBQKBNR"
	testutil.AssertEqual(t, got, want)
}
