package rules

import (
	"testing"

	"github.com/lgray/chessrules-go/internal/testutil"
)

func playUCILine(t *testing.T, p *Position, line ...string) {
	t.Helper()
	for _, uci := range line {
		if _, err := p.PlayUCI(uci); err != nil {
			t.Fatalf("PlayUCI(%q): %v", uci, err)
		}
	}
}

func TestRepetitionCountFresh(t *testing.T) {
	testutil.AssertEqual(t, NewPosition().RepetitionCount(), 1)
}

func TestRepetitionKnightShuffle(t *testing.T) {
	p := NewPosition()
	playUCILine(t, p, "g1f3", "g8f6", "f3g1", "f6g8")
	testutil.AssertEqual(t, p.RepetitionCount(), 2)

	playUCILine(t, p, "g1f3", "g8f6", "f3g1", "f6g8")
	testutil.AssertEqual(t, p.RepetitionCount(), 3)

	drawn, kind := p.IsDraw(true)
	testutil.AssertTrue(t, drawn)
	testutil.AssertEqual(t, kind, DrawRepetition)
}

func TestRepetitionCountsEveryRecurrence(t *testing.T) {
	// The hash prefilters must pass every true match through: a shuffle
	// repeated three times counts all four occurrences.
	p := NewPosition()
	for i := 0; i < 3; i++ {
		playUCILine(t, p, "b1c3", "b8c6", "c3b1", "c6b8")
	}
	testutil.AssertEqual(t, p.RepetitionCount(), 4)
}

func TestRepetitionWalkDoesNotDisturbPosition(t *testing.T) {
	p := NewPosition()
	playUCILine(t, p, "g1f3", "g8f6", "f3g1", "f6g8")
	before := p.FEN()
	historyLen := len(p.History())

	p.RepetitionCount()

	testutil.AssertEqual(t, p.FEN(), before)
	testutil.AssertEqual(t, len(p.History()), historyLen)

	// The count itself is stable across calls.
	testutil.AssertEqual(t, p.RepetitionCount(), p.RepetitionCount())
}

func TestRepetitionIgnoresDeadEnPassantTarget(t *testing.T) {
	// After 1.e4 the en passant target e3 is set but no black pawn can
	// use it, so the position still matches its later recurrences.
	p := NewPosition()
	playUCILine(t, p,
		"e2e4",
		"g8f6", "b1c3", "f6g8", "c3b1",
		"g8f6", "b1c3", "f6g8", "c3b1")
	testutil.AssertEqual(t, p.RepetitionCount(), 3)
}

func TestRepetitionLiveEnPassantTargetDiffers(t *testing.T) {
	// Here the double advance creates a real en passant chance: the d4
	// pawn could capture on e3. The position right after 1.e4 is then
	// genuinely different from its en-passant-less recurrences.
	p := mustPosition(t, "rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 2")
	playUCILine(t, p,
		"e2e4",
		"g8f6", "b1c3", "f6g8", "c3b1",
		"g8f6", "b1c3", "f6g8", "c3b1")
	testutil.AssertEqual(t, p.RepetitionCount(), 2)
}

func TestRepetitionCosmeticCastlingRights(t *testing.T) {
	// The rooks start away from their corners, so the recorded rights
	// never translate into a real castling possibility. The flag cleared
	// by the rook's visit to a1 changes nothing effective.
	p := mustPosition(t, "1r2k1r1/8/8/8/8/8/8/1R2K1R1 w KQkq - 0 1")
	playUCILine(t, p, "b1a1", "b8a8", "a1b1", "a8b8")
	testutil.AssertEqual(t, p.RepetitionCount(), 2)
}

func TestRepetitionRealCastlingRightsLost(t *testing.T) {
	// The h1 rook leaves home and returns; the right recorded in the
	// detail is gone, and this time it was a real one. The original
	// position does not count as a repetition.
	p := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	playUCILine(t, p, "h1h2", "h8h7", "h2h1", "h7h8")
	testutil.AssertEqual(t, p.RepetitionCount(), 1)
}

func TestRepetitionStopsAtPawnMove(t *testing.T) {
	p := NewPosition()
	playUCILine(t, p, "e2e4", "e7e5", "g1f3", "g8f6", "f3g1", "f6g8")
	// The knights returned, but the position before the pawn moves is
	// unreachable: the walk stops at 1...e5.
	testutil.AssertEqual(t, p.RepetitionCount(), 2)
}

func TestFiftyMoveRule(t *testing.T) {
	p := mustPosition(t, "4k3/8/8/8/8/8/8/4K2R w - - 99 80")
	drawn, _ := p.IsDraw(false)
	testutil.AssertFalse(t, drawn, "clock at 99 is not yet a draw")

	playUCILine(t, p, "h1h2")
	drawn, kind := p.IsDraw(false)
	testutil.AssertTrue(t, drawn)
	testutil.AssertEqual(t, kind, Draw50Move)
}

func TestFiftyMoveClockResetByPawn(t *testing.T) {
	p := mustPosition(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 99 80")
	playUCILine(t, p, "e2e3")
	drawn, _ := p.IsDraw(false)
	testutil.AssertFalse(t, drawn)
	testutil.AssertEqual(t, p.HalfMoveClock(), 0)
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		whiteAsks bool
		drawn     bool
		kind      DrawType
	}{
		{"king vs king", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true, true, DrawInsufficientAuto},
		{"king and bishop vs king", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true, true, DrawInsufficientAuto},
		{"king and knight vs king", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", false, true, DrawInsufficientAuto},
		{"two minors is not automatic", "3nk3/8/8/8/8/8/8/4KN2 w - - 0 1", true, false, NotDraw},
		{"queen vs lone king, asker ahead", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", true, true, DrawInsufficient},
		{"queen vs lone king, asker behind", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false, false, NotDraw},
		{"pawn vs lone king, asker ahead", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", true, true, DrawInsufficient},
		{"pawn vs lone king, asker behind", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false, false, NotDraw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPosition(t, tt.fen)
			drawn, kind := p.IsDraw(tt.whiteAsks)
			testutil.AssertEqual(t, drawn, tt.drawn)
			testutil.AssertEqual(t, kind, tt.kind)
		})
	}
}

func TestAutomaticDrawBeatsFiftyMoveClock(t *testing.T) {
	p := mustPosition(t, "4k3/8/8/8/8/8/8/4KB2 w - - 120 90")
	drawn, kind := p.IsDraw(true)
	testutil.AssertTrue(t, drawn)
	testutil.AssertEqual(t, kind, DrawInsufficientAuto)
}

func TestDrawTypeString(t *testing.T) {
	tests := []struct {
		kind DrawType
		want string
	}{
		{NotDraw, "not a draw"},
		{Draw50Move, "fifty move rule"},
		{DrawRepetition, "threefold repetition"},
		{DrawInsufficient, "insufficient material (claimable)"},
		{DrawInsufficientAuto, "insufficient material"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("DrawType(%d).String() = %q; want %q", tt.kind, got, tt.want)
		}
	}
}
