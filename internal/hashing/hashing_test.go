package hashing

import (
	"testing"
)

func startingSquares() [64]byte {
	var squares [64]byte
	copy(squares[:], []byte(
		"rnbqkbnr"+
			"pppppppp"+
			"        "+
			"        "+
			"        "+
			"        "+
			"PPPPPPPP"+
			"RNBQKBNR"))
	return squares
}

func TestBoardDeterministic(t *testing.T) {
	squares := startingSquares()
	first := Board(&squares, true)
	second := Board(&squares, true)
	if first != second {
		t.Errorf("Board() not deterministic: got %#x then %#x", first, second)
	}
	if first == 0 {
		t.Errorf("Board() = 0; want non-zero for the starting position")
	}
}

func TestBoardSideToMove(t *testing.T) {
	squares := startingSquares()
	if Board(&squares, true) == Board(&squares, false) {
		t.Errorf("Board() ignores side to move")
	}
}

func TestBoardPieceSensitivity(t *testing.T) {
	base := startingSquares()
	baseHash := Board(&base, true)

	tests := []struct {
		name   string
		mutate func(*[64]byte)
	}{
		{"moved pawn", func(s *[64]byte) { s[52], s[36] = ' ', 'P' }},
		{"removed knight", func(s *[64]byte) { s[1] = ' ' }},
		{"changed piece kind", func(s *[64]byte) { s[0] = 'q' }},
		{"changed piece color", func(s *[64]byte) { s[0] = 'R' }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			squares := startingSquares()
			tt.mutate(&squares)
			if Board(&squares, true) == baseHash {
				t.Errorf("Board() collision after %s", tt.name)
			}
		})
	}
}

func TestWeakDetectsDifferences(t *testing.T) {
	base := startingSquares()
	moved := startingSquares()
	moved[52], moved[36] = ' ', 'P'

	if Weak(&base) != Weak(&base) {
		t.Errorf("Weak() not deterministic")
	}
	if Weak(&base) == Weak(&moved) {
		t.Errorf("Weak() collision between starting position and 1.e4")
	}
}

func BenchmarkBoard(b *testing.B) {
	squares := startingSquares()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Board(&squares, i%2 == 0)
	}
}
