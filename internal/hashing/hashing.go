// Package hashing provides position hashes for repetition detection.
package hashing

// The tables are filled deterministically from a splitmix64 stream, so
// hashes are stable across runs and platforms.

// pieceKeys holds one random key per (piece byte, square) pair. Indexing
// by the raw piece byte wastes some table space but keeps the lookup a
// single subscript with no piece-code translation.
var pieceKeys [128][64]uint64

// sideKey is mixed in when White is to move.
var sideKey uint64

func init() {
	state := uint64(0x9e3779b97f4a7c15)
	next := func() uint64 {
		state += 0x9e3779b97f4a7c15
		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}

	for _, piece := range []byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'} {
		for sq := 0; sq < 64; sq++ {
			pieceKeys[piece][sq] = next()
		}
	}
	sideKey = next()
}

// Board hashes a board and the side to move. Castling rights and the en
// passant target are deliberately excluded, so two positions with equal
// hashes may still need a detail comparison; the hash is a prefilter,
// never the verdict.
func Board(squares *[64]byte, whiteToMove bool) uint64 {
	var h uint64
	for sq, piece := range squares {
		if piece == ' ' {
			continue
		}
		h ^= pieceKeys[piece][sq]
	}
	if whiteToMove {
		h ^= sideKey
	}
	return h
}

// Weak is a cheap order-insensitive board hash. Equal boards always have
// equal weak hashes, so it confirms Board-hash hits before an exact
// comparison; it is never a verdict on its own.
func Weak(squares *[64]byte) uint64 {
	var h uint64
	for sq, piece := range squares {
		if piece == ' ' {
			continue
		}
		h += uint64(piece) * uint64(sq+1)
	}
	return h
}
