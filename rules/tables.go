// Package rules implements the chess rules engine: position state,
// pseudo-legal move generation, move application and retraction, legality
// and terminal detection, draw detection, and SAN/UCI/FEN notation.
package rules

import (
	"github.com/lgray/chessrules-go/chess"
)

// Attacker mask bits. Each step of an attack ray carries a mask of the
// piece kinds that can deliver an attack along that ray from that distance.
const (
	maskPawn byte = 1 << iota
	maskBishop
	maskRook
	maskQueen
	maskKing
)

// pieceMask maps a piece code to its attacker mask bit.
var pieceMask = [128]byte{
	'P': maskPawn, 'p': maskPawn,
	'B': maskBishop, 'b': maskBishop,
	'R': maskRook, 'r': maskRook,
	'Q': maskQueen, 'q': maskQueen,
	'K': maskKing, 'k': maskKing,
}

// attackStep is one square of an attack ray together with the mask of
// piece kinds that can attack the origin from it.
type attackStep struct {
	sq   chess.Square
	mask byte
}

// Per-square movement tables, built once at package init and read-only
// afterwards. All positions share them.
var (
	knightMoves [64][]chess.Square
	kingSteps   [64][]chess.Square
	bishopRays  [64][][]chess.Square
	rookRays    [64][][]chess.Square
	queenRays   [64][][]chess.Square

	// Pawn tables are indexed by the pawn's square. The capture table
	// holds the one or two diagonal targets; the advance table holds the
	// single step followed by the two-square step when available.
	whitePawnCaptures [64][]chess.Square
	blackPawnCaptures [64][]chess.Square
	whitePawnAdvances [64][]chess.Square
	blackPawnAdvances [64][]chess.Square

	// attacksByWhite[sq] answers "can a white piece attack sq?"; each ray
	// is walked outwards until occupied, then the occupant's mask decides.
	attacksByWhite [64][][]attackStep
	attacksByBlack [64][][]attackStep
)

var (
	orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs     = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// offsetSquare moves df files and dr rows from sq, where rows grow
// southwards (a8 is row 0). Reports whether the destination is on board.
func offsetSquare(sq chess.Square, df, dr int) (chess.Square, bool) {
	f := int(sq)%8 + df
	r := int(sq)/8 + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return chess.SquareInvalid, false
	}
	return chess.Square(r*8 + f), true
}

func init() {
	for i := 0; i < 64; i++ {
		sq := chess.Square(i)
		buildShortTables(sq)
		buildRayTables(sq)
		buildPawnTables(sq)
		attacksByWhite[sq] = buildAttackRays(sq, true)
		attacksByBlack[sq] = buildAttackRays(sq, false)
	}
}

func buildShortTables(sq chess.Square) {
	for _, d := range knightDirs {
		if dst, ok := offsetSquare(sq, d[0], d[1]); ok {
			knightMoves[sq] = append(knightMoves[sq], dst)
		}
	}
	for _, d := range orthogonalDirs {
		if dst, ok := offsetSquare(sq, d[0], d[1]); ok {
			kingSteps[sq] = append(kingSteps[sq], dst)
		}
	}
	for _, d := range diagonalDirs {
		if dst, ok := offsetSquare(sq, d[0], d[1]); ok {
			kingSteps[sq] = append(kingSteps[sq], dst)
		}
	}
}

func buildRayTables(sq chess.Square) {
	ray := func(df, dr int) []chess.Square {
		var r []chess.Square
		for step := 1; ; step++ {
			dst, ok := offsetSquare(sq, df*step, dr*step)
			if !ok {
				return r
			}
			r = append(r, dst)
		}
	}
	for _, d := range diagonalDirs {
		if r := ray(d[0], d[1]); len(r) > 0 {
			bishopRays[sq] = append(bishopRays[sq], r)
			queenRays[sq] = append(queenRays[sq], r)
		}
	}
	for _, d := range orthogonalDirs {
		if r := ray(d[0], d[1]); len(r) > 0 {
			rookRays[sq] = append(rookRays[sq], r)
			queenRays[sq] = append(queenRays[sq], r)
		}
	}
}

func buildPawnTables(sq chess.Square) {
	rank := sq.Rank()

	// White pawns move north (towards row 0).
	if rank != '1' && rank != '8' {
		for _, df := range []int{-1, 1} {
			if dst, ok := offsetSquare(sq, df, -1); ok {
				whitePawnCaptures[sq] = append(whitePawnCaptures[sq], dst)
			}
			if dst, ok := offsetSquare(sq, df, 1); ok {
				blackPawnCaptures[sq] = append(blackPawnCaptures[sq], dst)
			}
		}
		whitePawnAdvances[sq] = []chess.Square{sq.North()}
		if rank == '2' {
			whitePawnAdvances[sq] = append(whitePawnAdvances[sq], sq.North().North())
		}
		blackPawnAdvances[sq] = []chess.Square{sq.South()}
		if rank == '7' {
			blackPawnAdvances[sq] = append(blackPawnAdvances[sq], sq.South().South())
		}
	}
}

// buildAttackRays builds the attack rays answering "is sq attacked by the
// given colour?". Sliding attackers are valid at any distance along their
// line; kings only at distance one; pawns only at distance one on the
// diagonal matching their direction of attack (a white pawn attacks
// northwards, so it must stand south of its target).
func buildAttackRays(sq chess.Square, byWhite bool) [][]attackStep {
	var rays [][]attackStep
	appendRay := func(df, dr int, lineMask byte, pawnFirst bool) {
		var ray []attackStep
		for step := 1; ; step++ {
			dst, ok := offsetSquare(sq, df*step, dr*step)
			if !ok {
				break
			}
			mask := lineMask
			if step == 1 {
				mask |= maskKing
				if pawnFirst {
					mask |= maskPawn
				}
			}
			ray = append(ray, attackStep{sq: dst, mask: mask})
		}
		if len(ray) > 0 {
			rays = append(rays, ray)
		}
	}
	for _, d := range orthogonalDirs {
		appendRay(d[0], d[1], maskRook|maskQueen, false)
	}
	for _, d := range diagonalDirs {
		// dr > 0 walks south of sq, where an attacking white pawn stands.
		pawnFirst := (byWhite && d[1] > 0) || (!byWhite && d[1] < 0)
		appendRay(d[0], d[1], maskBishop|maskQueen, pawnFirst)
	}
	return rays
}
