// Package errors provides sentinel errors and error types for the rules
// engine. It defines the typed failures surfaced at the engine boundary
// (position setup and move notation parsing) so that callers can inspect
// them with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates move text that does not name a legal move.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidPosition indicates a position that violates the rules of chess.
	ErrInvalidPosition = errors.New("invalid position")
)

// Reason is a bitmask of the ways a position can be illegal.
type Reason int

const (
	PawnPosition Reason = 1 << iota // pawn on rank 1 or rank 8
	NotOneKingEach
	CanTakeKing // side not to move is in check
	WhiteTooManyPieces
	BlackTooManyPieces
	WhiteTooManyPawns
	BlackTooManyPawns
)

var reasonNames = []struct {
	r    Reason
	name string
}{
	{PawnPosition, "pawn on back rank"},
	{NotOneKingEach, "not one king each"},
	{CanTakeKing, "side not to move is in check"},
	{WhiteTooManyPieces, "white has too many pieces"},
	{BlackTooManyPieces, "black has too many pieces"},
	{WhiteTooManyPawns, "white has too many pawns"},
	{BlackTooManyPawns, "black has too many pawns"},
}

// String lists every reason set in the mask.
func (r Reason) String() string {
	var parts []string
	for _, rn := range reasonNames {
		if r&rn.r != 0 {
			parts = append(parts, rn.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, ", ")
}

// PositionError reports why a position was rejected. Reasons is a bitmask;
// several violations can be present at once. It unwraps to
// ErrInvalidPosition.
type PositionError struct {
	Reasons Reason
}

// Error returns a formatted message listing every violation.
func (e *PositionError) Error() string {
	return fmt.Sprintf("invalid position: %s", e.Reasons)
}

// Unwrap returns ErrInvalidPosition, enabling errors.Is() checks.
func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

// MoveError reports move text that could not be resolved to a legal move.
// Notation names the notation that was being parsed ("SAN" or "UCI").
// It unwraps to ErrInvalidMove.
type MoveError struct {
	Input    string
	Notation string
}

// Error returns a formatted message including the offending input.
func (e *MoveError) Error() string {
	return fmt.Sprintf("invalid %s move %q", e.Notation, e.Input)
}

// Unwrap returns ErrInvalidMove, enabling errors.Is() checks.
func (e *MoveError) Unwrap() error {
	return ErrInvalidMove
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
