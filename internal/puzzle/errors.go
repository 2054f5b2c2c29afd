package puzzle

import "errors"

// Sentinel errors returned by the puzzle core. Callers match them with errors.Is;
// the returned errors are wrapped with call-site details.
var (
	// ErrInvalidSize is returned when a board size outside MinSize..MaxSize is requested.
	ErrInvalidSize = errors.New("puzzle: invalid board size")

	// ErrOutOfRange is returned when a target index is outside the board.
	ErrOutOfRange = errors.New("puzzle: index out of range")

	// ErrInvalidBoard is returned when a tile sequence is not a permutation of 0..N²-1.
	ErrInvalidBoard = errors.New("puzzle: invalid board")
)
