// Package puzzle implements the sliding-tile puzzle state machine: board
// representation, shuffling, move legality, win detection, directional input
// mapping and the game session lifecycle.
//
// The package has no UI dependencies. Presentation layers drive a Session through
// its command methods and observe it through snapshots and the won notification.
package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Board size limits.
const (
	MinSize     = 3
	MaxSize     = 5
	DefaultSize = 4
)

// Blank is the tile value that represents the empty slot.
const Blank = 0

// ValidSize reports whether size is an accepted board dimension.
func ValidSize(size int) bool {
	return size >= MinSize && size <= MaxSize
}

// Board is a square arrangement of tiles stored row-major.
// tiles is always a permutation of 0..size²-1 and blank always holds the position of 0.
type Board struct {
	size  int
	tiles []int
	blank int
}

// Solved returns the canonical solved board [1, 2, ..., N²-1, 0].
func Solved(size int) (Board, error) {
	if !ValidSize(size) {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return solved(size), nil
}

// solved builds the solved board without validating size.
func solved(size int) Board {
	n := size * size
	tiles := make([]int, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = i + 1
	}
	tiles[n-1] = Blank
	return Board{size: size, tiles: tiles, blank: n - 1}
}

// FromTiles builds a board from an explicit tile sequence.
// The sequence is copied and must be a permutation of 0..size²-1.
func FromTiles(size int, tiles []int) (Board, error) {
	if !ValidSize(size) {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	b := Board{size: size, tiles: append([]int(nil), tiles...)}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks the permutation invariant and recomputes the blank position.
func (b *Board) Validate() error {
	n := b.size * b.size
	if len(b.tiles) != n {
		return fmt.Errorf("%w: have %d tiles, want %d", ErrInvalidBoard, len(b.tiles), n)
	}

	seen := make([]bool, n)
	blank := -1
	for i, v := range b.tiles {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: tile %d at index %d out of range", ErrInvalidBoard, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate tile %d", ErrInvalidBoard, v)
		}
		seen[v] = true
		if v == Blank {
			blank = i
		}
	}

	b.blank = blank
	return nil
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return b.size
}

// Len returns the number of cells (N²).
func (b Board) Len() int {
	return len(b.tiles)
}

// Tiles returns a copy of the tile sequence.
func (b Board) Tiles() []int {
	return append([]int(nil), b.tiles...)
}

// At returns the tile value at index i.
func (b Board) At(i int) int {
	return b.tiles[i]
}

// Blank returns the index of the blank cell.
func (b Board) Blank() int {
	return b.blank
}

// InRange reports whether i is a valid cell index.
func (b Board) InRange(i int) bool {
	return i >= 0 && i < len(b.tiles)
}

// RowCol converts a cell index to its row and column.
func (b Board) RowCol(i int) (row, col int) {
	return i / b.size, i % b.size
}

// BlankRowCol returns the row and column of the blank cell.
func (b Board) BlankRowCol() (row, col int) {
	return b.RowCol(b.blank)
}

// Index converts a row and column to a cell index.
// Returns -1 for coordinates outside the board.
func (b Board) Index(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return -1
	}
	return row*b.size + col
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	return Board{size: b.size, tiles: b.Tiles(), blank: b.blank}
}

// Equal reports whether two boards have the same size and arrangement.
func (b Board) Equal(other Board) bool {
	if b.size != other.size || len(b.tiles) != len(other.tiles) {
		return false
	}
	for i := range b.tiles {
		if b.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// IsSolved reports whether the tiles are in order with the blank last.
func IsSolved(b Board) bool {
	n := len(b.tiles)
	if n == 0 {
		return false
	}
	for i := 0; i < n-1; i++ {
		if b.tiles[i] != i+1 {
			return false
		}
	}
	return b.tiles[n-1] == Blank
}

// Inversions counts pairs of non-blank tiles that appear in the wrong order.
func (b Board) Inversions() int {
	count := 0
	for i := 0; i < len(b.tiles); i++ {
		if b.tiles[i] == Blank {
			continue
		}
		for j := i + 1; j < len(b.tiles); j++ {
			if b.tiles[j] != Blank && b.tiles[i] > b.tiles[j] {
				count++
			}
		}
	}
	return count
}

// IsSolvable reports whether the board can reach the solved arrangement by legal slides.
//
// Every slide changes the blank's row-major position parity together with the
// permutation parity, so a board is reachable iff inversions plus the blank's row
// distance from the bottom row is even. For odd sizes the row term is always
// absorbed (vertical moves shift inversions by an even amount) and only the
// inversion count matters.
func (b Board) IsSolvable() bool {
	inv := b.Inversions()
	if b.size%2 == 1 {
		return inv%2 == 0
	}
	row, _ := b.BlankRowCol()
	return (inv+(b.size-1-row))%2 == 0
}

// String renders the board as rows of right-aligned numbers, "." for the blank.
func (b Board) String() string {
	width := len(strconv.Itoa(len(b.tiles) - 1))
	var sb strings.Builder
	for i, v := range b.tiles {
		if i > 0 {
			if i%b.size == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		cell := "."
		if v != Blank {
			cell = strconv.Itoa(v)
		}
		sb.WriteString(strings.Repeat(" ", width-len(cell)))
		sb.WriteString(cell)
	}
	return sb.String()
}
