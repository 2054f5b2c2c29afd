package puzzle

import (
	"errors"
	"testing"
)

func TestSolved(t *testing.T) {
	for _, size := range []int{3, 4, 5} {
		b, err := Solved(size)
		if err != nil {
			t.Fatalf("Solved(%d) failed: %v", size, err)
		}
		if !IsSolved(b) {
			t.Errorf("Solved(%d) should be solved:\n%s", size, b)
		}
		if b.Blank() != size*size-1 {
			t.Errorf("Solved(%d) blank = %d, want %d", size, b.Blank(), size*size-1)
		}
	}

	if _, err := Solved(6); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Solved(6) error = %v, want ErrInvalidSize", err)
	}
}

func TestFromTilesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		tiles []int
		want  error
	}{
		{"too short", 3, []int{1, 2, 3, 4, 5, 6, 7, 0}, ErrInvalidBoard},
		{"duplicate", 3, []int{1, 1, 3, 4, 5, 6, 7, 8, 0}, ErrInvalidBoard},
		{"out of range tile", 3, []int{1, 2, 3, 4, 5, 6, 7, 9, 0}, ErrInvalidBoard},
		{"negative tile", 3, []int{1, 2, 3, 4, 5, 6, 7, -8, 0}, ErrInvalidBoard},
		{"size too small", 2, []int{1, 2, 3, 0}, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromTiles(tt.size, tt.tiles)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromTiles(%d, %v) error = %v, want %v", tt.size, tt.tiles, err, tt.want)
			}
		})
	}
}

func TestFromTilesCopiesAndFindsBlank(t *testing.T) {
	tiles := []int{1, 2, 3, 0, 5, 6, 4, 7, 8}
	b, err := FromTiles(3, tiles)
	if err != nil {
		t.Fatalf("FromTiles failed: %v", err)
	}
	if b.Blank() != 3 {
		t.Errorf("Blank() = %d, want 3", b.Blank())
	}

	tiles[0] = 99
	if b.At(0) != 1 {
		t.Error("Board should not alias the input slice")
	}
}

func TestIsSolved(t *testing.T) {
	tests := []struct {
		name  string
		tiles []int
		want  bool
	}{
		{"solved", []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, true},
		{"blank one left", []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, false},
		{"blank first", []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, false},
		{"two swapped", []int{2, 1, 3, 4, 5, 6, 7, 8, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromTiles(3, tt.tiles)
			if err != nil {
				t.Fatalf("FromTiles failed: %v", err)
			}
			if got := IsSolved(b); got != tt.want {
				t.Errorf("IsSolved(%v) = %v, want %v", tt.tiles, got, tt.want)
			}
		})
	}
}

func TestRowColAndIndex(t *testing.T) {
	b, _ := Solved(4)

	row, col := b.RowCol(6)
	if row != 1 || col != 2 {
		t.Errorf("RowCol(6) = (%d, %d), want (1, 2)", row, col)
	}

	row, col = b.BlankRowCol()
	if row != 3 || col != 3 {
		t.Errorf("BlankRowCol() = (%d, %d), want (3, 3)", row, col)
	}

	if got := b.Index(2, 1); got != 9 {
		t.Errorf("Index(2, 1) = %d, want 9", got)
	}
	if got := b.Index(4, 0); got != -1 {
		t.Errorf("Index(4, 0) = %d, want -1", got)
	}
}

func TestIsSolvable(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		tiles []int
		want  bool
	}{
		{"solved 3x3", 3, []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, true},
		{"one slide 3x3", 3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, true},
		{"swapped pair 3x3", 3, []int{2, 1, 3, 4, 5, 6, 7, 8, 0}, false},
		{"solved 4x4", 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}, true},
		{"blank moved up 4x4", 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0, 13, 14, 15, 12}, true},
		{"14-15 swapped 4x4", 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromTiles(tt.size, tt.tiles)
			if err != nil {
				t.Fatalf("FromTiles failed: %v", err)
			}
			if got := b.IsSolvable(); got != tt.want {
				t.Errorf("IsSolvable() = %v, want %v (inversions %d)", got, tt.want, b.Inversions())
			}
		})
	}
}

func TestBoardString(t *testing.T) {
	b, _ := Solved(3)
	want := "1 2 3\n4 5 6\n7 8 ."
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, _ := Solved(3)
	c := b.Clone()
	TryMove(&c, 7)

	if !IsSolved(b) {
		t.Error("Moving a clone should not change the original")
	}
	if b.Equal(c) {
		t.Error("Clone should differ after a move")
	}
}
