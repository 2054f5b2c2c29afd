package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 7, 7, true},
		{"top-left corner", 5, 5, true},
		{"bottom-right edge (exclusive)", 15, 15, false},
		{"last inside cell", 14, 14, true},
		{"outside left", 4, 7, false},
		{"outside above", 7, 4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(2, 3, 6, 4)

	if r.Right() != 8 {
		t.Errorf("Right() = %d, expected 8", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 5 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (5, 5)", cx, cy)
	}
}

func TestGridCellAt(t *testing.T) {
	g := Grid{X: 10, Y: 2, Cols: 3, Rows: 3, CellW: 6, CellH: 2}

	if b := g.Bounds(); b != NewRect(10, 2, 19, 7) {
		t.Fatalf("Bounds() = %+v", b)
	}

	tests := []struct {
		name     string
		x, y     int
		col, row int
		ok       bool
	}{
		{"first interior cell", 11, 3, 0, 0, true},
		{"last column of first cell", 15, 3, 0, 0, true},
		{"vertical border", 16, 3, 0, 0, false},
		{"horizontal border", 11, 4, 0, 0, false},
		{"center cell", 19, 5, 1, 1, true},
		{"last cell", 27, 7, 2, 2, true},
		{"right outer border", 28, 7, 0, 0, false},
		{"outside", 40, 3, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row, ok := g.CellAt(tc.x, tc.y)
			if ok != tc.ok || (ok && (col != tc.col || row != tc.row)) {
				t.Errorf("CellAt(%d, %d) = (%d, %d, %v), expected (%d, %d, %v)",
					tc.x, tc.y, col, row, ok, tc.col, tc.row, tc.ok)
			}
		})
	}

	x, y := g.Interior(2, 1)
	if col, row, ok := g.CellAt(x, y); !ok || col != 2 || row != 1 {
		t.Errorf("Interior(2, 1) = (%d, %d) maps back to (%d, %d, %v)", x, y, col, row, ok)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(0) != ColorDefault {
		t.Error("Blank should use the default color")
	}
	if TileColor(1) != TilePalette[0] {
		t.Errorf("TileColor(1) = %d, expected %d", TileColor(1), TilePalette[0])
	}
	if TileColor(1+len(TilePalette)) != TileColor(1) {
		t.Error("Palette should cycle")
	}
}

func TestInputFrameSequence(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionUp)
	f.Click(3, 4)

	if !f.Has(ActionUp) || !f.Has(ActionLeft) || f.Has(ActionDown) {
		t.Error("Has() does not reflect triggered actions")
	}

	want := []Action{ActionUp, ActionLeft, ActionUp}
	if len(f.Sequence) != len(want) {
		t.Fatalf("Sequence = %v, expected %v", f.Sequence, want)
	}
	for i := range want {
		if f.Sequence[i] != want[i] {
			t.Errorf("Sequence[%d] = %s, expected %s", i, f.Sequence[i], want[i])
		}
	}

	f.Clear()
	if f.Has(ActionUp) || len(f.Sequence) != 0 || len(f.Clicks) != 0 {
		t.Error("Clear() should drop all input")
	}
}
