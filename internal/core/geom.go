// Package core provides fundamental types and utilities for the puzzle platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Grid is a table of Cols x Rows cells whose borders are shared.
// CellW and CellH are the cell pitch, counting one border column and row.
type Grid struct {
	X, Y         int
	Cols, Rows   int
	CellW, CellH int
}

// Bounds returns the rectangle covered by the grid, outer borders included.
func (g Grid) Bounds() Rect {
	return NewRect(g.X, g.Y, g.Cols*g.CellW+1, g.Rows*g.CellH+1)
}

// CellAt maps a screen position to the cell whose interior contains it.
// Border positions and positions outside the grid report ok=false.
func (g Grid) CellAt(x, y int) (col, row int, ok bool) {
	if g.CellW <= 0 || g.CellH <= 0 || !g.Bounds().Contains(x, y) {
		return 0, 0, false
	}
	rx, ry := x-g.X, y-g.Y
	if rx%g.CellW == 0 || ry%g.CellH == 0 {
		return 0, 0, false
	}
	col, row = rx/g.CellW, ry/g.CellH
	if col >= g.Cols || row >= g.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// Interior returns the top-left interior position of a cell.
func (g Grid) Interior(col, row int) (x, y int) {
	return g.X + col*g.CellW + 1, g.Y + row*g.CellH + 1
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
