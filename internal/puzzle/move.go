package puzzle

// IsAdjacent reports whether cells a and b on a size×size board share an edge.
func IsAdjacent(size, a, b int) bool {
	rowA, colA := a/size, a%size
	rowB, colB := b/size, b%size
	dr := rowA - rowB
	dc := colA - colB
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return (dr == 1 && dc == 0) || (dc == 1 && dr == 0)
}

// CanMove reports whether the tile at target may slide into the blank.
func CanMove(b Board, target int) bool {
	if !b.InRange(target) || target == b.blank {
		return false
	}
	return IsAdjacent(b.size, target, b.blank)
}

// TryMove slides the tile at target into the blank if the two cells are adjacent.
// On success the blank takes target's position and true is returned. Otherwise the
// board is left untouched; an illegal target is a normal outcome, not an error.
func TryMove(b *Board, target int) bool {
	if !CanMove(*b, target) {
		return false
	}
	b.tiles[b.blank], b.tiles[target] = b.tiles[target], b.tiles[b.blank]
	b.blank = target
	return true
}

// LegalTargets returns the indices of tiles that can currently slide, in
// Up, Down, Left, Right order of the direction that would move them.
func LegalTargets(b Board) []int {
	targets := make([]int, 0, 4)
	for _, dir := range Directions() {
		if t, ok := Resolve(dir, b.blank, b.size); ok {
			targets = append(targets, t)
		}
	}
	return targets
}
