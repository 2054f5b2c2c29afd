package puzzle

// Direction names the way a tile appears to travel when it slides into the blank.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions returns all directions in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns a lower-case name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Resolve returns the index of the tile that moves for dir, given the blank
// position. ok is false when no tile sits on the required side of the blank.
//
// "Up" moves the tile below the blank upward, "Left" moves the tile to the right
// of the blank leftward, and so on.
func Resolve(dir Direction, blank, size int) (target int, ok bool) {
	row, col := blank/size, blank%size

	switch dir {
	case Up:
		if row < size-1 {
			return blank + size, true
		}
	case Down:
		if row > 0 {
			return blank - size, true
		}
	case Left:
		if col < size-1 {
			return blank + 1, true
		}
	case Right:
		if col > 0 {
			return blank - 1, true
		}
	}
	return -1, false
}
