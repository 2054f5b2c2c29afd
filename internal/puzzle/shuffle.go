package puzzle

import "math/rand"

// DefaultWalkSteps is the number of random slides WalkShuffler applies when Steps is unset.
const DefaultWalkSteps = 200

// Shuffler produces a playable starting board.
// Implementations must return a board that is reachable from the solved
// arrangement and is not itself solved.
type Shuffler interface {
	Shuffle(size int) Board
}

// ParityShuffler draws a uniform random permutation (Fisher–Yates) and, when the
// result is unreachable, swaps the first two non-blank tiles to flip its parity.
type ParityShuffler struct {
	rng *rand.Rand
}

// NewParityShuffler creates a parity-correcting shuffler using rng.
func NewParityShuffler(rng *rand.Rand) *ParityShuffler {
	return &ParityShuffler{rng: rng}
}

// Shuffle returns a random solvable, unsolved board.
func (s *ParityShuffler) Shuffle(size int) Board {
	for {
		b := solved(size)

		for i := len(b.tiles) - 1; i > 0; i-- {
			j := s.rng.Intn(i + 1)
			b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
		}
		b.blank = indexOf(b.tiles, Blank)

		if !b.IsSolvable() {
			fixParity(&b)
		}
		if !IsSolved(b) {
			return b
		}
	}
}

// fixParity swaps the first two non-blank tiles. A single transposition of
// tiles flips the inversion parity without moving the blank.
func fixParity(b *Board) {
	first := -1
	for i, v := range b.tiles {
		if v == Blank {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		b.tiles[first], b.tiles[i] = b.tiles[i], b.tiles[first]
		return
	}
}

// WalkShuffler starts from the solved board and applies random legal slides.
// Solvability holds by construction.
type WalkShuffler struct {
	rng   *rand.Rand
	Steps int
}

// NewWalkShuffler creates a random-walk shuffler. steps <= 0 uses DefaultWalkSteps.
func NewWalkShuffler(rng *rand.Rand, steps int) *WalkShuffler {
	if steps <= 0 {
		steps = DefaultWalkSteps
	}
	return &WalkShuffler{rng: rng, Steps: steps}
}

// Shuffle returns a board reached by Steps random slides that is not solved.
func (s *WalkShuffler) Shuffle(size int) Board {
	for {
		b := solved(size)
		prev := -1 // Blank position before the last slide; never slide straight back

		for i := 0; i < s.Steps; i++ {
			targets := LegalTargets(b)
			candidates := targets[:0]
			for _, t := range targets {
				if t != prev {
					candidates = append(candidates, t)
				}
			}
			prev = b.blank
			TryMove(&b, candidates[s.rng.Intn(len(candidates))])
		}

		if !IsSolved(b) {
			return b
		}
	}
}

// indexOf returns the position of v in tiles, or -1.
func indexOf(tiles []int, v int) int {
	for i, t := range tiles {
		if t == v {
			return i
		}
	}
	return -1
}
