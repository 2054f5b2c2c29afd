package slide

import "github.com/vovakirdan/tui-slide/internal/puzzle"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateNotStarted  GameStateType = "not_started"
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Size    int
	Tiles   []int
	Blank   int
	Moves   int
	Elapsed int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Tick: g.tick, State: StateNotStarted}
	}

	s := g.session.Snapshot()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case s.Status == puzzle.StatusWon:
		state = StateWon
	case s.Status == puzzle.StatusNotStarted:
		state = StateNotStarted
	}

	return Snapshot{
		Tick:    g.tick,
		Size:    s.Size,
		Tiles:   s.Tiles,
		Blank:   s.Blank,
		Moves:   s.Moves,
		Elapsed: s.Elapsed,
		State:   state,
	}
}
