package puzzle

// Event is a notification emitted by a Session to its observer.
type Event interface {
	event()
}

// StartedEvent is emitted when a new game begins (initialize or restart).
type StartedEvent struct {
	Size int
}

func (StartedEvent) event() {}

// MovedEvent is emitted after every successful slide.
type MovedEvent struct {
	From  int // Index the tile left (the new blank)
	To    int // Index the tile arrived at (the old blank)
	Tile  int
	Moves int
}

func (MovedEvent) event() {}

// WonEvent is emitted exactly once per game, on the move that solves the board.
type WonEvent struct {
	Size    int
	Moves   int
	Elapsed int // Seconds
}

func (WonEvent) event() {}

// Observer receives session events synchronously, after the state change is complete.
type Observer func(Event)
