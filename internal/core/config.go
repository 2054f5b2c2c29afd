package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	BoardSize int // Requested board size, 0 uses the game's configured default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Size     int  // Board dimension
	Moves    int  // Successful moves in the current game
	Elapsed  int  // Seconds played in the current game
	Playing  bool // A game is in progress
	Finished bool // The current game has been solved
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Won   bool // The game was solved during this step
}
