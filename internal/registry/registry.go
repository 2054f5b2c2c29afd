// Package registry maps game IDs to factories.
// Games register themselves in init() so the TUI, the SSH server and the CLI
// can build them by ID without importing the concrete packages.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface the platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "slide").
	// Used for CLI commands and result storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Sliding Puzzle").
	Title() string

	// Reset initializes the game and deals a new board.
	// The RuntimeConfig provides screen dimensions, tick rate, board size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Resize reports new screen dimensions. It must not alter the board.
	Resize(width, height int)

	// Step advances the simulation by one fixed tick.
	// Actions are applied in the order they were queued, then clicks.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (size, moves, elapsed, finished).
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id.
// It panics on an empty or duplicate id, both of which are programming errors.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	// The title comes from a throwaway instance, built outside the lock
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: title}, factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Default returns the first game in List order.
func Default() (GameInfo, bool) {
	games := List()
	if len(games) == 0 {
		return GameInfo{}, false
	}
	return games[0], true
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}
