// Package slide adapts the sliding puzzle session to the platform's game loop:
// it maps input frames to session commands, converts simulation ticks into the
// one-second game clock and renders the board into a screen buffer.
package slide

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

// GameID is the registry identifier of the sliding puzzle.
const GameID = "slide"

// Game implements registry.Game for the sliding puzzle.
type Game struct {
	cfg     config.SlideConfig
	rng     *rand.Rand
	tick    uint64
	session *puzzle.Session
	clock   *puzzle.Clock
	logger  *log.Logger

	// Screen dimensions
	screenW int
	screenH int

	showHints bool
	tooSmall  bool
	wonStep   bool // Set by the observer when the current step solved the board
}

// Package-level variables for config, set by the CLI before the game is created.
var (
	configPath    string
	packageLogger *log.Logger
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to new games.
func SetLogger(l *log.Logger) {
	packageLogger = l
}

// New creates a new sliding puzzle game.
func New() *Game {
	return &Game{
		cfg: config.DefaultSlideConfig(),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sliding Puzzle"
}

// Reset loads configuration and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.logger = packageLogger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	loaded, err := config.LoadSlide(configPath)
	if err != nil {
		g.logger.Warn("using default config", "path", configPath, "error", err)
	}
	g.cfg = loaded

	size := g.cfg.Board.Size
	if puzzle.ValidSize(cfg.BoardSize) {
		size = cfg.BoardSize
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = g.cfg.Clock.TickRate
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.showHints = g.cfg.UI.ShowHints
	g.wonStep = false
	g.clock = puzzle.NewClock(tickRate)

	g.session = puzzle.NewSession(
		puzzle.WithShuffler(g.newShuffler()),
		puzzle.WithLogger(g.logger),
		puzzle.WithObserver(g.onEvent),
		puzzle.WithSize(size),
	)
	if err := g.session.Initialize(size); err != nil {
		// Only reachable with a broken config; fall back to the default size
		g.logger.Error("cannot start game", "size", size, "error", err)
		//nolint:errcheck // DefaultSize is always valid
		g.session.Initialize(puzzle.DefaultSize)
	}

	g.checkScreenSize()
}

// newShuffler builds the configured shuffle strategy on the game's RNG.
func (g *Game) newShuffler() puzzle.Shuffler {
	if g.cfg.Shuffle.Strategy == config.ShuffleWalk {
		return puzzle.NewWalkShuffler(g.rng, g.cfg.Shuffle.WalkSteps)
	}
	return puzzle.NewParityShuffler(g.rng)
}

// onEvent receives session events.
func (g *Game) onEvent(evt puzzle.Event) {
	switch evt.(type) {
	case puzzle.StartedEvent:
		g.clock.Reset()
		g.checkScreenSize()
	case puzzle.WonEvent:
		g.wonStep = true
	}
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the current board.
func (g *Game) checkScreenSize() {
	size := puzzle.DefaultSize
	if g.session != nil {
		size = g.session.Size()
	}
	l := newLayout(size, g.screenW)
	minW := l.rect().W + 2
	minH := hudHeight + l.rect().H + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
// Every queued action is applied in arrival order before the clock advances.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.wonStep = false

	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if !g.tooSmall {
		for _, a := range in.Sequence {
			g.apply(a)
		}
		for _, p := range in.Clicks {
			g.click(p)
		}
	}

	g.clock.Step(g.session)

	return core.StepResult{State: g.State(), Won: g.wonStep}
}

// apply runs the session command bound to an action.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionUp:
		g.submitDirection(puzzle.Up)
	case core.ActionDown:
		g.submitDirection(puzzle.Down)
	case core.ActionLeft:
		g.submitDirection(puzzle.Left)
	case core.ActionRight:
		g.submitDirection(puzzle.Right)
	case core.ActionSize3:
		g.setSize(3)
	case core.ActionSize4:
		g.setSize(4)
	case core.ActionSize5:
		g.setSize(5)
	case core.ActionRestart:
		//nolint:errcheck // Restart reuses the current, already validated size
		g.session.Restart()
	case core.ActionHints:
		g.showHints = !g.showHints
	}
}

func (g *Game) submitDirection(dir puzzle.Direction) {
	//nolint:errcheck // Resolved targets are always on the board
	g.session.SubmitDirection(dir)
}

func (g *Game) setSize(size int) {
	applied, err := g.session.SetSize(size)
	if err != nil {
		g.logger.Warn("size change rejected", "size", size, "error", err)
		return
	}
	if !applied {
		g.logger.Debug("size change ignored while playing", "size", size)
	}
}

// click submits a move for the tile under screen position p, if any.
func (g *Game) click(p core.Point) {
	idx := g.TileAt(p.X, p.Y)
	if idx < 0 {
		return
	}
	if _, err := g.session.SubmitMove(idx); err != nil && !errors.Is(err, puzzle.ErrOutOfRange) {
		g.logger.Error("move failed", "index", idx, "error", err)
	}
}

// TileAt returns the board index drawn at screen position (x, y), or -1.
func (g *Game) TileAt(x, y int) int {
	if g.session == nil {
		return -1
	}
	return g.layout().indexAt(x, y)
}

// layout returns the board placement for the current screen and size.
func (g *Game) layout() layout {
	return newLayout(g.session.Size(), g.screenW)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Size:     g.session.Size(),
		Moves:    g.session.Moves(),
		Elapsed:  g.session.Elapsed(),
		Playing:  g.session.Status() == puzzle.StatusPlaying,
		Finished: g.session.Status() == puzzle.StatusWon,
	}
}
