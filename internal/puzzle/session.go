package puzzle

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Status is the lifecycle state of a Session.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusWon
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// MoveResult describes the outcome of a move command.
type MoveResult struct {
	Moved  bool
	Target int  // Index that was attempted, -1 if a direction did not resolve
	Won    bool // True only on the move that solved the board
}

// State is a read-only observation of a Session.
type State struct {
	Size    int
	Tiles   []int
	Blank   int
	Status  Status
	Moves   int
	Elapsed int
}

// Session owns one board and the counters of the game being played on it.
// All mutation happens through its command methods; it is not safe for
// concurrent use and expects a single owner that processes one command at a time.
type Session struct {
	size     int
	board    Board
	status   Status
	moves    int
	elapsed  int
	shuffler Shuffler
	observer Observer
	logger   *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithShuffler sets the shuffler used to generate new boards.
func WithShuffler(s Shuffler) Option {
	return func(sess *Session) {
		sess.shuffler = s
	}
}

// WithObserver registers a callback for session events.
func WithObserver(o Observer) Option {
	return func(sess *Session) {
		sess.observer = o
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(sess *Session) {
		if l != nil {
			sess.logger = l
		}
	}
}

// WithSize sets the size used by Restart before the first Initialize.
// Invalid sizes are ignored.
func WithSize(size int) Option {
	return func(sess *Session) {
		if ValidSize(size) {
			sess.size = size
		}
	}
}

// NewSession creates a session in the NotStarted state.
func NewSession(opts ...Option) *Session {
	s := &Session{
		size:   DefaultSize,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.shuffler == nil {
		s.shuffler = NewParityShuffler(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return s
}

// Initialize discards the current board and starts a new game of the given size.
// An invalid size is rejected and the previous state is kept.
func (s *Session) Initialize(size int) error {
	if !ValidSize(size) {
		s.logger.Warn("rejected board size", "size", size)
		return fmt.Errorf("initialize: %w: %d (want %d..%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}

	s.size = size
	s.board = s.shuffler.Shuffle(size)
	s.status = StatusPlaying
	s.moves = 0
	s.elapsed = 0

	s.logger.Debug("game initialized", "size", size, "board", s.board.Tiles())
	s.emit(StartedEvent{Size: size})
	return nil
}

// Restart starts a fresh game with the current size.
func (s *Session) Restart() error {
	return s.Initialize(s.size)
}

// SetSize changes the board size and starts a new game with it.
// The change is ignored while a game is in progress; applied reports whether
// it took effect.
func (s *Session) SetSize(size int) (applied bool, err error) {
	if !ValidSize(size) {
		return false, fmt.Errorf("set size: %w: %d", ErrInvalidSize, size)
	}
	if s.status == StatusPlaying {
		s.logger.Debug("size change ignored during play", "size", size)
		return false, nil
	}
	if err := s.Initialize(size); err != nil {
		return false, err
	}
	return true, nil
}

// SubmitMove attempts to slide the tile at target into the blank.
// Out-of-range indices return ErrOutOfRange. Moves while not playing and moves of
// non-adjacent tiles are no-ops with Moved false.
func (s *Session) SubmitMove(target int) (MoveResult, error) {
	result := MoveResult{Target: target}

	if s.status != StatusPlaying {
		return result, nil
	}
	if !s.board.InRange(target) {
		return result, fmt.Errorf("submit move: %w: %d (board has %d cells)", ErrOutOfRange, target, s.board.Len())
	}

	from := s.board.blank
	if !TryMove(&s.board, target) {
		return result, nil
	}

	s.moves++
	result.Moved = true
	s.emit(MovedEvent{From: target, To: from, Tile: s.board.tiles[from], Moves: s.moves})

	if IsSolved(s.board) {
		s.status = StatusWon
		result.Won = true
		s.logger.Info("puzzle solved", "size", s.size, "moves", s.moves, "elapsed", s.elapsed)
		s.emit(WonEvent{Size: s.size, Moves: s.moves, Elapsed: s.elapsed})
	}

	return result, nil
}

// SubmitDirection resolves dir against the blank and submits the resulting move.
// A direction with no tile on that side is a no-op.
func (s *Session) SubmitDirection(dir Direction) (MoveResult, error) {
	if s.status != StatusPlaying {
		return MoveResult{Target: -1}, nil
	}
	target, ok := Resolve(dir, s.board.blank, s.size)
	if !ok {
		return MoveResult{Target: -1}, nil
	}
	return s.SubmitMove(target)
}

// Tick advances the elapsed time by one second while playing.
// Returns whether the clock advanced.
func (s *Session) Tick() bool {
	if s.status != StatusPlaying {
		return false
	}
	s.elapsed++
	return true
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Size returns the configured board size.
func (s *Session) Size() int {
	return s.size
}

// Moves returns the number of successful moves in the current game.
func (s *Session) Moves() int {
	return s.moves
}

// Elapsed returns the seconds counted in the current game.
func (s *Session) Elapsed() int {
	return s.elapsed
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board.Clone()
}

// Snapshot returns the full observable state.
func (s *Session) Snapshot() State {
	return State{
		Size:    s.size,
		Tiles:   s.board.Tiles(),
		Blank:   s.board.blank,
		Status:  s.status,
		Moves:   s.moves,
		Elapsed: s.elapsed,
	}
}

func (s *Session) emit(evt Event) {
	if s.observer != nil {
		s.observer(evt)
	}
}

// FormatElapsed renders seconds as MM:SS.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
