package puzzle

// Clock drives Session.Tick from a fixed-rate simulation loop.
// It counts simulation ticks and forwards one session tick per full second
// of play. Ticks seen while the session is not playing are dropped, so there
// is no catch-up when a new game starts.
type Clock struct {
	ticksPerSecond int
	pending        int
}

// NewClock creates a clock for a loop running at ticksPerSecond.
// Values below 1 are treated as 1 (every step is a full second).
func NewClock(ticksPerSecond int) *Clock {
	if ticksPerSecond < 1 {
		ticksPerSecond = 1
	}
	return &Clock{ticksPerSecond: ticksPerSecond}
}

// Reset discards any partial second.
func (c *Clock) Reset() {
	c.pending = 0
}

// Step records one simulation tick and ticks the session when a second completes.
// Returns whether the session clock advanced.
func (c *Clock) Step(s *Session) bool {
	if s.Status() != StatusPlaying {
		c.pending = 0
		return false
	}

	c.pending++
	if c.pending < c.ticksPerSecond {
		return false
	}
	c.pending = 0
	return s.Tick()
}
