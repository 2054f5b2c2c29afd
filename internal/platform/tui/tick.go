// Package tui provides the Bubble Tea front end for the sliding puzzle.
// It runs the fixed-rate tick loop, maps keys and clicks to game actions
// and hosts the menu, scoreboard and SSH session models.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when no positive rate was configured.
const defaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
// Loop is the ID of the tick loop that scheduled it; a model drops ticks of other loops.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var tickLoops atomic.Uint64

// nextTickLoop returns a tick loop ID no other model uses.
func nextTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick of loop at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
