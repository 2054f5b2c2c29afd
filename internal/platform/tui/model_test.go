package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

// scriptedGame replays a fixed list of step results and records its input.
type scriptedGame struct {
	steps   []core.StepResult
	step    int
	frames  []core.InputFrame
	resized [2]int
	resets  int
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Resize(width, height int) { g.resized = [2]int{width, height} }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState    { return g.current().State }
func (g *scriptedGame) current() core.StepResult {
	if g.step == 0 || len(g.steps) == 0 {
		return core.StepResult{}
	}
	return g.steps[min(g.step, len(g.steps))-1]
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	frame := core.InputFrame{Sequence: append([]core.Action(nil), in.Sequence...)}
	g.frames = append(g.frames, frame)
	if g.step < len(g.steps) {
		g.step++
	}
	return g.current()
}

func playing(size int) core.StepResult {
	return core.StepResult{State: core.GameState{Size: size, Playing: true}}
}

func won(size, moves, elapsed int) core.StepResult {
	return core.StepResult{
		State: core.GameState{Size: size, Moves: moves, Elapsed: elapsed, Finished: true},
		Won:   true,
	}
}

func finished(size, moves, elapsed int) core.StepResult {
	r := won(size, moves, elapsed)
	r.Won = false
	return r
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

// tick returns the next tick of m's own loop.
func tick(m Model) TickMsg {
	return TickMsg{Loop: m.tickLoop}
}

func TestModelSavesEachWinOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{steps: []core.StepResult{
		playing(3),
		won(3, 12, 7),
		finished(3, 12, 7),
		playing(3),
		won(3, 9, 4),
		finished(3, 9, 4),
	}}

	m := NewModel(game, store, core.DefaultConfig(), "alice")
	for range game.steps {
		m = update(t, m, tick(m))
	}

	results, err := store.TopResults("scripted", 3, 10)
	if err != nil {
		t.Fatalf("TopResults: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("stored %d results, want 2", len(results))
	}
	if results[0].Moves != 9 || results[1].Moves != 12 {
		t.Errorf("stored moves = %d, %d", results[0].Moves, results[1].Moves)
	}
	if results[0].GameUUID == results[1].GameUUID {
		t.Error("both games share a uuid")
	}
	if results[0].Player != "alice" {
		t.Errorf("Player = %q", results[0].Player)
	}
}

func TestModelWithoutStore(t *testing.T) {
	game := &scriptedGame{steps: []core.StepResult{won(4, 1, 0)}}

	m := NewModel(game, nil, core.DefaultConfig(), "")
	m = update(t, m, tick(m))

	if !m.State().Finished {
		t.Error("state should be finished after the win")
	}
}

func TestModelQueuesKeysForNextTick(t *testing.T) {
	game := &scriptedGame{steps: []core.StepResult{playing(3), playing(3)}}

	m := NewModel(game, nil, core.DefaultConfig(), "")
	m = update(t, m, runeKey('w'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tick(m))
	m = update(t, m, tick(m))

	if len(game.frames) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(game.frames))
	}
	first := game.frames[0].Sequence
	if len(first) != 2 || first[0] != core.ActionUp || first[1] != core.ActionLeft {
		t.Errorf("first frame = %v", first)
	}
	if len(game.frames[1].Sequence) != 0 {
		t.Errorf("frame not cleared after tick: %v", game.frames[1].Sequence)
	}
}

func TestModelIgnoresTicksOfOtherLoops(t *testing.T) {
	game := &scriptedGame{steps: []core.StepResult{playing(3)}}

	old := NewModel(game, nil, core.DefaultConfig(), "")
	m := NewModel(game, nil, core.DefaultConfig(), "")
	if old.tickLoop == m.tickLoop {
		t.Fatal("two models share a tick loop")
	}

	next, cmd := m.Update(tick(old))
	if cmd != nil {
		t.Error("a foreign tick must not schedule another tick")
	}
	if len(game.frames) != 0 {
		t.Errorf("game stepped %d times on a foreign tick", len(game.frames))
	}

	_, cmd = next.Update(tick(m))
	if cmd == nil {
		t.Error("own tick should schedule the next one")
	}
	if len(game.frames) != 1 {
		t.Errorf("game stepped %d times, want 1", len(game.frames))
	}
}

func TestModelBackKeyRequestsMenu(t *testing.T) {
	game := &scriptedGame{steps: []core.StepResult{playing(3)}}

	m := NewModel(game, nil, core.DefaultConfig(), "")
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Fatal("b should request the menu")
	}
	if m.IsQuitting() {
		t.Error("b must not quit")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	game := &scriptedGame{}

	m := NewModel(game, nil, core.DefaultConfig(), "")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc should request the menu")
	}

	m = NewModel(game, nil, core.DefaultConfig(), "")
	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{}

	m := NewModel(game, nil, core.DefaultConfig(), "")
	m.Init()
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if game.resets != 1 {
		t.Errorf("game reset %d times, want 1", game.resets)
	}
	if game.resized != [2]int{100, 40 - helpHeight} {
		t.Errorf("game resized to %v", game.resized)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "12", core.ColorBrightRed)

	out := RenderScreen(s)
	if out == "" {
		t.Fatal("empty render")
	}
	if got := s.Row(0); got != "ab12 " {
		t.Errorf("Row(0) = %q", got)
	}
}
