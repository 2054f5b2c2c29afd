package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

func init() {
	registry.Register("scripted", func() registry.Game {
		return &scriptedGame{steps: []core.StepResult{playing(3)}}
	})
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestSessionFlow(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.BoardSize = 4

	m := NewSessionModel(nil, cfg, "bob")
	if m.ID() == uuid.Nil {
		t.Fatal("session has no id")
	}

	// Menu: the first entry is the registered game
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenSize {
		t.Fatalf("screen after selecting game = %v, want size menu", m.screen)
	}
	if m.sizeMenu.cursor != 1 {
		t.Errorf("size cursor = %d, want the 4x4 entry", m.sizeMenu.cursor)
	}

	m = updateSession(t, m, runeKey('3'))
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen after picking size = %v, want game", m.screen)
	}
	if m.config.BoardSize != 3 {
		t.Errorf("BoardSize = %d, want 3", m.config.BoardSize)
	}
	if m.gameModel.player != "bob" {
		t.Errorf("player = %q, want bob", m.gameModel.player)
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Errorf("screen after esc = %v, want menu", m.screen)
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "bob")

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen after tab = %v, want scores", m.screen)
	}
	if m.View() == "" {
		t.Error("scoreboard view is empty")
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen after esc = %v, want menu", m.screen)
	}
}

func TestSessionSizeMenuBack(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "bob")

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen after esc in size menu = %v, want menu", m.screen)
	}

	m = updateSession(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q in menu should end the session")
	}
}

func TestSessionDropsTicksOfClosedGame(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "bob")

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = updateSession(t, m, runeKey('3'))
	closedLoop := m.gameModel.tickLoop
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	// A new game starts before the old loop's pending tick arrives
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = updateSession(t, m, runeKey('3'))
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	game, ok := m.gameModel.game.(*scriptedGame)
	if !ok {
		t.Fatalf("game is %T", m.gameModel.game)
	}

	m = updateSession(t, m, TickMsg{Loop: closedLoop})
	if len(game.frames) != 0 {
		t.Errorf("stale tick stepped the new game %d times", len(game.frames))
	}

	m = updateSession(t, m, TickMsg{Loop: m.gameModel.tickLoop})
	if len(game.frames) != 1 {
		t.Errorf("game stepped %d times, want 1", len(game.frames))
	}
}

func TestNewSSHServerFromDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	if cfg.TickRate != defaultTickRate || cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("defaults = %+v", cfg)
	}

	cfg.Address = "127.0.0.1:0"
	cfg.DBPath = filepath.Join(dir, "results.db")
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if got := srv.Addr(); got != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", got)
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
