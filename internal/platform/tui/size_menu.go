package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

// sizeOption is one entry of the size picker.
type sizeOption struct {
	size int
	best *storage.Result
}

// SizeMenuModel lets users choose the board size before a game starts.
type SizeMenuModel struct {
	options   []sizeOption
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int // 0 while choosing
	quitting  bool
	back      bool
}

// NewSizeMenuModel creates a size picker for gameID.
// The cursor starts on defaultSize; best results come from store when available.
func NewSizeMenuModel(store *storage.Store, gameID string, defaultSize, width, height int) SizeMenuModel {
	m := SizeMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}

	for size := puzzle.MinSize; size <= puzzle.MaxSize; size++ {
		opt := sizeOption{size: size}
		if store != nil {
			best, err := store.BestResult(gameID, size)
			if err != nil {
				logger.Warn("could not load best result", "size", size, "error", err)
			}
			opt.best = best
		}
		if size == defaultSize {
			m.cursor = len(m.options)
		}
		m.options = append(m.options, opt)
	}

	return m
}

// Init initializes the model.
func (m SizeMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SizeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SizeMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digits pick a size directly
	switch msg.String() {
	case "3", "4", "5":
		m.selected = int(msg.String()[0] - '0')
		return m, tea.Quit
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.options[m.cursor].size
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the size selection.
func (m SizeMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("S L I D E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board size:", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%dx%d  (%2d tiles)", cursor, opt.size, opt.size, opt.size*opt.size-1)
		if opt.best != nil {
			line += fmt.Sprintf("  best: %d moves, %s", opt.best.Moves, puzzle.FormatElapsed(opt.best.Seconds))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter/3/4/5: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen size, or 0 if none was chosen.
func (m SizeMenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m SizeMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SizeMenuModel) WantsBack() bool {
	return m.back
}

// RunSizeMenu runs the size picker. size is 0 when the user backed out or quit.
func RunSizeMenu(store *storage.Store, gameID string, cfg core.RuntimeConfig, defaultSize int) (size int, quit bool, err error) {
	model := NewSizeMenuModel(store, gameID, defaultSize, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, true, err
	}

	m, ok := finalModel.(SizeMenuModel)
	if !ok {
		return 0, true, nil
	}

	return m.Selected(), m.IsQuitting(), nil
}
