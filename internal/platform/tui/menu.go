package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/towergate/internal/config"
	"github.com/vovakirdan/towergate/internal/core"
	"github.com/vovakirdan/towergate/internal/storage"
)

// menuEntry is one selectable line in the main menu.
type menuEntry struct {
	label      string
	difficulty config.DifficultyPreset // Set for the play entries
	howto      bool
	scores     bool
	quit       bool
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	entries   []menuEntry
	cursor    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *menuEntry
}

// NewMenuModel creates the main menu.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	entries := []menuEntry{
		{label: "Play - Easy", difficulty: config.DifficultyEasy},
		{label: "Play - Normal", difficulty: config.DifficultyNormal},
		{label: "Play - Hard", difficulty: config.DifficultyHard},
		{label: "How to Play", howto: true},
		{label: "High Scores", scores: true},
		{label: "Quit", quit: true},
	}

	return MenuModel{
		entries:   entries,
		cursor:    1, // Normal is the default
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.entries[m.cursor]
		if selected.quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		selected := menuEntry{scores: true}
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T O W E R G A T E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Escape the tower before your points run out", m.width))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+e.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsHowto      bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.config}

	switch {
	case m.selected == nil:
		result.Quit = true
	case m.selected.howto:
		result.WantsHowto = true
	case m.selected.scores:
		result.WantsScoreboard = true
	default:
		result.Difficulty = m.selected.difficulty
	}

	return result, nil
}
