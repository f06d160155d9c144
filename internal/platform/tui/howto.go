package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// howtoLines is the rules screen shown from the main menu.
var howtoLines = []string{
	"HOW TO PLAY",
	"",
	"You are trapped in a tower of 100 themed rooms.",
	"Somewhere far away is the exit. Find it before your points drain to zero.",
	"",
	"MOVING    WASD or arrows. Walking into a closed gate opens its price panel.",
	"GATES     Every gate has a price and demands cards of the room it leads to.",
	"          Select cards with 1-9 and 0, pick a reward with Tab, pay with E.",
	"          Opened gates stay open, and every gate keeps its price.",
	"CARDS     Each card has a type and a power. Selected cards of the right",
	"          type must sum to at least the gate price. Spent cards are gone,",
	"          but every unlock grants one reward card of your choice.",
	"STORE     Press T to trade: merge two same-type cards into one card of any",
	"          type you pick (Tab). Power adds up, capped at 9. Uses are limited.",
	"POINTS    Your points tick down every second. Reach the exit and the",
	"          remainder becomes your score. Hit zero and the run is over.",
	"",
	"Press any key to return to the menu.",
}

// HowtoModel is the static rules screen.
type HowtoModel struct {
	width  int
	height int
	done   bool
}

// NewHowtoModel creates the rules screen.
func NewHowtoModel(width, height int) HowtoModel {
	return HowtoModel{width: width, height: height}
}

// Init initializes the model.
func (m HowtoModel) Init() tea.Cmd {
	return nil
}

// Update leaves the screen on any key press.
func (m HowtoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the rules text.
func (m HowtoModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range howtoLines {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

// RunHowto shows the rules screen until a key is pressed.
func RunHowto(width, height int) error {
	p := tea.NewProgram(
		NewHowtoModel(width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
