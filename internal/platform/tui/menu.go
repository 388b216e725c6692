package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuContinue
	MenuNewGame
	MenuTutorial
	MenuScores
	MenuQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case MenuContinue:
		return "Continue"
	case MenuNewGame:
		return "New game"
	case MenuTutorial:
		return "How to play"
	case MenuScores:
		return "High scores"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

const tutorialText = `Welcome to the bear game!

- Move the bear with WASD or the arrow keys
- Eat honey, avoid the bees: every sting costs a life
- Pause with P or Esc, press N for a new game
- Q saves the game and quits; it continues next time`

// MenuModel is the start menu. Continue is offered only when a saved game
// is waiting.
type MenuModel struct {
	items        []MenuChoice
	cursor       int
	width        int
	height       int
	keys         KeyMap
	selected     MenuChoice
	showTutorial bool
}

// NewMenuModel creates the menu.
func NewMenuModel(canContinue bool, width, height int) MenuModel {
	items := make([]MenuChoice, 0, 5)
	if canContinue {
		items = append(items, MenuContinue)
	}
	items = append(items, MenuNewGame, MenuTutorial, MenuScores, MenuQuit)

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
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
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showTutorial {
		// any key closes the tutorial
		m.showTutorial = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.selected = MenuQuit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NewGame):
		m.selected = MenuNewGame

	case key.Matches(msg, m.keys.Scoreboard):
		m.selected = MenuScores

	case key.Matches(msg, m.keys.Confirm):
		choice := m.items[m.cursor]
		if choice == MenuTutorial {
			m.showTutorial = true
			return m, nil
		}
		m.selected = choice
	}
	return m, nil
}

// Selected returns the chosen entry, or MenuNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("H O N E Y   R U N"), m.width))
	b.WriteString("\n\n")

	if m.showTutorial {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("130")).
			Padding(1, 2).
			Render(tutorialText)
		for _, line := range strings.Split(box, "\n") {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render("Press any key"), m.width))
		return b.String()
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-12s", cursor, item), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}
