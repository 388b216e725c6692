package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/honeyrun/internal/core"
	"github.com/vovakirdan/honeyrun/internal/engine"
	"github.com/vovakirdan/honeyrun/internal/storage"
)

// seedScores is how many stored scores are loaded into a new session.
const seedScores = 10

type mode int

const (
	modeMenu mode = iota
	modeGame
	modeScores
)

// Options configures a session.
type Options struct {
	Game    *engine.Game
	Store   *storage.Store // may be nil; the game runs without persistent scores
	Runtime core.RuntimeConfig
	Player  string      // name recorded with high scores
	Logger  *log.Logger // may be nil
	Fresh   bool        // skip the menu and start a new game
}

// Model drives one engine.Game from the terminal: menu, field and
// scoreboard. It is used for local play and for every SSH session.
type Model struct {
	game    *engine.Game
	store   *storage.Store
	logger  *log.Logger
	player  string
	runtime core.RuntimeConfig

	mode       mode
	returnTo   mode
	menu       MenuModel
	scoreboard ScoreboardModel
	screen     *core.Screen
	keys       KeyMap
	help       help.Model

	scoreSaved bool
	quitting   bool
}

// NewModel creates a session model and seeds the game's high-score list
// from the store.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "bear"
	}

	m := Model{
		game:    opts.Game,
		store:   opts.Store,
		logger:  logger,
		player:  player,
		runtime: opts.Runtime,
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.help.Width = opts.Runtime.ScreenW
	m.seedHighScores()

	if opts.Fresh {
		m.game.NewGame()
		m.mode = modeGame
	} else {
		m.menu = NewMenuModel(m.game.CanLoadGame(), m.runtime.ScreenW, m.runtime.ScreenH)
	}
	return m
}

func (m *Model) seedHighScores() {
	if m.store == nil {
		return
	}
	entries, err := m.store.TopScores(seedScores)
	if err != nil {
		m.logger.Warn("could not load high scores", "error", err)
		return
	}
	for _, e := range entries {
		m.game.AddHighScore(engine.HighScore{Name: e.Name, Score: e.Score})
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.mode == modeGame {
			m.handleTick()
		}
		return m, tickCmd(m.runtime.TickRate)

	case tea.KeyMsg:
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeScores:
			return m.updateScores(msg)
		default:
			return m.handleKey(msg)
		}
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	menu, _ := m.menu.Update(msg)
	m.menu = menu.(MenuModel)
	if m.mode == modeScores {
		sb, _ := m.scoreboard.Update(msg)
		m.scoreboard = sb.(ScoreboardModel)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	menu, cmd := m.menu.Update(msg)
	m.menu = menu.(MenuModel)

	switch m.menu.Selected() {
	case MenuContinue:
		if !m.game.LoadGame() {
			m.game.NewGame()
		}
		m.startPlaying()
	case MenuNewGame:
		m.game.NewGame()
		m.startPlaying()
	case MenuScores:
		m.openScoreboard(modeMenu)
	case MenuQuit:
		return m.quit()
	}
	return m, cmd
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	m.scoreboard = sb.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		if m.returnTo == modeMenu {
			m.menu = NewMenuModel(m.game.CanLoadGame(), m.runtime.ScreenW, m.runtime.ScreenH)
		}
		m.mode = m.returnTo
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		return m.quit()

	case action.IsMove():
		if m.game.IsGameRunning() {
			m.game.MovePlayer(action)
		}

	case action == core.ActionPause:
		if m.game.IsGameRunning() {
			m.game.Pause()
		} else {
			m.game.Resume()
		}

	case action == core.ActionNewGame:
		m.game.NewGame()
		m.scoreSaved = false

	case action == core.ActionScoreboard:
		m.game.Pause()
		m.openScoreboard(modeGame)
	}
	return m, nil
}

// handleTick runs one engine tick and records the score once per game over.
func (m *Model) handleTick() {
	res := m.game.Tick()
	if res.GameOver && !m.scoreSaved {
		m.recordScore()
	}
}

func (m *Model) recordScore() {
	m.scoreSaved = true

	bear, ok := m.game.Player()
	if !ok || bear.EatenHoney == 0 {
		return
	}
	m.game.AddHighScore(engine.HighScore{Name: m.player, Score: bear.EatenHoney})
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.player, bear.EatenHoney); err != nil {
		m.logger.Warn("could not save score", "player", m.player, "error", err)
	}
}

func (m *Model) startPlaying() {
	m.mode = modeGame
	m.scoreSaved = false
}

func (m *Model) openScoreboard(from mode) {
	m.scoreboard = NewScoreboardModel(m.game.HighScores(), m.runtime.ScreenW, m.runtime.ScreenH)
	m.returnTo = from
	m.mode = modeScores
}

// quit pauses and saves the game before leaving.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.game.Exit()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeMenu:
		return m.menu.View()
	case modeScores:
		return m.scoreboard.View()
	}

	best := 0
	if scores := m.game.HighScores(); len(scores) > 0 {
		best = scores[0].Score
	}
	DrawField(m.screen, m.game.State(), m.game.Config().Field, best)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a local Bubble Tea program for the game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
