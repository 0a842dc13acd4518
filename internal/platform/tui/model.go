// Package tui provides the Bubble Tea integration for Find Your Path.
// It maps keys and mouse clicks to game actions, renders the game screen and
// serves sessions over SSH.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/findpath/internal/core"
	"github.com/vovakirdan/findpath/internal/registry"
)

// Model is the Bubble Tea model for running a game.
// Every key press or button click is one input event that is applied
// immediately; there is no tick loop.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	showHelp bool
	state    core.GameState
	logger   *log.Logger
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithHelp toggles the key help footer.
func WithHelp(show bool) Option {
	return func(m *Model) {
		m.showHelp = show
	}
}

// WithLogger reports stage changes and completion to logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel creates a new Bubble Tea model for the given game and starts a
// fresh session.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:     game,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		showHelp: true,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.help.Width = cfg.ScreenW
	gameCfg := m.gameConfig()
	m.screen = core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH)
	m.game.Reset(gameCfg)
	m.state = m.game.State()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil

	case core.ActionBack:
		// Back closes the full help first, then leaves the game.
		if m.help.ShowAll {
			m.help.ShowAll = false
			m.resizeScreen()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionNone:
		return m, nil

	default:
		m.apply(core.FrameOf(action))
		return m, nil
	}
}

// handleMouse turns a left click on an on-screen button into its action.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	p, ok := m.game.(registry.Pointer)
	if !ok {
		return m, nil
	}

	m.apply(core.FrameOf(p.ActionAt(msg.X, msg.Y)))
	return m, nil
}

// apply runs one input event through the game. Empty frames are dropped.
func (m *Model) apply(in core.InputFrame) {
	if in.Empty() {
		return
	}
	prev := m.state
	m.state = m.game.Step(in)
	m.logTransition(prev, m.state)
}

// logTransition reports stage changes, completion and restarts.
func (m *Model) logTransition(prev, next core.GameState) {
	if m.logger == nil {
		return
	}
	switch {
	case prev.Completed && !next.Completed:
		m.logger.Debug("session restarted", "game", m.game.ID())
	case !prev.Completed && next.Completed:
		m.logger.Info("maze completed", "game", m.game.ID(), "moves", next.Moves)
	case next.Stage > prev.Stage:
		m.logger.Debug("stage advanced", "game", m.game.ID(), "stage", next.Stage, "moves", next.Moves)
	}
}

// handleResize processes window resize events. Progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.resizeScreen()
	return m, nil
}

// resizeScreen sizes the game area to the window minus the help footer.
func (m *Model) resizeScreen() {
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.game.Resize(cfg)
}

// gameConfig returns the runtime config for the area above the help footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = core.Max(cfg.ScreenH-m.helpHeight(), 0)
	return cfg
}

// helpHeight returns the number of rows used by the help footer.
func (m Model) helpHeight() int {
	if !m.showHelp {
		return 0
	}
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = core.Max(rows, len(col))
	}
	return rows
}

// State returns the game state after the last event.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run starts the Bubble Tea program for a local game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks drive the on-screen arrow buttons
	)

	_, err := p.Run()
	return err
}
