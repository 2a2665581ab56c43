package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
	"github.com/vovakirdan/skyland/internal/registry"
	"github.com/vovakirdan/skyland/internal/storage"
)

// Tunable is implemented by games that accept tuning reloads.
type Tunable interface {
	SetTuning(cfg config.SkylandConfig)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	input      *InputMapper
	settled    bool // button state the game last acted on
	inputFrame core.InputFrame
	gameState  core.GameState
	board      Scoreboard
	showBoard  bool
	logger     *log.Logger
	runTicks   int
	quitting   bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for run and reload events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// NewModel creates a model for game. store may be nil, in which case runs
// are not recorded.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.input = NewInputMapper(m.keys)
	m.board = NewScoreboard(store, game.ID(), m.keys)

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.input.Lock(!m.acceptsButton())
		return m.handleAction(m.input.MapKey(msg))

	case tea.MouseMsg:
		m.input.Lock(!m.acceptsButton())
		return m.handleAction(m.input.MapMouse(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ConfigReloadedMsg:
		if t, ok := m.game.(Tunable); ok {
			t.SetTuning(msg.Config)
			m.logger.Info("tuning reloaded; applies from the next run")
		}
		return m, nil

	case ConfigErrorMsg:
		m.logger.Warn("tuning reload failed", "err", msg.Err)
		return m, nil
	}

	return m, nil
}

// handleAction applies a mapped action. Platform actions take effect at
// once; game actions are queued for the next tick.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScoreboard:
		m.showBoard = !m.showBoard
		if m.showBoard {
			m.board.Refresh()
		}
	case core.ActionRestart:
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.input.Reset()
		m.settled = false
		m.inputFrame.Clear()
		m.runTicks = 0
	case core.ActionPause:
		m.inputFrame.Set(a)
		if !m.acceptsButton() {
			m.dropButton()
		}
	default:
		m.inputFrame.Set(a)
	}
	return m, nil
}

// acceptsButton reports whether the game will act on a button change
// queued now: it is alive, the scoreboard is closed and it is not paused
// once a queued pause toggle has been applied.
func (m Model) acceptsButton() bool {
	paused := m.gameState.Paused != m.inputFrame.Has(core.ActionPause)
	return !paused && !m.gameState.Dying && !m.showBoard
}

// dropButton withdraws a queued button change the game would ignore and
// rolls the mapper back to the state the game holds.
func (m *Model) dropButton() {
	m.inputFrame.Unset(core.ActionEngage)
	m.inputFrame.Unset(core.ActionRelease)
	m.input.Restore(m.settled)
}

// handleTick runs one simulation step and records finished runs.
// Input queued while the scoreboard is open waits for it to close.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showBoard {
		return m, tickCmd(m.config.TickRate)
	}

	wasDying := m.gameState.Dying
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	if !m.gameState.Paused {
		m.runTicks++
	}

	if result.RunEnded {
		m.recordRun(result.RunScore)
	}
	// Death and respawn both disarm the game.
	if result.RunEnded || (wasDying && !m.gameState.Dying) {
		m.input.Reset()
	}
	m.settled = m.input.Engaged()

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores a finished run. Failures are logged; play goes on.
func (m *Model) recordRun(score int) {
	alive := time.Duration(m.runTicks) * time.Second / time.Duration(m.config.TickRate)
	m.runTicks = 0
	m.logger.Info("run ended", "score", score, "alive", alive)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    score,
		Duration: alive,
	}); err != nil {
		m.logger.Warn("save run", "err", err)
	}
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return overlay(m.board.View(), m.screen.Width(), m.screen.Height())
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program. When watcher is non-nil its reloads
// are forwarded to the game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, watcher *config.Watcher, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if watcher != nil {
		go forwardWatcher(watcher, p.Send)
	}

	_, err := p.Run()
	return err
}
