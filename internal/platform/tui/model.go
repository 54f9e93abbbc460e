package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clonkbot/void-runner-60f04d/internal/core"
	"github.com/clonkbot/void-runner-60f04d/internal/runner"
	"github.com/clonkbot/void-runner-60f04d/internal/storage"
)

// Model is the Bubble Tea model driving the runner. It owns the tick
// scheduler, queues input intents between ticks and applies them at the
// start of the next simulation step.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	snapshot   runner.Snapshot
	lastTick   time.Time
	board      *ScoreboardModel
	quitting   bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *runner.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Seed the session high score from storage
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			game.SetHighScore(high)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Scoreboard overlay has its own bindings while open.
	if m.board != nil {
		return m.handleBoardKey(msg)
	}

	// Tab opens the scoreboard while the simulation is frozen.
	if msg.String() == "tab" && m.snapshot.Phase != runner.PhasePlaying {
		board := NewScoreboardModel(m.store, m.game.ID(), m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleBoardKey routes keys to the scoreboard overlay.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.board.Update(msg)
	m.board = &updated

	if m.board.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.GoingBack() {
		m.board = nil
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if m.board != nil {
		updated, _ := m.board.Update(msg)
		m.board = &updated
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	dt := m.measureDt(time.Time(msg))

	// A restart gets a fresh obstacle sequence.
	if m.inputFrame.Has(core.ActionStart) && m.snapshot.Phase == runner.PhaseGameOver {
		m.game.SetSeed(time.Now().UnixNano())
		m.scoreSaved = false
	}

	m.snapshot = m.game.Step(m.inputFrame, dt)

	// Record the finished run once.
	if m.snapshot.Phase == runner.PhaseGameOver && !m.scoreSaved && m.snapshot.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.snapshot.Score)
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// measureDt returns the elapsed milliseconds since the previous tick,
// clamped so suspends and terminal stalls don't teleport obstacles.
func (m *Model) measureDt(now time.Time) float64 {
	nominal := 1000.0 / float64(m.config.TickRate)
	dt := nominal
	if !m.lastTick.IsZero() {
		elapsed := float64(now.Sub(m.lastTick).Microseconds()) / 1000.0
		dt = core.ClampF(elapsed, 0, 3*nominal)
	}
	m.lastTick = now
	return dt
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *runner.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
