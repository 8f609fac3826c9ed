package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-zelda/internal/core"
)

// helpRows is the space kept under the game for the key help line.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	store    ScoreStore
	config   core.RuntimeConfig
	input    *core.InputState
	nowMs    int64 // platform clock, advanced per tick
	state    core.GameState
	keys     KeyMap
	help     help.Model
	log      *log.Logger
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithStore persists finished runs and seeds the best score.
func WithStore(store ScoreStore) Option {
	return func(m *Model) { m.store = store }
}

// WithLogger routes platform events to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithKeyPress queues a key press for the first tick, e.g. a level key to
// skip the title screen.
func WithKeyPress(a core.Action) Option {
	return func(m *Model) { m.input.Press(a, 0) }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...Option) Model {
	def := core.DefaultConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.HoldWindow <= 0 {
		cfg.HoldWindow = def.HoldWindow
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpRows)),
		config: cfg,
		input:  core.NewInputState(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.gameConfig())
	if m.store != nil {
		m.loadBest()
	}
	m.state = m.game.State()
	return m
}

// gameConfig is the runtime config with the help row taken off.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(1, cfg.ScreenH-helpRows)
	return cfg
}

func (m Model) loadBest() {
	bs, ok := m.game.(BestScorer)
	if !ok {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.log.Warn("cannot load best score", "err", err)
		return
	}
	bs.SetBestScore(best)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-helpRows))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key presses; the next tick consumes them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action, m.nowMs)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.step()
	return m, tickCmd(m.config.TickInterval)
}

// step advances the platform clock, expires stale held keys and steps the game.
func (m *Model) step() core.StepResult {
	m.nowMs += int64(m.config.TickInterval)
	m.input.Expire(m.nowMs, int64(m.config.HoldWindow))

	result := m.game.Step(m.input.Frame())
	m.state = result.State
	if result.RunEnded {
		m.saveRun(result)
	}
	return result
}

// saveRun persists a finished run. Failures are logged, play goes on.
func (m *Model) saveRun(result core.StepResult) {
	m.log.Info("run ended", "score", result.RunScore, "level", result.RunLevel, "best", result.State.Best)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), result.RunLevel, result.RunScore); err != nil {
		m.log.Warn("cannot save score", "err", err)
	}
}

// saveScreenshot saves the current screen to ~/.zelda/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot: no home directory", "err", err)
		return
	}
	dir := filepath.Join(home, ".zelda", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot: cannot create directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot: cannot write", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the latest tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for the game.
func Run(game Game, cfg core.RuntimeConfig, opts ...Option) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts...),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
