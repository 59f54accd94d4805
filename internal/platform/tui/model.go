package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/flappy"
)

// statusRows is the number of terminal rows below the playfield.
const statusRows = 1

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game     *flappy.Game
	cfg      config.FlappyConfig
	runtime  core.RuntimeConfig
	logger   *log.Logger
	viewport Viewport
	screen   *core.Screen
	keys     KeyMap
	help     help.Model

	input    core.InputFrame // Actions buffered until the next tick
	lastTick time.Time
	cols     int
	rows     int
	sizeErr  error // Set while the terminal is too small to play
	showHelp bool
	quitting bool

	ticks  uint64 // Simulation steps over the whole session
	frames uint64 // Frames drawn over the whole session
}

// NewModel creates a model for a terminal of runtime.ScreenW x runtime.ScreenH cells.
// The game is created even when the terminal is too small; the model then shows
// a notice until the terminal grows.
func NewModel(cfg config.FlappyConfig, runtime core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	vp := Viewport{CellW: cfg.Terminal.CellWidth, CellH: cfg.Terminal.CellHeight}
	cols, rows := runtime.ScreenW, runtime.ScreenH
	playRows := rows - statusRows

	minRows := MinPlayRows(cfg)
	if minRows == 0 {
		return Model{}, fmt.Errorf("tui: %w: no terminal height fits the configured gap", config.ErrInvalid)
	}

	w, h := vp.WorldSize(core.Max(cols, 1), core.Max(playRows, minRows))
	game, err := flappy.New(cfg, w, h, runtime.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	h2 := help.New()
	h2.ShowAll = false

	m := Model{
		game:     game,
		cfg:      cfg,
		runtime:  runtime,
		logger:   logger,
		viewport: vp,
		screen:   core.NewScreen(cols, core.Max(playRows, 0)),
		keys:     DefaultKeyMap(),
		help:     h2,
		input:    core.NewInputFrame(),
		cols:     cols,
		rows:     rows,
	}
	m.sizeErr = m.checkSize(playRows)
	return m, nil
}

// MinPlayRows returns the smallest number of playfield rows the configuration
// accepts, or 0 if none up to a sane limit does.
func MinPlayRows(cfg config.FlappyConfig) int {
	for rows := 1; rows <= 1000; rows++ {
		if cfg.ValidateScreen(cfg.Terminal.CellWidth, float64(rows)*cfg.Terminal.CellHeight) == nil {
			return rows
		}
	}
	return 0
}

// checkSize reports why playRows is not enough, or nil.
func (m Model) checkSize(playRows int) error {
	if playRows < MinPlayRows(m.cfg) || m.cols <= 0 {
		return fmt.Errorf("terminal too small: need at least %d rows, have %d",
			MinPlayRows(m.cfg)+statusRows, m.rows)
	}
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleAction(MouseAction(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleAction reacts to host-level actions immediately and buffers the flap for the next tick.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.game.HandleQuit()
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.showHelp = !m.showHelp
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionFlap:
		m.input.Set(a)
	}
	return m, nil
}

// handleResize re-derives the world size from the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cols, m.rows = msg.Width, msg.Height
	m.help.Width = msg.Width
	playRows := msg.Height - statusRows
	m.screen.Resize(msg.Width, core.Max(playRows, 0))

	if err := m.checkSize(playRows); err != nil {
		m.sizeErr = err
		m.logger.Warn("terminal too small", "cols", msg.Width, "rows", msg.Height)
		return m, nil
	}

	w, h := m.viewport.WorldSize(msg.Width, playRows)
	if err := m.game.Resize(w, h); err != nil {
		m.sizeErr = err
		m.logger.Warn("resize rejected", "error", err)
		return m, nil
	}
	m.sizeErr = nil
	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height, "world_w", w, "world_h", h)
	return m, nil
}

// handleTick applies buffered input, then advances the simulation by the elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.game.Running() {
		m.quitting = true
		return m, tea.Quit
	}

	dt := core.FrameDelta(m.lastTick, now, m.runtime.TickInterval(), m.cfg.Host.MaxDT)
	m.lastTick = now

	if m.sizeErr != nil {
		m.input.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	m.advance(dt)
	m.frames++
	return m, tickCmd(m.runtime.TickRate)
}

// advance runs one simulation step and logs round transitions.
func (m *Model) advance(dt float64) {
	before := m.game.State()
	if m.input.Has(core.ActionFlap) {
		m.game.HandleAction()
		if before == flappy.RoundGameOver {
			m.logger.Info("round started", "round", m.game.Stats().Round)
		}
	}
	m.input.Clear()

	running := m.game.State() == flappy.RoundRunning
	m.game.Step(dt)
	if running {
		m.ticks++
	}

	if running && m.game.State() == flappy.RoundGameOver {
		s := m.game.Stats()
		m.logger.Info("round over",
			"round", s.Round,
			"ticks", s.Ticks,
			"pipes_spawned", s.PipesSpawned,
			"pipes_evicted", s.PipesEvicted,
		)
	}
}

// Counters returns the session's simulation steps and drawn frames.
func (m Model) Counters() (ticks, frames uint64) {
	return m.ticks, m.frames
}

// Game returns the hosted game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// draw rasterizes the current state into the screen buffer.
func (m Model) draw() {
	DrawScene(m.screen, m.game.Scene(), m.viewport)
	if m.game.State() == flappy.RoundGameOver {
		drawGameOver(m.screen, m.game.Stats())
	}
	if m.showHelp {
		drawHelp(m.screen, m.keys)
	}
}

// saveScreenshot saves the current playfield to a text file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.sizeErr != nil {
		return renderNotice(m.cols, m.rows, m.sizeErr.Error(), m.keys.Quit)
	}

	m.draw()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusLine(m.game.Stats(), m.help.View(m.keys), m.cols))
	return b.String()
}
