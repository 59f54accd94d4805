// Package cellterm provides a tcell host: a raw terminal loop that writes the
// scene straight into tcell cells, driven by a ticker and an event channel.
package cellterm

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/flappy"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
)

const statusRows = 1

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorRed:          tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorGreen:        tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorOrange:       tcell.StyleDefault.Foreground(tcell.ColorOrange),
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// styleFor returns the tcell style for a buffer color.
func styleFor(c core.Color) tcell.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return tcell.StyleDefault
}

// flapButtons are the mouse buttons that flap.
const flapButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// session is one game plus the terminal state around it. It never touches a
// tcell.Screen except in render, so events and ticks can be driven directly.
type session struct {
	game     *flappy.Game
	cfg      config.FlappyConfig
	runtime  core.RuntimeConfig
	logger   *log.Logger
	viewport tui.Viewport
	buf      *core.Screen

	input    core.InputFrame
	buttons  tcell.ButtonMask // Buttons held at the last mouse event
	lastTick time.Time
	cols     int
	rows     int
	sizeErr  error

	ticks  uint64
	frames uint64
}

func newSession(cfg config.FlappyConfig, runtime core.RuntimeConfig, logger *log.Logger) (*session, error) {
	minRows := tui.MinPlayRows(cfg)
	if minRows == 0 {
		return nil, fmt.Errorf("cellterm: %w: no terminal height fits the configured gap", config.ErrInvalid)
	}

	vp := tui.Viewport{CellW: cfg.Terminal.CellWidth, CellH: cfg.Terminal.CellHeight}
	cols, rows := runtime.ScreenW, runtime.ScreenH
	playRows := rows - statusRows

	w, h := vp.WorldSize(core.Max(cols, 1), core.Max(playRows, minRows))
	game, err := flappy.New(cfg, w, h, runtime.Seed)
	if err != nil {
		return nil, fmt.Errorf("cellterm: %w", err)
	}

	s := &session{
		game:     game,
		cfg:      cfg,
		runtime:  runtime,
		logger:   logger,
		viewport: vp,
		buf:      core.NewScreen(cols, core.Max(playRows, 0)),
		input:    core.NewInputFrame(),
		cols:     cols,
		rows:     rows,
	}
	s.sizeErr = s.checkSize(playRows)
	return s, nil
}

func (s *session) checkSize(playRows int) error {
	minRows := tui.MinPlayRows(s.cfg)
	if playRows < minRows || s.cols <= 0 {
		return fmt.Errorf("terminal too small: need at least %d rows, have %d", minRows+statusRows, s.rows)
	}
	return nil
}

// actionForKey maps a key press to an action.
func actionForKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyUp:
		return core.ActionFlap
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit
		case ' ', 'w', 'k':
			return core.ActionFlap
		}
	}
	return core.ActionNone
}

// handleEvent applies one terminal event and reports whether the loop should continue.
func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch actionForKey(ev) {
		case core.ActionQuit:
			s.game.HandleQuit()
			return false
		case core.ActionFlap:
			s.input.Set(core.ActionFlap)
		}

	case *tcell.EventMouse:
		held := ev.Buttons() & flapButtons
		// Motion with a button held repeats the event; only a new press flaps
		if held&^s.buttons != 0 {
			s.input.Set(core.ActionFlap)
		}
		s.buttons = held

	case *tcell.EventResize:
		s.resize(ev.Size())
	}
	return s.game.Running()
}

func (s *session) resize(cols, rows int) {
	s.cols, s.rows = cols, rows
	playRows := rows - statusRows
	s.buf.Resize(cols, core.Max(playRows, 0))

	if err := s.checkSize(playRows); err != nil {
		s.sizeErr = err
		s.logger.Warn("terminal too small", "cols", cols, "rows", rows)
		return
	}

	w, h := s.viewport.WorldSize(cols, playRows)
	if err := s.game.Resize(w, h); err != nil {
		s.sizeErr = err
		s.logger.Warn("resize rejected", "error", err)
		return
	}
	s.sizeErr = nil
	s.logger.Debug("resized", "cols", cols, "rows", rows, "world_w", w, "world_h", h)
}

// tick applies buffered input and advances the simulation by the elapsed time.
// Nothing advances while the terminal is too small.
func (s *session) tick(now time.Time) {
	dt := core.FrameDelta(s.lastTick, now, s.runtime.TickInterval(), s.cfg.Host.MaxDT)
	s.lastTick = now

	if s.sizeErr != nil {
		s.input.Clear()
		return
	}

	before := s.game.State()
	if s.input.Has(core.ActionFlap) {
		s.game.HandleAction()
		if before == flappy.RoundGameOver {
			s.logger.Info("round started", "round", s.game.Stats().Round)
		}
	}
	s.input.Clear()

	running := s.game.State() == flappy.RoundRunning
	s.game.Step(dt)
	if running {
		s.ticks++
	}
	if running && s.game.State() == flappy.RoundGameOver {
		st := s.game.Stats()
		s.logger.Info("round over",
			"round", st.Round,
			"ticks", st.Ticks,
			"pipes_spawned", st.PipesSpawned,
			"pipes_evicted", st.PipesEvicted,
		)
	}
}

// compose rasterizes the current frame into the cell buffer.
func (s *session) compose() {
	tui.DrawScene(s.buf, s.game.Scene(), s.viewport)
	if s.game.State() == flappy.RoundGameOver {
		msg := "GAME OVER  press space"
		x := (s.buf.Width() - len(msg)) / 2
		s.buf.DrawTextColored(x, s.buf.Height()/2, msg, core.ColorRed)
	}
}

// statusText is the line below the playfield.
func (s *session) statusText() string {
	st := s.game.Stats()
	return fmt.Sprintf(" round %d  ticks %d  pipes %d   space flap  q quit", st.Round, st.Ticks, st.PipesSpawned)
}

// render draws the frame onto a tcell screen and shows it.
func (s *session) render(scr tcell.Screen) {
	scr.Clear()
	if s.sizeErr != nil {
		drawString(scr, 0, 0, s.sizeErr.Error(), tcell.StyleDefault)
		drawString(scr, 0, 2, "q quit", statusStyle)
		scr.Show()
		return
	}

	s.compose()
	for y, h := 0, s.buf.Height(); y < h; y++ {
		for x, w := 0, s.buf.Width(); x < w; x++ {
			c := s.buf.GetCell(x, y)
			scr.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	drawString(scr, 0, s.buf.Height(), s.statusText(), statusStyle)
	scr.Show()
	s.frames++
}

func drawString(scr tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		scr.SetContent(x+i, y, r, nil, style)
	}
}
