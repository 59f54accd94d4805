// Package window provides the Ebitengine host: a resizable desktop window
// where the world is drawn one unit per pixel.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/flappy"
)

// flapButtons are the mouse buttons that flap. Any of them counts.
var flapButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// app implements ebiten.Game around one flappy.Game.
type app struct {
	game    *flappy.Game
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	lastFrame time.Time
	layoutW   int
	layoutH   int
	sizeErr   error // Last rejected layout; the previous world size stays in use

	ticks  uint64
	frames uint64
}

func newApp(cfg config.FlappyConfig, runtime core.RuntimeConfig, logger *log.Logger) (*app, error) {
	w, h := cfg.Window.Width, cfg.Window.Height
	if runtime.ScreenW > 0 && runtime.ScreenH > 0 {
		w, h = runtime.ScreenW, runtime.ScreenH
	}
	game, err := flappy.New(cfg, float64(w), float64(h), runtime.Seed)
	if err != nil {
		return nil, err
	}
	return &app{
		game:    game,
		cfg:     cfg,
		runtime: runtime,
		logger:  logger,
		layoutW: w,
		layoutH: h,
	}, nil
}

// pollInput collects this frame's actions. Only fresh presses count, so key
// repeat never flaps.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		in.Set(core.ActionFlap)
	}
	for _, b := range flapButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			in.Set(core.ActionFlap)
		}
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		in.Set(core.ActionFlap)
	}
	return in
}

// Update is called by Ebitengine once per tick.
func (a *app) Update() error {
	return a.step(pollInput(), time.Now())
}

// step applies one frame of input and advances the simulation by the time
// elapsed since the previous frame.
func (a *app) step(in core.InputFrame, now time.Time) error {
	if in.Has(core.ActionQuit) {
		a.game.HandleQuit()
	}
	if !a.game.Running() {
		return ebiten.Termination
	}

	dt := core.FrameDelta(a.lastFrame, now, a.runtime.TickInterval(), a.cfg.Host.MaxDT)
	a.lastFrame = now

	before := a.game.State()
	if in.Has(core.ActionFlap) {
		a.game.HandleAction()
		if before == flappy.RoundGameOver {
			a.logger.Info("round started", "round", a.game.Stats().Round)
		}
	}

	running := a.game.State() == flappy.RoundRunning
	a.game.Step(dt)
	if running {
		a.ticks++
	}
	if running && a.game.State() == flappy.RoundGameOver {
		s := a.game.Stats()
		a.logger.Info("round over",
			"round", s.Round,
			"ticks", s.Ticks,
			"pipes_spawned", s.PipesSpawned,
			"pipes_evicted", s.PipesEvicted,
		)
	}
	return nil
}

// Layout maps the window size one-to-one onto the world. A size the game
// rejects keeps the previous world, scaled to fit the window.
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.resize(outsideWidth, outsideHeight)
	w, h := a.game.ScreenSize()
	return int(w), int(h)
}

func (a *app) resize(width, height int) {
	if width == a.layoutW && height == a.layoutH {
		return
	}
	a.layoutW, a.layoutH = width, height

	err := a.game.Resize(float64(width), float64(height))
	if err != nil {
		if a.sizeErr == nil {
			a.logger.Warn("window size rejected", "width", width, "height", height, "error", err)
		}
		a.sizeErr = err
		return
	}
	a.sizeErr = nil
	a.logger.Debug("resized", "width", width, "height", height)
}
