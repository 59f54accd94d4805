package window

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-tui/internal/registry"
)

// HostID is the registry identifier of the window host.
const HostID = "window"

func init() {
	registry.Register(HostID, func() registry.Host { return &Host{} })
}

// Host runs the game in a desktop window with Ebitengine.
type Host struct{}

// ID returns the host identifier.
func (h *Host) ID() string { return HostID }

// Title returns the display name.
func (h *Host) Title() string { return "Desktop window (Ebitengine)" }

// Run opens the window and blocks until it is closed or Escape is pressed.
func (h *Host) Run(opts registry.RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	a, err := newApp(opts.Config, rt, logger)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	ebiten.SetWindowSize(a.layoutW, a.layoutH)
	ebiten.SetWindowTitle(opts.Config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}

	logger.Info("starting", "host", HostID, "width", a.layoutW, "height", a.layoutH,
		"seed", rt.Seed, "fps", rt.TickRate)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	logger.Info("session ended", "ticks", a.ticks, "frames", a.frames)
	return nil
}
