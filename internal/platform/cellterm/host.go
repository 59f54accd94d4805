package cellterm

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-tui/internal/registry"
)

// HostID is the registry identifier of the tcell host.
const HostID = "tcell"

func init() {
	registry.Register(HostID, func() registry.Host { return &Host{} })
}

// Host runs the game on a raw tcell screen.
type Host struct{}

// ID returns the host identifier.
func (h *Host) ID() string { return HostID }

// Title returns the display name.
func (h *Host) Title() string { return "Terminal (tcell)" }

// Run takes over the terminal and blocks until the player quits.
func (h *Host) Run(opts registry.RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	runtime := opts.Runtime
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cellterm: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("cellterm: %w", err)
	}
	defer scr.Fini()
	scr.EnableMouse()
	scr.HideCursor()

	// The screen knows its real size; the runtime size is only a hint
	runtime.ScreenW, runtime.ScreenH = scr.Size()

	s, err := newSession(opts.Config, runtime, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "host", HostID, "cols", runtime.ScreenW, "rows", runtime.ScreenH,
		"seed", runtime.Seed, "fps", runtime.TickRate)

	run(scr, s)

	logger.Info("session ended", "ticks", s.ticks, "frames", s.frames)
	return nil
}

// run is the event loop: terminal events arrive on a channel fed by PollEvent,
// frames on a ticker.
func run(scr tcell.Screen, s *session) {
	ticker := time.NewTicker(time.Duration(s.runtime.TickInterval() * float64(time.Second)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(scr.PollEvent, events, done)

	s.render(scr)
	for {
		select {
		case ev, ok := <-events:
			if !ok || !s.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			s.tick(now)
			s.render(scr)
		}
	}
}

// pumpEvents forwards polled events until poll returns nil (screen finalized)
// or done is closed. events is closed on the way out.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
