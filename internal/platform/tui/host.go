package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/registry"
)

// HostID is the registry identifier of the terminal host.
const HostID = "tui"

func init() {
	registry.Register(HostID, func() registry.Host { return &Host{} })
}

// Host runs the game in the terminal with Bubble Tea.
type Host struct{}

// ID returns the host identifier.
func (h *Host) ID() string { return HostID }

// Title returns the display name.
func (h *Host) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until the player quits.
func (h *Host) Run(opts registry.RunOptions) error {
	model, err := NewModel(opts.Config, opts.Runtime, opts.Logger)
	if err != nil {
		return err
	}
	logger := model.logger

	logger.Info("starting", "host", HostID, "cols", opts.Runtime.ScreenW, "rows", opts.Runtime.ScreenH,
		"seed", model.runtime.Seed, "fps", opts.Runtime.TickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses flap
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if m, ok := final.(Model); ok {
		ticks, frames := m.Counters()
		logger.Info("session ended", "ticks", ticks, "frames", frames)
	}
	return nil
}
