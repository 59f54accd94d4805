package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/platform/cellterm"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
	"github.com/vovakirdan/flappy-tui/internal/registry"
)

var flagHost string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing in the selected host.

Controls (tui, tcell):
  Space/Up/W/K, mouse  - Flap (restart after game over)
  ?                    - Toggle help
  Ctrl+S               - Save a text screenshot to ~/.flappy/screenshots
  Q/Esc/Ctrl+C         - Quit
Help and screenshots are tui only.

Controls (window):
  Space/Up, mouse, touch  - Flap (restart after game over)
  Esc                     - Quit

The terminal hosts own the screen, so their logs are dropped unless
--log-file is given.

Examples:
  flappy play
  flappy play --host window
  flappy play --host tcell
  flappy play --seed 42 --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagHost, "host", tui.HostID, "Host to run in (see 'flappy list')")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagHost) {
		fmt.Fprintf(os.Stderr, "Error: unknown host %q\n", flagHost)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available hosts.")
		os.Exit(1)
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed

	var fallback io.Writer = os.Stderr
	if flagHost == tui.HostID || flagHost == cellterm.HostID {
		fallback = io.Discard

		rt.ScreenW, rt.ScreenH = 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rt.ScreenW, rt.ScreenH = w, h
		}
	}

	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	host, err := registry.Create(flagHost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating host: %v\n", err)
		os.Exit(1)
	}

	runErr := host.Run(registry.RunOptions{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	})
	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
