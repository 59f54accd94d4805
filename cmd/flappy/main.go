// flappy is a Flappy Bird-style game for the terminal and the desktop.
//
// Usage:
//
//	flappy play                  - Play in the terminal
//	flappy play --host window    - Play in a desktop window
//	flappy play --host tcell     - Play on a raw tcell screen
//	flappy list                  - List available hosts
//	flappy config                - Print the effective configuration
//	flappy simulate              - Run a headless, deterministic simulation
//
// Global flags:
//
//	--config <path>     - YAML or TOML config file
//	--seed <value>      - Set RNG seed for reproducible pipe placement
//	--fps <rate>        - Set frame rate (default: 60)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"

	// Import hosts to register them
	_ "github.com/vovakirdan/flappy-tui/internal/platform/cellterm"
	_ "github.com/vovakirdan/flappy-tui/internal/platform/tui"
	_ "github.com/vovakirdan/flappy-tui/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the pipes in your terminal or a window",
	Long: `Flappy is a Flappy Bird-style game. One button flaps; touching the
ground or a pipe ends the round, and the same button starts the next one.

Available commands:
  play      - Play the game
  list      - Show available hosts
  config    - Print the effective configuration
  simulate  - Run a headless simulation

Every flag can also be set from the environment as FLAPPY_<FLAG>
(for example FLAPPY_LOG_LEVEL=debug), or from a .env file in the
current directory. Flags given on the command line win.

Examples:
  flappy play
  flappy play --host window
  flappy play --config ./my-flappy.toml --seed 42
  flappy simulate --ticks 600 --flap-every 20`,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simulateCmd)
}

// applyEnv loads ./.env, then fills flags from the environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(".env"); err != nil {
		return err
	}
	return envOverrides(cmd.Flags())
}

// envOverrides sets every flag not given on the command line from its FLAPPY_* variable.
func envOverrides(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || err != nil {
			return
		}
		if v, ok := config.Env(f.Name); ok {
			if setErr := fs.Set(f.Name, v); setErr != nil {
				err = fmt.Errorf("invalid %s: %w", config.EnvName(f.Name), setErr)
			}
		}
	})
	return err
}

// newLogger builds the session logger from the global flags. fallback receives
// the logs when no --log-file is given.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closeFn, nil
}
