// Package flappy implements the simulation core of a Flappy Bird-style game.
// The player controls a bird that falls under gravity and must flap through
// gaps in a stream of vertical pipes.
//
// The package never reads the clock and never draws: hosts feed elapsed time
// to Step, forward input to HandleAction/HandleQuit, and read state back
// through the accessors or Scene.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// RoundState is the state of the current round.
type RoundState int

const (
	RoundRunning RoundState = iota
	RoundGameOver
)

// String returns a human-readable name for the state.
func (s RoundState) String() string {
	switch s {
	case RoundRunning:
		return "running"
	case RoundGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg       config.FlappyConfig
	screenW   float64
	screenH   float64
	player    Entity
	pipes     *PipeManager
	state     RoundState
	running   bool   // Cleared by HandleQuit; polled by the host
	tickCount uint64 // Ticks simulated in the current round
	rounds    int    // Rounds started, including the first
}

// New validates the configuration against the screen size and returns a game
// ready to play. The seed drives pipe placement.
func New(cfg config.FlappyConfig, screenW, screenH float64, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if err := cfg.ValidateScreen(screenW, screenH); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		screenW: screenW,
		screenH: screenH,
		running: true,
	}
	g.pipes = NewPipeManager(seed, screenW, screenH, &g.cfg)
	g.Reset()
	return g, nil
}

// Reset starts a new round: fresh entity, no pipes, running.
func (g *Game) Reset() {
	g.player = Entity{Y: g.cfg.Player.InitialY, VY: 0}
	g.pipes.Clear()
	g.state = RoundRunning
	g.tickCount = 0
	g.rounds++
}

// HandleAction applies the single player action: a flap while running,
// a reset once the round is over.
func (g *Game) HandleAction() {
	if g.state == RoundGameOver {
		g.Reset()
		return
	}
	Impulse(&g.player, g.cfg.Physics.ImpulseVelocity)
}

// HandleQuit asks the host to stop. The simulation itself is unaffected.
func (g *Game) HandleQuit() {
	g.running = false
}

// Running reports whether the host should keep its loop going.
func (g *Game) Running() bool {
	return g.running
}

// Step advances the simulation by dt seconds. It is a no-op once the round is over.
func (g *Game) Step(dt float64) {
	if g.state == RoundGameOver {
		return
	}

	g.tickCount++

	g.pipes.Update(dt, g.cfg.Physics.ObstacleVelocity)
	Integrate(&g.player, dt, g.cfg.Physics.Gravity)

	if g.detectCollision() {
		g.state = RoundGameOver
	}
}

// Resize updates the screen dimensions. The new size is rejected, leaving the
// game untouched, if no gap would fit.
func (g *Game) Resize(screenW, screenH float64) error {
	if err := g.cfg.ValidateScreen(screenW, screenH); err != nil {
		return fmt.Errorf("flappy: %w", err)
	}
	g.screenW = screenW
	g.screenH = screenH
	g.pipes.UpdateScreenSize(screenW, screenH)
	return nil
}

// State returns the current round state.
func (g *Game) State() RoundState {
	return g.state
}

// Entity returns a copy of the controlled entity.
func (g *Game) Entity() Entity {
	return g.player
}

// Pipes returns the live pipes, oldest first.
func (g *Game) Pipes() []Pipe {
	return g.pipes.Pipes()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// ScreenSize returns the current screen dimensions in world units.
func (g *Game) ScreenSize() (w, h float64) {
	return g.screenW, g.screenH
}

// Ticks returns the number of ticks simulated in the current round.
func (g *Game) Ticks() uint64 {
	return g.tickCount
}

// Stats summarizes the current round.
type Stats struct {
	Round        int // Rounds started so far; every Reset counts, even back to back
	Ticks        uint64
	PipesSpawned int
	PipesEvicted int
	State        RoundState
}

// Stats returns counters for the current round.
func (g *Game) Stats() Stats {
	return Stats{
		Round:        g.rounds,
		Ticks:        g.tickCount,
		PipesSpawned: g.pipes.Spawned(),
		PipesEvicted: g.pipes.Evicted(),
		State:        g.state,
	}
}

// EntityRect returns the entity's collision rectangle.
func (g *Game) EntityRect() core.FRect {
	p := g.cfg.Player
	return core.NewFRect(p.X, g.player.Y, p.Width, p.Height)
}

// PipeRects holds the two collision segments of one pipe.
type PipeRects struct {
	Top    core.FRect
	Bottom core.FRect
}

// ObstacleRects returns the segments of every live pipe, oldest first.
func (g *Game) ObstacleRects() []PipeRects {
	o := g.cfg.Obstacles
	pipes := g.pipes.Pipes()
	rects := make([]PipeRects, len(pipes))
	for i, p := range pipes {
		rects[i] = PipeRects{
			Top:    p.TopRect(o.Width),
			Bottom: p.BottomRect(o.Width, o.GapHeight, g.screenH),
		}
	}
	return rects
}
