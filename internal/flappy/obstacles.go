package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X    float64 // Horizontal position (left edge)
	GapY float64 // Y position where gap starts (top of gap)
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(width float64) core.FRect {
	return core.NewFRect(p.X, 0, width, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe,
// reaching down to the bottom of the screen.
func (p Pipe) BottomRect(width, gapHeight, screenH float64) core.FRect {
	bottomY := p.GapY + gapHeight
	return core.NewFRect(p.X, bottomY, width, screenH-bottomY)
}

// PipeManager owns the bounded stream of pipes: spawning, movement and eviction.
// Pipes are kept oldest (leftmost) first.
type PipeManager struct {
	pipes   *core.Ring[Pipe]
	rng     *rand.Rand
	screenW float64
	screenH float64
	cfg     *config.FlappyConfig

	spawned int // Pipes created since the last Clear
	evicted int // Pipes recycled since the last Clear
}

// NewPipeManager creates an empty pipe stream with the given RNG seed.
// The configuration must already be validated for this screen size.
func NewPipeManager(seed int64, screenW, screenH float64, cfg *config.FlappyConfig) *PipeManager {
	return &PipeManager{
		pipes:   core.NewRing[Pipe](cfg.Obstacles.Capacity),
		rng:     rand.New(rand.NewSource(seed)),
		screenW: screenW,
		screenH: screenH,
		cfg:     cfg,
	}
}

// Clear removes all pipes. The RNG keeps its sequence so successive rounds differ.
func (pm *PipeManager) Clear() {
	pm.pipes.Clear()
	pm.spawned = 0
	pm.evicted = 0
}

// UpdateScreenSize updates the screen dimensions used for spawning.
func (pm *PipeManager) UpdateScreenSize(screenW, screenH float64) {
	pm.screenW = screenW
	pm.screenH = screenH
}

// Update runs one tick of the stream pipeline. The order is fixed:
//  1. spawn if empty
//  2. spawn if the newest pipe has moved a full spacing away from the right edge
//  3. recycle pipes that left the screen
//  4. advance the survivors
func (pm *PipeManager) Update(dt, velocity float64) {
	pm.MaybeSpawn()
	pm.Recycle()
	pm.Advance(dt, velocity)
}

// MaybeSpawn runs both spawn checks, empty first. It returns the number of pipes added.
func (pm *PipeManager) MaybeSpawn() int {
	n := 0
	if pm.SpawnIfEmpty() {
		n++
	}
	if pm.SpawnIfSpaced() {
		n++
	}
	return n
}

// SpawnIfEmpty creates a pipe at the right edge when the stream is empty.
func (pm *PipeManager) SpawnIfEmpty() bool {
	if !pm.pipes.Empty() {
		return false
	}
	return pm.spawn()
}

// SpawnIfSpaced appends a pipe when there is room and the newest pipe is more than
// one spacing unit left of the right edge.
func (pm *PipeManager) SpawnIfSpaced() bool {
	newest, ok := pm.pipes.Back()
	if !ok || pm.pipes.Full() {
		return false
	}
	if newest.X >= pm.screenW-pm.cfg.Obstacles.Spacing {
		return false
	}
	return pm.spawn()
}

// spawn pushes a new pipe at the right edge with a random gap.
func (pm *PipeManager) spawn() bool {
	if !pm.pipes.Push(Pipe{X: pm.screenW, GapY: pm.gapY()}) {
		return false
	}
	pm.spawned++
	return true
}

// gapY picks an integer gap offset uniformly from the legal range.
func (pm *PipeManager) gapY() float64 {
	lo, n := pm.cfg.GapRange(pm.screenH)
	if n <= 0 {
		return float64(lo) // Screen shrank below the validated minimum
	}
	return float64(lo + pm.rng.Intn(n))
}

// Recycle evicts pipes from the front while their right edge is left of the screen.
// Returns the number of evicted pipes.
func (pm *PipeManager) Recycle() int {
	width := pm.cfg.Obstacles.Width
	n := 0
	for {
		front, ok := pm.pipes.Front()
		if !ok || front.X+width >= 0 {
			break
		}
		pm.pipes.PopFront()
		n++
	}
	pm.evicted += n
	return n
}

// Advance moves every pipe horizontally by velocity*dt.
func (pm *PipeManager) Advance(dt, velocity float64) {
	for i := 0; i < pm.pipes.Len(); i++ {
		pm.pipes.Ptr(i).X += velocity * dt
	}
}

// Len returns the number of live pipes.
func (pm *PipeManager) Len() int {
	return pm.pipes.Len()
}

// Pipes returns a copy of the live pipes, oldest first.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes.AppendTo(make([]Pipe, 0, pm.pipes.Len()))
}

// Spawned returns the number of pipes created since the last Clear.
func (pm *PipeManager) Spawned() int {
	return pm.spawned
}

// Evicted returns the number of pipes recycled since the last Clear.
func (pm *PipeManager) Evicted() int {
	return pm.evicted
}

// CheckCollision tests if the given rectangle collides with any pipe segment.
func (pm *PipeManager) CheckCollision(rect core.FRect) bool {
	o := pm.cfg.Obstacles
	for i := 0; i < pm.pipes.Len(); i++ {
		p := pm.pipes.At(i)
		if rect.Intersects(p.TopRect(o.Width)) || rect.Intersects(p.BottomRect(o.Width, o.GapHeight, pm.screenH)) {
			return true
		}
	}
	return false
}
