package window

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/flappy"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	rt := core.RuntimeConfig{TickRate: 60, Seed: 3}
	a, err := newApp(config.DefaultFlappyConfig(), rt, log.New(io.Discard))
	require.NoError(t, err)
	return a
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, act := range actions {
		in.Set(act)
	}
	return in
}

func TestNewAppUsesWindowSize(t *testing.T) {
	a := newTestApp(t)
	w, h := a.game.ScreenSize()
	assert.Equal(t, 585.0, w)
	assert.Equal(t, 1266.0, h)
}

func TestNewAppRejectsTinyWindow(t *testing.T) {
	rt := core.RuntimeConfig{ScreenW: 300, ScreenH: 300}
	_, err := newApp(config.DefaultFlappyConfig(), rt, log.New(io.Discard))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestStepAdvancesByElapsedTime(t *testing.T) {
	a := newTestApp(t)
	start := time.Unix(100, 0)

	require.NoError(t, a.step(frame(), start))
	require.NoError(t, a.step(frame(), start.Add(100*time.Millisecond)))

	// First frame uses the tick interval, the second the measured 0.1s
	want := 2000 * (1.0/60 + 0.1)
	assert.InDelta(t, want, a.game.Entity().VY, 1e-9)
	assert.Equal(t, uint64(2), a.ticks)
}

func TestStepCapsLongFrames(t *testing.T) {
	a := newTestApp(t)
	start := time.Unix(100, 0)

	require.NoError(t, a.step(frame(), start))
	vy := a.game.Entity().VY
	require.NoError(t, a.step(frame(), start.Add(10*time.Second)))

	assert.InDelta(t, vy+2000*0.25, a.game.Entity().VY, 1e-9)
}

func TestStepFlap(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.step(frame(core.ActionFlap), time.Unix(100, 0)))
	assert.InDelta(t, -1000+2000.0/60, a.game.Entity().VY, 1e-9)
}

func TestEscapeTerminates(t *testing.T) {
	a := newTestApp(t)
	err := a.step(frame(core.ActionQuit), time.Unix(100, 0))
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.False(t, a.game.Running())
	assert.Zero(t, a.game.Ticks(), "no step after quit")
}

func TestFlapRestartsAfterGameOver(t *testing.T) {
	a := newTestApp(t)
	now := time.Unix(100, 0)
	for i := 0; i < 1000 && a.game.State() == flappy.RoundRunning; i++ {
		now = now.Add(time.Second / 60)
		require.NoError(t, a.step(frame(), now))
	}
	require.Equal(t, flappy.RoundGameOver, a.game.State())
	ticks := a.ticks

	now = now.Add(time.Second / 60)
	require.NoError(t, a.step(frame(), now))
	assert.Equal(t, ticks, a.ticks, "frames after game over do not count as ticks")

	now = now.Add(time.Second / 60)
	require.NoError(t, a.step(frame(core.ActionFlap), now))
	assert.Equal(t, flappy.RoundRunning, a.game.State())
	assert.Equal(t, 2, a.game.Stats().Round)
}

func TestLayoutResizesWorld(t *testing.T) {
	a := newTestApp(t)

	w, h := a.Layout(800, 1000)
	assert.Equal(t, 800, w)
	assert.Equal(t, 1000, h)
	assert.Equal(t, 875.0, a.game.GroundZone().Y)
	assert.NoError(t, a.sizeErr)
}

func TestLayoutKeepsWorldWhenTooSmall(t *testing.T) {
	a := newTestApp(t)

	w, h := a.Layout(400, 300)
	assert.Equal(t, 585, w)
	assert.Equal(t, 1266, h)
	assert.ErrorIs(t, a.sizeErr, config.ErrInvalid)

	w, h = a.Layout(600, 900)
	assert.Equal(t, 600, w)
	assert.Equal(t, 900, h)
	assert.NoError(t, a.sizeErr)
}
