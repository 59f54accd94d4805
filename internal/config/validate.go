package config

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks the screen-independent constraints.
// All problems are reported at once, wrapped around ErrInvalid.
func (c FlappyConfig) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(finite(c.Physics.Gravity), "physics.gravity must be finite")
	check(finite(c.Physics.ImpulseVelocity), "physics.impulse_velocity must be finite")
	check(c.Physics.ObstacleVelocity < 0 && finite(c.Physics.ObstacleVelocity),
		"physics.obstacle_velocity must be negative, got %g", c.Physics.ObstacleVelocity)

	o := c.Obstacles
	check(o.Width > 0, "obstacles.width must be positive, got %g", o.Width)
	check(o.GapHeight > 0, "obstacles.gap_height must be positive, got %g", o.GapHeight)
	check(o.GapPaddingTop >= 0, "obstacles.gap_padding_top must not be negative, got %g", o.GapPaddingTop)
	check(o.GapPaddingBottom >= 0, "obstacles.gap_padding_bottom must not be negative, got %g", o.GapPaddingBottom)
	check(o.Spacing > 0, "obstacles.spacing must be positive, got %g", o.Spacing)
	check(o.Capacity >= 1, "obstacles.capacity must be at least 1, got %d", o.Capacity)

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player size must be positive, got %gx%g", p.Width, p.Height)
	check(finite(p.X) && finite(p.InitialY), "player position must be finite")

	check(c.Host.MaxDT > 0, "host.max_dt must be positive, got %g", c.Host.MaxDT)
	check(c.Terminal.CellWidth > 0 && c.Terminal.CellHeight > 0,
		"terminal cell size must be positive, got %gx%g", c.Terminal.CellWidth, c.Terminal.CellHeight)
	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)

	if len(problems) > 0 {
		return fmt.Errorf("config: %w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// GapRange returns the integer spawn range for a gap offset on a screen of the given height:
// offsets are drawn from [lo, lo+n). n <= 0 means no gap fits.
// Fractional bounds round inward so every offset honors both paddings.
func (c FlappyConfig) GapRange(screenH float64) (lo, n int) {
	o := c.Obstacles
	lo = int(math.Ceil(o.GapPaddingTop))
	hi := int(math.Floor(screenH - o.GapHeight - o.GapPaddingBottom))
	return lo, hi - lo
}

// ValidateScreen checks the constraints that depend on the screen size.
func (c FlappyConfig) ValidateScreen(screenW, screenH float64) error {
	if !(screenW > 0) || !(screenH > 0) {
		return fmt.Errorf("config: %w: screen size must be positive, got %gx%g", ErrInvalid, screenW, screenH)
	}
	if _, n := c.GapRange(screenH); n <= 0 {
		o := c.Obstacles
		return fmt.Errorf("config: %w: screen height %g leaves no room for a %g gap with %g/%g padding",
			ErrInvalid, screenH, o.GapHeight, o.GapPaddingTop, o.GapPaddingBottom)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
