package config

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		valid  bool
	}{
		{"defaults", func(*FlappyConfig) {}, true},
		{"positive obstacle velocity", func(c *FlappyConfig) { c.Physics.ObstacleVelocity = 10 }, false},
		{"zero capacity", func(c *FlappyConfig) { c.Obstacles.Capacity = 0 }, false},
		{"negative padding", func(c *FlappyConfig) { c.Obstacles.GapPaddingTop = -1 }, false},
		{"zero spacing", func(c *FlappyConfig) { c.Obstacles.Spacing = 0 }, false},
		{"zero player height", func(c *FlappyConfig) { c.Player.Height = 0 }, false},
		{"nan gravity", func(c *FlappyConfig) { c.Physics.Gravity = math.NaN() }, false},
		{"zero max dt", func(c *FlappyConfig) { c.Host.MaxDT = 0 }, false},
		{"zero padding allowed", func(c *FlappyConfig) { c.Obstacles.GapPaddingBottom = 0 }, true},
		{"negative gravity allowed", func(c *FlappyConfig) { c.Physics.Gravity = -10 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestGapRange(t *testing.T) {
	cfg := DefaultFlappyConfig()

	lo, n := cfg.GapRange(2283)
	if lo != 100 || n != 1683 {
		t.Errorf("GapRange(2283) = (%d, %d), expected (100, 1683)", lo, n)
	}

	// 1266 is the default window height
	lo, n = cfg.GapRange(1266)
	if lo != 100 || n != 666 {
		t.Errorf("GapRange(1266) = (%d, %d), expected (100, 666)", lo, n)
	}
}

func TestGapRangeFractionalPadding(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Obstacles.GapPaddingTop = 100.9
	cfg.Obstacles.GapPaddingBottom = 100.5

	// Top rounds up to 101; bottom bound 1266-400-100.5 = 765.5 rounds down to 765
	lo, n := cfg.GapRange(1266)
	if lo != 101 || n != 664 {
		t.Errorf("GapRange(1266) = (%d, %d), expected (101, 664)", lo, n)
	}
	if float64(lo) < cfg.Obstacles.GapPaddingTop {
		t.Errorf("lowest offset %d is above the top padding %g", lo, cfg.Obstacles.GapPaddingTop)
	}
	if hiMax := float64(lo + n - 1); hiMax >= 1266-cfg.Obstacles.GapHeight-cfg.Obstacles.GapPaddingBottom {
		t.Errorf("highest offset %g leaves less than the bottom padding", hiMax)
	}
}

func TestValidateScreen(t *testing.T) {
	cfg := DefaultFlappyConfig()

	if err := cfg.ValidateScreen(585, 1266); err != nil {
		t.Errorf("default window should be valid, got %v", err)
	}

	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 1266},
		{"negative height", 585, -1},
		{"gap does not fit", 585, 500},
		{"range exactly empty", 585, 600},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := cfg.ValidateScreen(tc.w, tc.h); !errors.Is(err, ErrInvalid) {
				t.Errorf("ValidateScreen(%g, %g) = %v, expected ErrInvalid", tc.w, tc.h, err)
			}
		})
	}

	// 601 leaves exactly one legal offset
	if err := cfg.ValidateScreen(585, 601); err != nil {
		t.Errorf("ValidateScreen(585, 601) = %v, expected nil", err)
	}
}
