package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// Values describe a half-resolution phone layout: a 585x1266 window, 2000 units/s² gravity.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:          2000,
			ImpulseVelocity:  -1000,
			ObstacleVelocity: -400,
		},
		Obstacles: FlappyObstacles{
			Width:            156,
			GapHeight:        400,
			GapPaddingTop:    100,
			GapPaddingBottom: 100,
			Spacing:          500,
			Capacity:         10,
		},
		Player: FlappyPlayer{
			X:        100,
			Width:    17 * 6,
			Height:   12 * 6,
			InitialY: 100,
		},
		Collision: FlappyCollision{
			CeilingLethal: false,
		},
		Host: HostConfig{
			MaxDT: 0.25,
		},
		Terminal: TerminalConfig{
			CellWidth:  16,
			CellHeight: 32,
		},
		Window: WindowConfig{
			Width:  585,
			Height: 1266,
			Title:  "Flappy Bird",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
