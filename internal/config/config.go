// Package config provides YAML/TOML-based configuration loading and validation
// for the game and its hosts.
package config

// FlappyConfig contains all configuration for the game and its hosts.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics" toml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles" toml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player" toml:"player"`
	Collision FlappyCollision `yaml:"collision" toml:"collision"`
	Host      HostConfig      `yaml:"host" toml:"host"`
	Terminal  TerminalConfig  `yaml:"terminal" toml:"terminal"`
	Window    WindowConfig    `yaml:"window" toml:"window"`
}

// FlappyPhysics defines physics parameters. Units are screen units and seconds.
type FlappyPhysics struct {
	Gravity          float64 `yaml:"gravity" toml:"gravity"`                     // Downward acceleration, units/s²
	ImpulseVelocity  float64 `yaml:"impulse_velocity" toml:"impulse_velocity"`   // Velocity set on flap (negative = up)
	ObstacleVelocity float64 `yaml:"obstacle_velocity" toml:"obstacle_velocity"` // Horizontal pipe velocity (negative = left)
}

// FlappyObstacles defines pipe geometry and spawning.
type FlappyObstacles struct {
	Width            float64 `yaml:"width" toml:"width"`
	GapHeight        float64 `yaml:"gap_height" toml:"gap_height"`
	GapPaddingTop    float64 `yaml:"gap_padding_top" toml:"gap_padding_top"`
	GapPaddingBottom float64 `yaml:"gap_padding_bottom" toml:"gap_padding_bottom"`
	Spacing          float64 `yaml:"spacing" toml:"spacing"`   // Distance the newest pipe travels before the next spawns
	Capacity         int     `yaml:"capacity" toml:"capacity"` // Maximum number of live pipes
}

// FlappyPlayer defines the controlled entity.
type FlappyPlayer struct {
	X        float64 `yaml:"x" toml:"x"`
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	InitialY float64 `yaml:"initial_y" toml:"initial_y"`
}

// FlappyCollision toggles optional collision zones.
type FlappyCollision struct {
	// CeilingLethal makes the zone above the screen end the round.
	CeilingLethal bool `yaml:"ceiling_lethal" toml:"ceiling_lethal"`
}

// HostConfig holds settings shared by every host.
type HostConfig struct {
	MaxDT float64 `yaml:"max_dt" toml:"max_dt"` // Upper bound for a single frame's elapsed seconds
}

// TerminalConfig maps terminal cells to world units.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}
