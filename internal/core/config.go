package core

// RuntimeConfig contains per-run settings passed from the command line to a host.
type RuntimeConfig struct {
	ScreenW  int   // Initial surface width in host units (cells or pixels); 0 means detect
	ScreenH  int   // Initial surface height in host units; 0 means detect
	TickRate int   // Frames per second requested from the host
	Seed     int64 // RNG seed for pipe placement; 0 means use the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
	}
}

// TickInterval returns the frame period in seconds for the configured tick rate.
func (c RuntimeConfig) TickInterval() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}
