package flappy

// Entity is the controlled bird. Its horizontal position is fixed by configuration;
// only vertical motion is simulated.
type Entity struct {
	Y  float64 // Top of the hitbox, screen units
	VY float64 // Vertical velocity, units/sec (negative = up)
}

// Integrate advances the entity by dt seconds under gravity.
// Velocity is updated before position (semi-implicit Euler).
func Integrate(e *Entity, dt, gravity float64) {
	e.VY += gravity * dt
	e.Y += e.VY * dt
}

// Impulse replaces the entity's velocity. It does not add to it.
func Impulse(e *Entity, velocity float64) {
	e.VY = velocity
}
