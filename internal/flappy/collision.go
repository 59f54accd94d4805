package flappy

import "github.com/vovakirdan/flappy-tui/internal/core"

// ceilingHeight is the thickness of the zone above the screen.
const ceilingHeight = 100

// GroundZone returns the ground rectangle: the bottom eighth of the screen, full width.
func (g *Game) GroundZone() core.FRect {
	return core.NewFRect(0, g.screenH/8*7, g.screenW, g.screenH/8)
}

// CeilingZone returns the zone just above the visible screen.
// It only ends the round when collision.ceiling_lethal is set.
func (g *Game) CeilingZone() core.FRect {
	return core.NewFRect(0, -ceilingHeight, g.screenW, ceilingHeight)
}

// detectCollision reports whether the entity touches the ground, a pipe,
// or a lethal ceiling.
func (g *Game) detectCollision() bool {
	entity := g.EntityRect()

	if entity.Intersects(g.GroundZone()) {
		return true
	}
	if g.cfg.Collision.CeilingLethal && entity.Intersects(g.CeilingZone()) {
		return true
	}
	return g.pipes.CheckCollision(entity)
}
