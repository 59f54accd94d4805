package flappy

import "github.com/vovakirdan/flappy-tui/internal/core"

// Kind identifies what a drawable rectangle depicts.
type Kind int

const (
	KindGround Kind = iota
	KindPipeTop
	KindPipeBottom
	KindPlayer
)

// Drawable is a world-space rectangle tagged with what it depicts.
type Drawable struct {
	Kind Kind
	Rect core.FRect
}

// Scene is everything a host needs to draw one frame, in back-to-front order.
type Scene struct {
	Width  float64
	Height float64
	Items  []Drawable
	State  RoundState
}

// Scene maps the current state to drawable rectangles: ground first, then
// pipes (which overlap the ground), then the player on top.
func (g *Game) Scene() Scene {
	rects := g.ObstacleRects()
	items := make([]Drawable, 0, 2+2*len(rects))

	items = append(items, Drawable{Kind: KindGround, Rect: g.GroundZone()})
	for _, r := range rects {
		items = append(items,
			Drawable{Kind: KindPipeTop, Rect: r.Top},
			Drawable{Kind: KindPipeBottom, Rect: r.Bottom},
		)
	}
	items = append(items, Drawable{Kind: KindPlayer, Rect: g.EntityRect()})

	return Scene{
		Width:  g.screenW,
		Height: g.screenH,
		Items:  items,
		State:  g.state,
	}
}
