package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-tui/internal/flappy"
)

var (
	skyColor     = color.RGBA{R: 78, G: 192, B: 202, A: 255}
	overlayColor = color.RGBA{A: 160}
)

var kindColors = map[flappy.Kind]color.RGBA{
	flappy.KindGround:     {R: 222, G: 216, B: 149, A: 255},
	flappy.KindPipeTop:    {R: 84, G: 128, B: 36, A: 255},
	flappy.KindPipeBottom: {R: 84, G: 128, B: 36, A: 255},
	flappy.KindPlayer:     {R: 247, G: 200, B: 46, A: 255},
}

// Draw renders the scene: sky, then every drawable back to front, then text.
func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	scene := a.game.Scene()
	for _, item := range scene.Items {
		c, ok := kindColors[item.Kind]
		if !ok {
			continue
		}
		r := item.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
	}

	stats := a.game.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("round %d  ticks %d  pipes %d",
		stats.Round, stats.Ticks, stats.PipesSpawned), 8, 8)

	if scene.State == flappy.RoundGameOver {
		vector.DrawFilledRect(screen, 0, 0, float32(scene.Width), float32(scene.Height), overlayColor, false)
		x, y := int(scene.Width)/2-60, int(scene.Height)/2-16
		ebitenutil.DebugPrintAt(screen, "GAME OVER", x+28, y)
		ebitenutil.DebugPrintAt(screen, "click or space to retry", x-12, y+20)
	}
	if a.sizeErr != nil {
		ebitenutil.DebugPrintAt(screen, "window too small, keeping previous size", 8, 24)
	}

	a.frames++
}
