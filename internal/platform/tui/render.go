package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/flappy"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// cellStyle is how one kind of drawable looks in the terminal.
type cellStyle struct {
	fill  rune
	color core.Color
}

var kindStyles = map[flappy.Kind]cellStyle{
	flappy.KindGround:     {fill: '▒', color: core.ColorOrange},
	flappy.KindPipeTop:    {fill: '█', color: core.ColorGreen},
	flappy.KindPipeBottom: {fill: '█', color: core.ColorGreen},
	flappy.KindPlayer:     {fill: '█', color: core.ColorBrightYellow},
}

var noticeStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(1, 2)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Viewport maps world units onto terminal cells.
type Viewport struct {
	CellW float64 // World units per column
	CellH float64 // World units per row
}

// WorldSize returns the world dimensions covered by cols x rows cells.
func (v Viewport) WorldSize(cols, rows int) (w, h float64) {
	return float64(cols) * v.CellW, float64(rows) * v.CellH
}

// ToCells converts a world rectangle to the smallest cell rectangle covering it,
// clipped to the screen.
func (v Viewport) ToCells(r core.FRect, cols, rows int) core.Rect {
	x0 := int(math.Floor(r.X / v.CellW))
	y0 := int(math.Floor(r.Y / v.CellH))
	x1 := int(math.Ceil(r.Right() / v.CellW))
	y1 := int(math.Ceil(r.Bottom() / v.CellH))

	x0, x1 = core.Clamp(x0, 0, cols), core.Clamp(x1, 0, cols)
	y0, y1 = core.Clamp(y0, 0, rows), core.Clamp(y1, 0, rows)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawScene rasterizes a scene into dst. The screen is cleared first.
func DrawScene(dst *core.Screen, scene flappy.Scene, v Viewport) {
	dst.Clear()
	for _, item := range scene.Items {
		style, ok := kindStyles[item.Kind]
		if !ok {
			continue
		}
		dst.FillRect(v.ToCells(item.Rect, dst.Width(), dst.Height()), style.fill, style.color)
	}
}

// drawGameOver draws the round-over box in the middle of the screen.
func drawGameOver(dst *core.Screen, stats flappy.Stats) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("round %d  ticks %d", stats.Round, stats.Ticks),
		"press space to play again",
	}
	drawTextBox(dst, lines, core.ColorRed)
}

// drawHelp draws every binding of the key map in a box.
func drawHelp(dst *core.Screen, km KeyMap) {
	lines := []string{"Controls", ""}
	for _, column := range km.FullHelp() {
		for _, b := range column {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("%-8s %s", h.Key, h.Desc))
		}
	}
	drawTextBox(dst, lines, core.ColorYellow)
}

// drawTextBox draws centered lines inside a cleared, outlined box.
// The first line is the title.
func drawTextBox(dst *core.Screen, lines []string, title core.Color) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}
	w, h := inner+4, len(lines)+2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (w-len([]rune(l)))/2
		c := core.ColorDefault
		if i == 0 {
			c = title
		}
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

// statusLine renders the bottom line: round counters on the left, short help on the right.
func statusLine(stats flappy.Stats, helpView string, width int) string {
	left := fmt.Sprintf(" round %d  ticks %d  pipes %d", stats.Round, stats.Ticks, stats.PipesSpawned)
	gap := width - lipgloss.Width(left) - lipgloss.Width(helpView) - 1
	if gap < 1 {
		return statusStyle.Render(left)
	}
	return statusStyle.Render(left) + strings.Repeat(" ", gap) + helpView
}

// renderNotice renders a centered message for when there is no playfield to show.
func renderNotice(width, height int, msg string, quit key.Binding) string {
	body := msg + "\n\n" + statusStyle.Render(quit.Help().Key+" "+quit.Help().Desc)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, noticeStyle.Render(body))
}
