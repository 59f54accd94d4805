package core

// Color represents a foreground color for a screen cell.
// Hosts map it to a terminal style or an RGBA value.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightYellow
	ColorOrange
)
