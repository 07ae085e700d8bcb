package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette for text drawn over the shaded map.
const (
	ColorDefault      Color = iota
	ColorRed                // Warnings in the HUD
	ColorWhite              // Overlay text
	ColorBrightYellow       // Player
	ColorGray               // HUD and status labels
)

// Cell is a single screen position: the rune drawn there and how it is tinted.
// A shaded cell ignores Color and is drawn with the gray level Shade
// (0 = black, 255 = white).
type Cell struct {
	Rune   rune
	Color  Color
	Shade  uint8
	Shaded bool
}

// blankCell is the value every cell holds after Clear.
var blankCell = Cell{Rune: ' '}
