package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform renderer.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorCyan          // crystals
	ColorRed           // spikes
	ColorYellow        // rings
	ColorMagenta       // runner
	ColorGreen
	ColorWhite
	ColorBrightWhite
	ColorGray // track lines, chrome
	ColorOrange
)
