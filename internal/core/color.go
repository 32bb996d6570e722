package core

// Color is a foreground color for a screen cell. The platform layer
// maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors, roughly ordered along the tile value ramp.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightMagenta
	ColorCyan
	ColorBrightCyan
	ColorGreen
	ColorBrightGreen
)
