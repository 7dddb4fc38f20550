package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to a terminal style; games only pick from this palette.
type Color uint8

// Palette. The first sixteen follow the ANSI color order.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// Roles of maze elements.
const (
	ColorPlayer = ColorBrightBlue
	ColorGoal   = ColorBrightGreen
	ColorEnemy  = ColorBrightRed
	ColorCoin   = ColorBrightYellow
	ColorWall   = ColorGray
	ColorFloor  = ColorGray
)
