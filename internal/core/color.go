package core

// Color is a foreground color for a screen cell, stored as a "#rrggbb" hex string.
// The zero value means the terminal's default foreground.
type Color string

// Palette used by the HUD and overlays.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorGray    Color = "#94a3b8"
	ColorYellow  Color = "#facc15"
	ColorCyan    Color = "#00f2ff"
)
