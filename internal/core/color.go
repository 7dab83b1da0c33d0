package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// tilePalette is the order in which tile colors are assigned.
var tilePalette = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

// TileColor returns the display color for tile color index n.
// Indexes beyond the palette wrap around.
func TileColor(n int) Color {
	if n < 0 {
		return ColorDefault
	}
	return tilePalette[n%len(tilePalette)]
}

// PaletteSize returns the number of distinct tile colors.
func PaletteSize() int {
	return len(tilePalette)
}
