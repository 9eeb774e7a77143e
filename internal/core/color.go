package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
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

// ParseColor maps a color name to a Color. Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "orange":
		return ColorOrange
	case "gray", "grey":
		return ColorGray
	default:
		return ColorDefault
	}
}
