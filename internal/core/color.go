package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorSand
)

var colorNames = map[string]Color{
	"default":      ColorDefault,
	"red":          ColorRed,
	"green":        ColorGreen,
	"yellow":       ColorYellow,
	"blue":         ColorBlue,
	"magenta":      ColorMagenta,
	"cyan":         ColorCyan,
	"white":        ColorWhite,
	"brightred":    ColorBrightRed,
	"brightgreen":  ColorBrightGreen,
	"brightyellow": ColorBrightYellow,
	"brightblue":   ColorBrightBlue,
	"brightcyan":   ColorBrightCyan,
	"orange":       ColorOrange,
	"gray":         ColorGray,
	"sand":         ColorSand,
}

// ParseColor looks up a color by its lowercase name as used in level files.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
