package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the maze renderer.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorIndigo
	ColorDeepIndigo
	ColorPurple
	ColorBrightPurple
	ColorEmerald
	ColorYellow
	ColorRed
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"white":         ColorWhite,
	"gray":          ColorGray,
	"indigo":        ColorIndigo,
	"deep-indigo":   ColorDeepIndigo,
	"purple":        ColorPurple,
	"bright-purple": ColorBrightPurple,
	"emerald":       ColorEmerald,
	"yellow":        ColorYellow,
	"red":           ColorRed,
}

// ColorByName looks up a palette color by its config name (e.g. "emerald").
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
