package core

import "strings"

// Color is a terminal-agnostic palette entry. Frontends map it to lipgloss or
// tcell colours.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorBrown
	ColorOrange
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"black":   ColorBlack,
	"white":   ColorWhite,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"gray":    ColorGray,
	"grey":    ColorGray,
	"brown":   ColorBrown,
	"orange":  ColorOrange,
}

// ParseColor converts a colour name (case-insensitive) to a Color.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// String returns the lower-case colour name.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c && name != "grey" {
			return name
		}
	}
	return "unknown"
}
