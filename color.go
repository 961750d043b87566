package figure

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a free-form color label. Any string is accepted; the named
// constants are provided for convenience only.
type Color string

// Common color labels.
const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
)

func (c Color) String() string { return string(c) }

// RGBA resolves the label against the SVG 1.1 named colors.
// Lookup ignores case and surrounding space. ok is false for labels that
// are not color names; such labels are still valid figure colors.
func (c Color) RGBA() (rgba color.RGBA, ok bool) {
	rgba, ok = colornames.Map[strings.ToLower(strings.TrimSpace(string(c)))]
	return rgba, ok
}
