package ids

import (
	"fmt"
	"math"

	"github.com/npillmayer/cjkids/layout"
)

// Component is a leaf of a parsed IDS, placed within the character cell.
type Component struct {
	Rune     rune        // code-point of the component, possibly a placeholder
	Rect     layout.Rect // absolute position within the cell
	Fraction float32     // portion of the IDS consumed up to this component
}

func (c Component) String() string {
	return fmt.Sprintf("%c%s", c.Rune, c.Rect)
}

// Color returns a display color in #rrggbb format, running from green
// through blue to red as Fraction goes from 0 to 1.
func (c Component) Color() string {
	f := float64(c.Fraction) * 3
	var r, g, b float64
	switch {
	case f <= 1:
		r, g = f, 1-f
	case f <= 2:
		g, b = f-1, 2-f
	default:
		b, r = f-2, 3-f
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

func channel(v float64) int {
	c := int(math.Round(v * 0xFF))
	if c < 0 {
		return 0
	} else if c > 0xFF {
		return 0xFF
	}
	return c
}

// Runes returns the code-points of a list of components.
func Runes(components []Component) []rune {
	runes := make([]rune, len(components))
	for i, c := range components {
		runes[i] = c.Rune
	}
	return runes
}
