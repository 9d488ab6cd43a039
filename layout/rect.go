package layout

import "fmt"

// Rect is a rectangle within the unit square, given by its upper left
// corner (X1,Y1) and its lower right corner (X2,Y2).
//
// Rects are values: they are never modified after creation, compare with ==
// and may be used as map keys.
type Rect struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Base is the full character cell.
var Base = Rect{0, 0, 1, 1}

// R is a shortcut to create a Rect.
func R(x1, y1, x2, y2 float64) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width of a rectangle.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height of a rectangle.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Compose maps inner, given relative to a unit cell, into the frame of r.
// See the package documentation for the blend formula.
func (r Rect) Compose(inner Rect) Rect {
	x := r.X1 + inner.X1 - r.X1*inner.X1
	y := r.Y1 + inner.Y1 - r.Y1*inner.Y1
	w := r.Width() * inner.Width()
	h := r.Height() * inner.Height()
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Contains is true if other lies within r (borders included).
// A tiny epsilon absorbs floating point noise of repeated composition.
func (r Rect) Contains(other Rect) bool {
	const eps = 1e-9
	return other.X1 >= r.X1-eps && other.Y1 >= r.Y1-eps &&
		other.X2 <= r.X2+eps && other.Y2 <= r.Y2+eps
}

// String renders a rectangle in truncated percent, like {0, 0; 50, 100}.
func (r Rect) String() string {
	return fmt.Sprintf("{%d, %d; %d, %d}", pct(r.X1), pct(r.Y1), pct(r.X2), pct(r.Y2))
}

func pct(f float64) int {
	return int(100 * f)
}
