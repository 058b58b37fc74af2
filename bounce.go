package bounce

// Epsilon is the numeric tolerance used throughout the collision kernel.
// Distances, squared lengths, and times of impact within Epsilon of a
// boundary are treated as touching it.
const Epsilon = 1e-4

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default object color.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ShapeKind identifies an obstacle's geometry.
type ShapeKind uint8

const (
	ShapeRectangle ShapeKind = iota // axis-aligned rectangle
	ShapeDiamond                    // rotated square connecting top/right/bottom/left vertices
	ShapeArc                        // partial ring with open ends
)

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
