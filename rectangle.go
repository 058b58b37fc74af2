package bounce

// Rectangle is an axis-aligned rectangular obstacle centered on its position.
type Rectangle struct {
	obstacleBase
	width, height float64
}

// NewRectangle creates a rectangular obstacle. Static obstacles ignore the
// given velocity.
func NewRectangle(pos, vel Vec2, width, height float64, c Color, static bool) *Rectangle {
	return &Rectangle{
		obstacleBase: newObstacleBase(pos, vel, c, static),
		width:        width,
		height:       height,
	}
}

// Kind returns ShapeRectangle.
func (r *Rectangle) Kind() ShapeKind { return ShapeRectangle }

// Size returns the rectangle's width and height.
func (r *Rectangle) Size() (width, height float64) { return r.width, r.height }

// segments returns the four boundary segments, clockwise from the top edge.
func (r *Rectangle) segments() [][2]Vec2 {
	hw, hh := r.width/2, r.height/2
	p1 := Vec2{r.pos.X - hw, r.pos.Y - hh}
	p2 := Vec2{r.pos.X + hw, r.pos.Y - hh}
	p3 := Vec2{r.pos.X + hw, r.pos.Y + hh}
	p4 := Vec2{r.pos.X - hw, r.pos.Y + hh}
	return [][2]Vec2{{p1, p2}, {p2, p3}, {p3, p4}, {p4, p1}}
}

// CheckCollision sweeps the ball against the rectangle's four edges.
func (r *Rectangle) CheckCollision(b *Ball, budget float64) (Hit, bool) {
	relVel := b.Velocity.Sub(r.vel)
	return sweepSegments(r.segments(), b.Position, relVel, b.Radius, budget)
}

// Render draws the rectangle.
func (r *Rectangle) Render(rd Renderer) {
	rd.FillRect(r.pos, r.width, r.height, r.color)
}
