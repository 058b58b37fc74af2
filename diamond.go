package bounce

// Diamond is a rhombus obstacle: a rotated square whose vertices sit on the
// obstacle's horizontal and vertical axes.
type Diamond struct {
	obstacleBase
	halfWidth, halfHeight float64
}

// NewDiamond creates a diamond obstacle from its full diagonal widths. Static
// obstacles ignore the given velocity.
func NewDiamond(pos, vel Vec2, diagWidth, diagHeight float64, c Color, static bool) *Diamond {
	return &Diamond{
		obstacleBase: newObstacleBase(pos, vel, c, static),
		halfWidth:    diagWidth / 2,
		halfHeight:   diagHeight / 2,
	}
}

// Kind returns ShapeDiamond.
func (d *Diamond) Kind() ShapeKind { return ShapeDiamond }

// Vertices returns the diamond's corners in top, right, bottom, left order.
func (d *Diamond) Vertices() []Vec2 {
	return []Vec2{
		{d.pos.X, d.pos.Y - d.halfHeight},
		{d.pos.X + d.halfWidth, d.pos.Y},
		{d.pos.X, d.pos.Y + d.halfHeight},
		{d.pos.X - d.halfWidth, d.pos.Y},
	}
}

// segments returns the four edges connecting consecutive vertices.
func (d *Diamond) segments() [][2]Vec2 {
	v := d.Vertices()
	return [][2]Vec2{{v[0], v[1]}, {v[1], v[2]}, {v[2], v[3]}, {v[3], v[0]}}
}

// CheckCollision sweeps the ball against the diamond's four edges.
func (d *Diamond) CheckCollision(b *Ball, budget float64) (Hit, bool) {
	relVel := b.Velocity.Sub(d.vel)
	return sweepSegments(d.segments(), b.Position, relVel, b.Radius, budget)
}

// Render draws the diamond.
func (d *Diamond) Render(rd Renderer) {
	rd.FillPolygon(d.Vertices(), d.color)
}
