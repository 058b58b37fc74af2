package bounce

import "slices"

// Obstacle is a static or kinetic collider that balls bounce against. The
// shape set is closed: Rectangle, Diamond, and Arc implement it.
type Obstacle interface {
	// Kind reports the obstacle's geometry.
	Kind() ShapeKind
	// Position returns the obstacle's center.
	Position() Vec2
	// SetPosition moves the obstacle's center.
	SetPosition(p Vec2)
	// Velocity returns the obstacle's velocity. Zero for static obstacles.
	Velocity() Vec2
	// Static reports whether the obstacle ever moves.
	Static() bool
	// CheckCollision sweeps the ball against the obstacle's boundary over the
	// given time budget, in the obstacle's rest frame (relative velocity), so
	// kinetic obstacles reuse the static sweep math.
	CheckCollision(b *Ball, budget float64) (Hit, bool)
	// Update advances the obstacle's state by dt seconds.
	Update(dt float64)
	// Render issues the obstacle's draw call.
	Render(r Renderer)
	// Effects returns the collision effects applied to balls that hit this
	// obstacle, newest-first.
	Effects() []Effect
	// AddEffect attaches a collision effect.
	AddEffect(e Effect)
	// MarkForDeletion flags the obstacle for removal at the next compaction.
	MarkForDeletion()
	// Marked reports whether the obstacle is flagged for removal.
	Marked() bool
}

// obstacleBase carries the state and behavior shared by every obstacle kind.
type obstacleBase struct {
	pos     Vec2
	vel     Vec2
	static  bool
	color   Color
	effects []Effect
	marked  bool
}

func newObstacleBase(pos, vel Vec2, c Color, static bool) obstacleBase {
	if static {
		vel = Vec2{}
	}
	return obstacleBase{pos: pos, vel: vel, static: static, color: c}
}

func (o *obstacleBase) Position() Vec2     { return o.pos }
func (o *obstacleBase) SetPosition(p Vec2) { o.pos = p }
func (o *obstacleBase) Velocity() Vec2     { return o.vel }
func (o *obstacleBase) Static() bool       { return o.static }

func (o *obstacleBase) Update(dt float64) {
	if o.static {
		return
	}
	o.pos = o.pos.Add(o.vel.Scale(dt))
}

func (o *obstacleBase) AddEffect(e Effect) {
	o.effects = slices.Insert(o.effects, 0, e)
}

func (o *obstacleBase) Effects() []Effect { return o.effects }

func (o *obstacleBase) MarkForDeletion() { o.marked = true }
func (o *obstacleBase) Marked() bool     { return o.marked }

// sweepSegments sweeps the ball against each boundary segment and keeps the
// earliest hit. relVel is the ball's velocity in the obstacle's rest frame.
func sweepSegments(segs [][2]Vec2, ballPos, relVel Vec2, radius, budget float64) (Hit, bool) {
	best := Hit{TOI: budget + Epsilon}
	found := false
	for _, s := range segs {
		if h, ok := SweepSegment(s[0], s[1], ballPos, relVel, radius, budget); ok {
			if h.TOI >= -Epsilon && h.TOI < best.TOI {
				best = h
				found = true
			}
		}
	}
	return best, found
}
