package bounce

import "slices"

// Ball is a moving circle: the only dynamic body the simulation steps.
type Ball struct {
	Position Vec2
	Velocity Vec2
	Radius   float64
	Color    Color
	// Mass affects ball-to-ball separation and impulse. Always positive.
	Mass float64
	// Restitution is the fraction of normal-velocity magnitude kept after a
	// bounce, in [0, 1].
	Restitution float64
	// InteractsWithOthers gates the ball-to-ball collision pass.
	InteractsWithOthers bool

	effects []Effect
	marked  bool
}

// NewBall creates a ball. A non-positive mass defaults to 1; restitution is
// clamped to [0, 1].
func NewBall(pos, vel Vec2, radius float64, c Color, mass, restitution float64, interacts bool) *Ball {
	if mass <= 0 {
		mass = 1
	}
	return &Ball{
		Position:            pos,
		Velocity:            vel,
		Radius:              radius,
		Color:               c,
		Mass:                mass,
		Restitution:         clamp(restitution, 0, 1),
		InteractsWithOthers: interacts,
	}
}

// AddEffect attaches a collision effect to the ball. Effects apply
// newest-first.
func (b *Ball) AddEffect(e Effect) {
	b.effects = slices.Insert(b.effects, 0, e)
}

// Effects returns the ball's effect list, newest-first. The returned slice is
// the live list; callers must not mutate it.
func (b *Ball) Effects() []Effect {
	return b.effects
}

// MarkForDeletion flags the ball for removal by the world's next compaction
// pass. The ball keeps simulating until then.
func (b *Ball) MarkForDeletion() {
	b.marked = true
}

// Marked reports whether the ball is flagged for removal.
func (b *Ball) Marked() bool {
	return b.marked
}
