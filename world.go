package bounce

import (
	"math"
	"slices"
)

const (
	// DefaultMaxSubsteps caps collision substeps per ball per frame. The cap
	// is the safety valve against oscillating collision chains: when reached,
	// the ball simply loses its remaining simulated time this frame.
	DefaultMaxSubsteps = 10

	// boundaryDamping scales velocity after any screen-boundary reflection.
	boundaryDamping = 0.99

	// wrapMargin is how far a kinetic obstacle may leave the bounds before it
	// re-enters from the opposite edge, wrapInset inside the margin.
	wrapMargin = 50.0
	wrapInset  = 40.0

	// depenetrationPush and contactNudge are fractions of the ball radius used
	// to separate a ball from a surface it overlaps or has just bounced off.
	depenetrationPush = 0.1
	contactNudge      = 0.05
)

// World owns the obstacle and ball registries and steps the simulation.
//
// Registries are mutated only between frames: additions come from the owning
// loop before Step, removals happen in Step's final compaction pass. Collision
// queries iterate obstacles in registry order; exact time-of-impact ties go to
// whichever obstacle was added first.
type World struct {
	// Bounds is the region balls are confined to. Balls reflect off its
	// edges; kinetic obstacles wrap around it.
	Bounds Rect
	// MaxSubsteps caps collision substeps per ball per frame.
	// Zero or negative means DefaultMaxSubsteps.
	MaxSubsteps int
	// OnSpawn, if set, receives the parameters of every Spawn effect that
	// fires. The world never constructs balls itself; the owning loop decides
	// what to do with the request.
	OnSpawn func(SpawnParams)
	// OnDespawn, if set, is called for each ball as compaction removes it.
	// Presentation layers use this for removal bursts and similar feedback.
	OnDespawn func(*Ball)

	obstacles []Obstacle
	balls     []*Ball
}

// NewWorld creates an empty world confined to bounds.
func NewWorld(bounds Rect) *World {
	return &World{Bounds: bounds}
}

// AddObstacle registers an obstacle. Call between frames only.
func (w *World) AddObstacle(o Obstacle) {
	w.obstacles = append(w.obstacles, o)
}

// AddBall registers a ball. Call between frames only.
func (w *World) AddBall(b *Ball) {
	w.balls = append(w.balls, b)
}

// Obstacles returns the live obstacle registry in insertion order.
func (w *World) Obstacles() []Obstacle { return w.obstacles }

// Balls returns the live ball registry in insertion order.
func (w *World) Balls() []*Ball { return w.balls }

// NumBalls returns the number of registered balls.
func (w *World) NumBalls() int { return len(w.balls) }

// NumObstacles returns the number of registered obstacles.
func (w *World) NumObstacles() int { return len(w.obstacles) }

// RemoveBalls deletes every ball for which the predicate returns true,
// preserving registry order. Call between frames only.
func (w *World) RemoveBalls(pred func(*Ball) bool) {
	w.balls = slices.DeleteFunc(w.balls, pred)
}

// Step advances the simulation by dt seconds: obstacles move, each ball runs
// its substepped collision solve and reflects off the world bounds, the
// ball-to-ball pass resolves overlaps, and objects marked for deletion are
// compacted away.
//
// Obstacles advance once per frame, before the per-ball solves; within one
// frame's collision queries they are treated as fixed, with their velocity
// entering the sweep math as relative motion.
func (w *World) Step(dt float64) {
	for _, o := range w.obstacles {
		o.Update(dt)
		if !o.Static() {
			w.wrapObstacle(o)
		}
	}

	for _, b := range w.balls {
		w.stepBall(b, dt)
		w.reflectAtBounds(b)
	}

	w.collideBalls()
	w.compact()
}

// Render issues one draw call per obstacle, then per ball.
func (w *World) Render(r Renderer) {
	for _, o := range w.obstacles {
		o.Render(r)
	}
	for _, b := range w.balls {
		r.FillCircle(b.Position, b.Radius, b.Color)
	}
}

// stepBall runs the time-slicing collision solve for one ball and returns the
// number of substeps consumed.
func (w *World) stepBall(b *Ball, dt float64) int {
	// Depenetration pre-pass: push out of any obstacle we already overlap,
	// so stale contacts from last frame's effects don't stall the loop.
	for _, o := range w.obstacles {
		if h, ok := o.CheckCollision(b, Epsilon); ok && h.TOI < Epsilon {
			if h.Normal.LengthSq() > Epsilon {
				b.Position = b.Position.Add(h.Normal.Scale(b.Radius * depenetrationPush))
			}
		}
	}

	maxSubsteps := w.MaxSubsteps
	if maxSubsteps <= 0 {
		maxSubsteps = DefaultMaxSubsteps
	}

	remaining := dt
	substeps := 0
	for remaining > Epsilon && substeps < maxSubsteps {
		// Earliest collision across all obstacles, or the full remaining time.
		toi := remaining
		var hitObstacle Obstacle
		var normal Vec2
		for _, o := range w.obstacles {
			if h, ok := o.CheckCollision(b, remaining); ok {
				if h.TOI >= -Epsilon && h.TOI < toi {
					toi = h.TOI
					hitObstacle = o
					normal = h.Normal
				}
			}
		}
		toi = math.Max(0, toi)

		b.Position = b.Position.Add(b.Velocity.Scale(toi))
		remaining -= toi

		if hitObstacle != nil {
			if normal.LengthSq() > Epsilon {
				b.Velocity = b.Velocity.Reflect(normal).Scale(b.Restitution)
				// Nudge off the surface to avoid an immediate re-trigger.
				b.Position = b.Position.Add(normal.Scale(b.Radius * contactNudge))
			} else {
				// Degenerate normal: push away from the obstacle center and
				// reflect about that direction instead.
				push := b.Position.Sub(hitObstacle.Position()).Normalize()
				if push.LengthSq() > Epsilon {
					b.Position = b.Position.Add(push.Scale(b.Radius * depenetrationPush))
					b.Velocity = b.Velocity.Reflect(push).Scale(b.Restitution)
				}
			}
			ApplyEffects(b, hitObstacle, false, w.OnSpawn)
		}

		substeps++
	}
	return substeps
}

// collideBalls resolves every overlapping pair of interacting balls with
// mass-weighted separation and an elastic impulse along the contact normal.
// The pass is discrete (same-frame positions only); at very high relative
// speed two balls can pass through each other within one frame.
func (w *World) collideBalls() {
	for i := 0; i < len(w.balls); i++ {
		b1 := w.balls[i]
		if !b1.InteractsWithOthers {
			continue
		}
		for j := i + 1; j < len(w.balls); j++ {
			b2 := w.balls[j]
			if !b2.InteractsWithOthers {
				continue
			}

			dist := b1.Position.Distance(b2.Position)
			minDist := b1.Radius + b2.Radius
			if dist >= minDist {
				continue
			}

			normal := b2.Position.Sub(b1.Position).Normalize()
			if normal.LengthSq() < Epsilon {
				// Coincident centers; any axis works.
				normal = defaultNormal
			}

			// Separate proportionally to the other ball's mass, so the
			// heavier ball moves less.
			overlap := minDist - dist
			total := b1.Mass + b2.Mass
			b1.Position = b1.Position.Sub(normal.Scale(overlap * b2.Mass / total))
			b2.Position = b2.Position.Add(normal.Scale(overlap * b1.Mass / total))

			relVel := b1.Velocity.Sub(b2.Velocity)
			impulse := (-(1 + b1.Restitution*b2.Restitution) * relVel.Dot(normal)) /
				(1/b1.Mass + 1/b2.Mass)
			b1.Velocity = b1.Velocity.Add(normal.Scale(impulse / b1.Mass))
			b2.Velocity = b2.Velocity.Sub(normal.Scale(impulse / b2.Mass))
		}
	}
}

// reflectAtBounds clamps the ball just inside the world bounds and inverts any
// velocity component still pointing outward, damping velocity slightly when a
// reflection occurred.
func (w *World) reflectAtBounds(b *Ball) {
	reflected := false

	if b.Position.X-b.Radius < w.Bounds.X {
		b.Position.X = w.Bounds.X + b.Radius + Epsilon
		if b.Velocity.X < 0 {
			b.Velocity.X = -b.Velocity.X
		}
		reflected = true
	} else if b.Position.X+b.Radius > w.Bounds.X+w.Bounds.Width {
		b.Position.X = w.Bounds.X + w.Bounds.Width - b.Radius - Epsilon
		if b.Velocity.X > 0 {
			b.Velocity.X = -b.Velocity.X
		}
		reflected = true
	}

	if b.Position.Y-b.Radius < w.Bounds.Y {
		b.Position.Y = w.Bounds.Y + b.Radius + Epsilon
		if b.Velocity.Y < 0 {
			b.Velocity.Y = -b.Velocity.Y
		}
		reflected = true
	} else if b.Position.Y+b.Radius > w.Bounds.Y+w.Bounds.Height {
		b.Position.Y = w.Bounds.Y + w.Bounds.Height - b.Radius - Epsilon
		if b.Velocity.Y > 0 {
			b.Velocity.Y = -b.Velocity.Y
		}
		reflected = true
	}

	if reflected {
		b.Velocity = b.Velocity.Scale(boundaryDamping)
	}
}

// wrapObstacle re-enters a kinetic obstacle from the opposite edge once it
// drifts past the bounds by wrapMargin.
func (w *World) wrapObstacle(o Obstacle) {
	p := o.Position()
	switch {
	case p.X < w.Bounds.X-wrapMargin:
		p.X = w.Bounds.X + w.Bounds.Width + wrapInset
	case p.X > w.Bounds.X+w.Bounds.Width+wrapMargin:
		p.X = w.Bounds.X - wrapInset
	}
	switch {
	case p.Y < w.Bounds.Y-wrapMargin:
		p.Y = w.Bounds.Y + w.Bounds.Height + wrapInset
	case p.Y > w.Bounds.Y+w.Bounds.Height+wrapMargin:
		p.Y = w.Bounds.Y - wrapInset
	}
	o.SetPosition(p)
}

// compact removes balls and obstacles marked for deletion, preserving order.
func (w *World) compact() {
	if w.OnDespawn != nil {
		for _, b := range w.balls {
			if b.Marked() {
				w.OnDespawn(b)
			}
		}
	}
	w.balls = slices.DeleteFunc(w.balls, (*Ball).Marked)
	w.obstacles = slices.DeleteFunc(w.obstacles, Obstacle.Marked)
}
