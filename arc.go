package bounce

import "math"

const deg2rad = math.Pi / 180

// ArcConfig configures an Arc obstacle.
type ArcConfig struct {
	// Radius is the ring's centerline radius; the physical ring spans
	// Radius-Thickness/2 to Radius+Thickness/2.
	Radius float64
	// Thickness is the radial width of the ring.
	Thickness float64
	// StartAngle and EndAngle bound the arc span in degrees. Zero degrees
	// points along +X; angles grow clockwise on screen (Y down). The span may
	// wrap past 360.
	StartAngle float64
	EndAngle   float64
	Color      Color
	Static     bool
	// RotationSpeed spins the arc in degrees per second. Rotation accumulates
	// even on static arcs.
	RotationSpeed float64
	// RemoveEscapedBalls marks any ball that exits through the gap for
	// deletion at the next compaction pass.
	RemoveEscapedBalls bool
}

// Arc is a partial ring obstacle with open ends. Besides physical collision
// it performs a secondary detection: balls leaving the ring's full disk
// through the angular gap fire escape observers.
type Arc struct {
	obstacleBase
	radius        float64
	thickness     float64
	startAngle    float64
	endAngle      float64
	rotation      float64
	rotationSpeed float64
	removeEscaped bool

	onCollision []func(*Arc, *Ball)
	onEscape    []func(*Arc, *Ball)
}

// NewArc creates an arc obstacle. Static obstacles ignore the given velocity.
func NewArc(pos, vel Vec2, cfg ArcConfig) *Arc {
	return &Arc{
		obstacleBase:  newObstacleBase(pos, vel, cfg.Color, cfg.Static),
		radius:        cfg.Radius,
		thickness:     cfg.Thickness,
		startAngle:    cfg.StartAngle,
		endAngle:      cfg.EndAngle,
		rotationSpeed: cfg.RotationSpeed,
		removeEscaped: cfg.RemoveEscapedBalls,
	}
}

// Kind returns ShapeArc.
func (a *Arc) Kind() ShapeKind { return ShapeArc }

// InnerRadius returns the ring's inner boundary radius.
func (a *Arc) InnerRadius() float64 { return a.radius - a.thickness/2 }

// OuterRadius returns the ring's outer boundary radius.
func (a *Arc) OuterRadius() float64 { return a.radius + a.thickness/2 }

// Rotation returns the accumulated rotation in degrees, normalized to [0, 360).
func (a *Arc) Rotation() float64 { return a.rotation }

// OnCollision registers an observer called whenever a ball's sweep hits the
// arc. Observers are a notification side channel, distinct from the obstacle's
// collision effect list.
func (a *Arc) OnCollision(fn func(*Arc, *Ball)) {
	a.onCollision = append(a.onCollision, fn)
}

// OnEscape registers an observer called when a ball exits the ring's disk
// through the angular gap.
func (a *Arc) OnEscape(fn func(*Arc, *Ball)) {
	a.onEscape = append(a.onEscape, fn)
}

// Update spins the arc and, for kinetic arcs, advances its position.
func (a *Arc) Update(dt float64) {
	a.rotation = normDeg(a.rotation + a.rotationSpeed*dt)
	a.obstacleBase.Update(dt)
}

// CheckCollision sweeps the ball against the ring's outer and inner boundaries
// (gated to the arc's angular span), its four rim endpoints, and the two
// radial cap segments closing its open ends. Escape detection runs as a side
// effect whenever the arc has escape observers or removes escaped balls.
func (a *Arc) CheckCollision(b *Ball, budget float64) (Hit, bool) {
	relVel := b.Velocity.Sub(a.vel)
	relPos := b.Position.Sub(a.pos)
	inner, outer := a.InnerRadius(), a.OuterRadius()

	best := Hit{TOI: budget + Epsilon}
	found := false

	// Outer boundary: swept circle against circle with combined radius.
	combined := b.Radius + outer
	if relVel.LengthSq() < Epsilon {
		// Stationary relative motion: immediate contact if overlapping.
		if relPos.Dot(relPos)-combined*combined <= 0 {
			n := relPos.Normalize()
			if n.LengthSq() < Epsilon {
				n = relVel.Negate().Normalize()
				if n.LengthSq() < Epsilon {
					n = Vec2{1, 0}
				}
			}
			best = Hit{TOI: 0, Normal: n}
			found = true
		}
	} else if t, ok := sweepCircleBoundary(relPos, relVel, combined, budget); ok && t < best.TOI {
		at := b.Position.Add(relVel.Scale(t))
		if a.withinAngles(at) {
			best = Hit{TOI: t, Normal: at.Sub(a.pos).Normalize()}
			found = true
		}
	}

	// Inner boundary: only meaningful while the ball fits inside the ring.
	if inner > Epsilon {
		if fit := inner - b.Radius; fit > Epsilon {
			if t, ok := sweepCircleBoundary(relPos, relVel, fit, budget); ok && t < best.TOI {
				at := b.Position.Add(relVel.Scale(t))
				if a.withinAngles(at) {
					// Normal points inward, back toward the center.
					best = Hit{TOI: t, Normal: a.pos.Sub(at).Normalize()}
					found = true
				}
			}
		}
	}

	// Open ends: rim endpoint vertices plus the radial cap segments.
	if a.endAngle-a.startAngle < 360 {
		startRad := (a.startAngle + a.rotation) * deg2rad
		endRad := (a.endAngle + a.rotation) * deg2rad
		startDir := Vec2{math.Cos(startRad), math.Sin(startRad)}
		endDir := Vec2{math.Cos(endRad), math.Sin(endRad)}

		outerStart := a.pos.Add(startDir.Scale(outer))
		outerEnd := a.pos.Add(endDir.Scale(outer))

		for _, p := range []Vec2{outerStart, outerEnd} {
			if h, ok := SweepPoint(p, b.Position, relVel, b.Radius, budget); ok && h.TOI < best.TOI {
				best = h
				found = true
			}
		}

		if inner > Epsilon {
			innerStart := a.pos.Add(startDir.Scale(inner))
			innerEnd := a.pos.Add(endDir.Scale(inner))

			for _, p := range []Vec2{innerStart, innerEnd} {
				if h, ok := SweepPoint(p, b.Position, relVel, b.Radius, budget); ok && h.TOI < best.TOI {
					best = h
					found = true
				}
			}
			caps := [][2]Vec2{{innerStart, outerStart}, {innerEnd, outerEnd}}
			if h, ok := sweepSegments(caps, b.Position, relVel, b.Radius, budget); ok && h.TOI < best.TOI {
				best = h
				found = true
			}
		}
	}

	a.detectEscape(b, budget)

	if !found {
		return Hit{}, false
	}
	for _, fn := range a.onCollision {
		fn(a, b)
	}
	return best, true
}

// detectEscape fires escape observers when the ball crosses from inside the
// ring's full disk to outside through the angular gap during this step. It
// runs regardless of whether a physical collision was found.
func (a *Arc) detectEscape(b *Ball, budget float64) {
	if len(a.onEscape) == 0 && !a.removeEscaped {
		return
	}
	outer := a.OuterRadius()
	insideNow := b.Position.Distance(a.pos) <= outer
	after := b.Position.Add(b.Velocity.Scale(budget))
	insideAfter := after.Distance(a.pos) <= outer
	if !insideNow || insideAfter {
		return
	}
	// Project the ball radially onto the outer boundary to find the exit
	// point, then check it falls in the gap rather than on the arc body.
	dir := b.Position.Sub(a.pos).Normalize()
	if dir.LengthSq() < Epsilon {
		return
	}
	exit := a.pos.Add(dir.Scale(outer))
	if a.withinAngles(exit) {
		return
	}
	for _, fn := range a.onEscape {
		fn(a, b)
	}
	if a.removeEscaped {
		b.MarkForDeletion()
	}
}

// withinAngles reports whether the point's angle about the arc center lies in
// the arc's current span, after applying rotation. Handles spans that wrap
// across the 0-degree boundary.
func (a *Arc) withinAngles(p Vec2) bool {
	if a.endAngle-a.startAngle >= 360 {
		return true
	}
	angle := p.Sub(a.pos).AngleDeg()
	start := normDeg(a.startAngle + a.rotation)
	end := normDeg(a.endAngle + a.rotation)
	if start <= end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}

// Render draws the ring section at its current rotation.
func (a *Arc) Render(rd Renderer) {
	rd.FillRing(a.pos, a.InnerRadius(), a.OuterRadius(),
		a.startAngle+a.rotation, a.endAngle+a.rotation, a.color)
}

// normDeg wraps an angle in degrees to [0, 360).
func normDeg(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
