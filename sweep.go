package bounce

import "math"

// Hit is the result of a successful sweep: the time of impact within the
// queried budget, and the surface normal at the contact point. The normal is
// unit length and points from the surface toward the ball center.
type Hit struct {
	TOI    float64
	Normal Vec2
}

// defaultNormal is the last-resort contact normal when both the contact
// geometry and the velocity are degenerate.
var defaultNormal = Vec2{0, -1}

// SweepPoint finds the earliest time within budget at which a circle of the
// given radius, starting at ballPos and moving at constant ballVel, touches
// point. It solves |ballPos + ballVel*t - point|^2 = radius^2 for the smallest
// valid root.
//
// When the velocity is near zero the sweep degenerates to an overlap test:
// a circle already touching the point and not moving away reports an
// immediate hit (TOI 0).
func SweepPoint(point, ballPos, ballVel Vec2, radius, budget float64) (Hit, bool) {
	relPos := ballPos.Sub(point)

	a := ballVel.Dot(ballVel)
	b := 2 * relPos.Dot(ballVel)
	c := relPos.Dot(relPos) - radius*radius

	if math.Abs(a) < Epsilon {
		// Stationary ball: immediate contact if overlapping and not
		// separating.
		if c <= 0 && (b < 0 || math.Abs(b) < Epsilon) {
			return Hit{TOI: 0, Normal: contactNormal(relPos, ballVel)}, true
		}
		return Hit{}, false
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return Hit{}, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	t := -1.0
	if t1 >= -Epsilon && t1 <= budget+Epsilon {
		t = t1
	}
	if t2 >= -Epsilon && t2 <= budget+Epsilon && (t < -Epsilon || t2 < t) {
		t = t2
	}
	if t < -Epsilon {
		return Hit{}, false
	}
	t = math.Max(0, t)

	at := ballPos.Add(ballVel.Scale(t))
	n := at.Sub(point).Normalize()
	if n.LengthSq() < Epsilon {
		n = contactNormal(relPos, ballVel)
	}
	return Hit{TOI: t, Normal: n}, true
}

// SweepSegment finds the earliest time within budget at which a moving circle
// touches the segment p1-p2. Endpoint hits (corners) and face hits against the
// segment's interior are both considered; the minimum valid time wins.
func SweepSegment(p1, p2, ballPos, ballVel Vec2, radius, budget float64) (Hit, bool) {
	best := Hit{TOI: budget + Epsilon}
	found := false

	// Endpoints first: these cover corner contacts and any face contact whose
	// closest point falls off the segment.
	if h, ok := SweepPoint(p1, ballPos, ballVel, radius, budget); ok && h.TOI < best.TOI {
		best = h
		found = true
	}
	if h, ok := SweepPoint(p2, ballPos, ballVel, radius, budget); ok && h.TOI < best.TOI {
		best = h
		found = true
	}

	seg := p2.Sub(p1)
	segLenSq := seg.LengthSq()
	if segLenSq < Epsilon {
		// Degenerate segment, fully handled by the endpoint checks.
		return best, found
	}

	segDir := seg.Normalize()
	perp := segDir.Perp()

	relPos := ballPos.Sub(p1)
	distToLine := relPos.Dot(perp)
	velTowardLine := ballVel.Dot(perp)

	if math.Abs(velTowardLine) < Epsilon {
		// Moving parallel to the line: only endpoint results apply.
		return best, found
	}

	// Times at which the circle boundary crosses the line at +/- radius.
	tA := (radius - distToLine) / velTowardLine
	tB := (-radius - distToLine) / velTowardLine

	t := -1.0
	if tA >= -Epsilon && tA <= budget+Epsilon {
		t = tA
	}
	if tB >= -Epsilon && tB <= budget+Epsilon && (t < -Epsilon || tB < t) {
		t = tB
	}

	if t >= -Epsilon && t < best.TOI {
		centerAt := ballPos.Add(ballVel.Scale(t))
		onLine := centerAt.Sub(perp.Scale(centerAt.Sub(p1).Dot(perp)))
		proj := onLine.Sub(p1).Dot(segDir)
		if proj >= -Epsilon && proj <= math.Sqrt(segLenSq)+Epsilon {
			n := centerAt.Sub(onLine).Normalize()
			if n.LengthSq() < Epsilon {
				if distToLine > 0 {
					n = perp
				} else {
					n = perp.Negate()
				}
			}
			best = Hit{TOI: t, Normal: n}
			found = true
		}
	}

	if found {
		best.TOI = math.Max(0, best.TOI)
		if best.Normal.LengthSq() < Epsilon {
			best.Normal = contactNormal(Vec2{}, ballVel)
		}
	}
	return best, found
}

// sweepCircleBoundary solves for the earliest time within budget at which the
// relative position relPos, moving at relVel, reaches distance |combined| from
// the origin. Shared by the arc collider's outer and inner ring checks. The
// caller derives the contact normal; only the root is returned here.
func sweepCircleBoundary(relPos, relVel Vec2, combined, budget float64) (float64, bool) {
	a := relVel.Dot(relVel)
	if math.Abs(a) < Epsilon {
		return 0, false
	}
	b := 2 * relPos.Dot(relVel)
	c := relPos.Dot(relPos) - combined*combined

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	t := -1.0
	if t1 >= -Epsilon && t1 <= budget+Epsilon {
		t = t1
	}
	if t2 >= -Epsilon && t2 <= budget+Epsilon && t < -Epsilon {
		t = t2
	}
	if t < -Epsilon {
		return 0, false
	}
	return math.Max(0, t), true
}

// contactNormal derives a usable normal when contact geometry degenerates:
// the separation direction if there is one, the reversed velocity otherwise,
// and a fixed default when both are zero.
func contactNormal(separation, vel Vec2) Vec2 {
	n := separation.Normalize()
	if n.LengthSq() >= Epsilon {
		return n
	}
	n = vel.Negate().Normalize()
	if n.LengthSq() >= Epsilon {
		return n
	}
	return defaultNormal
}
