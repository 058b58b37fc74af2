package bounce

import "testing"

// --- SweepPoint ---

func TestSweepPointHeadOn(t *testing.T) {
	// Ball of radius 5 at the origin moving +x at 100/s toward a point at
	// x=50: contact when the center reaches x=45.
	h, ok := SweepPoint(Vec2{50, 0}, Vec2{0, 0}, Vec2{100, 0}, 5, 1)
	if !ok {
		t.Fatal("expected a hit")
	}
	assertNear(t, "TOI", h.TOI, 0.45)
	assertVec(t, "Normal", h.Normal, Vec2{-1, 0})
}

func TestSweepPointMisses(t *testing.T) {
	tests := []struct {
		name            string
		point, pos, vel Vec2
		radius, budget  float64
	}{
		{"moving away", Vec2{50, 0}, Vec2{0, 0}, Vec2{-100, 0}, 5, 1},
		{"beyond budget", Vec2{500, 0}, Vec2{0, 0}, Vec2{100, 0}, 5, 1},
		{"passes wide", Vec2{50, 30}, Vec2{0, 0}, Vec2{100, 0}, 5, 1},
		{"stationary apart", Vec2{50, 0}, Vec2{0, 0}, Vec2{0, 0}, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := SweepPoint(tt.point, tt.pos, tt.vel, tt.radius, tt.budget); ok {
				t.Error("expected no hit")
			}
		})
	}
}

func TestSweepPointStationaryOverlap(t *testing.T) {
	// A non-moving ball already overlapping the point reports an immediate
	// hit with a normal pointing from the point toward the ball center.
	h, ok := SweepPoint(Vec2{3, 0}, Vec2{0, 0}, Vec2{0, 0}, 5, 1)
	if !ok {
		t.Fatal("expected a hit")
	}
	assertNear(t, "TOI", h.TOI, 0)
	assertVec(t, "Normal", h.Normal, Vec2{-1, 0})
}

// The contact invariant: at the reported TOI the ball center is exactly one
// radius from the point, and the TOI lies within the budget.
func TestSweepPointContactInvariant(t *testing.T) {
	tests := []struct {
		name            string
		point, pos, vel Vec2
		radius, budget  float64
	}{
		{"head-on", Vec2{50, 0}, Vec2{0, 0}, Vec2{100, 0}, 5, 1},
		{"diagonal", Vec2{40, 40}, Vec2{0, 0}, Vec2{80, 80}, 8, 1},
		{"glancing", Vec2{50, 4}, Vec2{0, 0}, Vec2{100, 0}, 5, 1},
		{"slow, tight budget", Vec2{6, 0}, Vec2{0, 0}, Vec2{10, 0}, 5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := SweepPoint(tt.point, tt.pos, tt.vel, tt.radius, tt.budget)
			if !ok {
				t.Fatal("expected a hit")
			}
			if h.TOI < 0 || h.TOI > tt.budget+Epsilon {
				t.Errorf("TOI %v outside [0, %v]", h.TOI, tt.budget)
			}
			at := tt.pos.Add(tt.vel.Scale(h.TOI))
			assertNear(t, "contact distance", at.Distance(tt.point), tt.radius)
			assertNear(t, "normal length", h.Normal.Length(), 1)
		})
	}
}

// A ball starting in contact and moving inward must report TOI 0, not the
// exit root on the far side.
func TestSweepPointAlreadyTouching(t *testing.T) {
	h, ok := SweepPoint(Vec2{5, 0}, Vec2{0, 0}, Vec2{100, 0}, 5, 1)
	if !ok {
		t.Fatal("expected a hit")
	}
	assertNear(t, "TOI", h.TOI, 0)
}

// --- SweepSegment ---

func TestSweepSegmentWall(t *testing.T) {
	// Vertical wall at x=50, ball of radius 5 approaching from the left.
	h, ok := SweepSegment(Vec2{50, -100}, Vec2{50, 100}, Vec2{0, 0}, Vec2{100, 0}, 5, 1)
	if !ok {
		t.Fatal("expected a hit")
	}
	assertNear(t, "TOI", h.TOI, 0.45)
	assertVec(t, "Normal", h.Normal, Vec2{-1, 0})
}

func TestSweepSegmentApproachFromRight(t *testing.T) {
	h, ok := SweepSegment(Vec2{50, -100}, Vec2{50, 100}, Vec2{100, 0}, Vec2{-100, 0}, 5, 1)
	if !ok {
		t.Fatal("expected a hit")
	}
	assertNear(t, "TOI", h.TOI, 0.45)
	assertVec(t, "Normal", h.Normal, Vec2{1, 0})
}

func TestSweepSegmentProjectionBounds(t *testing.T) {
	// The ball crosses the segment's infinite line, but far past the
	// segment's end, and never comes near either endpoint.
	if _, ok := SweepSegment(Vec2{50, 10}, Vec2{50, 100}, Vec2{0, -50}, Vec2{100, 0}, 5, 1); ok {
		t.Error("expected no hit beyond the segment end")
	}
}

func TestSweepSegmentParallelVelocity(t *testing.T) {
	// Moving parallel to the wall, offset wider than the radius.
	if _, ok := SweepSegment(Vec2{50, -100}, Vec2{50, 100}, Vec2{0, 0}, Vec2{0, 80}, 5, 1); ok {
		t.Error("expected no hit when sliding past a parallel wall")
	}
}

func TestSweepSegmentEndpointHit(t *testing.T) {
	// Ball dropping straight onto the left endpoint of a horizontal segment.
	h, ok := SweepSegment(Vec2{50, 0}, Vec2{100, 0}, Vec2{50, -50}, Vec2{0, 100}, 5, 1)
	if !ok {
		t.Fatal("expected an endpoint hit")
	}
	assertNear(t, "TOI", h.TOI, 0.45)
	assertVec(t, "Normal", h.Normal, Vec2{0, -1})
}

func TestSweepSegmentDegenerate(t *testing.T) {
	// A zero-length segment behaves as a point.
	h, ok := SweepSegment(Vec2{50, 0}, Vec2{50, 0}, Vec2{0, 0}, Vec2{100, 0}, 5, 1)
	if !ok {
		t.Fatal("expected a hit")
	}
	assertNear(t, "TOI", h.TOI, 0.45)
}

// A fast ball whose whole crossing happens within one budget must still be
// caught; this is the tunneling case discrete checks miss.
func TestSweepSegmentNoTunneling(t *testing.T) {
	// 10000/s through a wall 50 units away: crosses within 1% of the budget.
	h, ok := SweepSegment(Vec2{50, -100}, Vec2{50, 100}, Vec2{0, 0}, Vec2{10000, 0}, 5, 1)
	if !ok {
		t.Fatal("expected a hit")
	}
	assertNear(t, "TOI", h.TOI, 0.0045)
}

// --- sweepCircleBoundary ---

func TestSweepCircleBoundary(t *testing.T) {
	tests := []struct {
		name     string
		relPos   Vec2
		relVel   Vec2
		combined float64
		budget   float64
		wantTOI  float64
		wantHit  bool
	}{
		{"approach from outside", Vec2{200, 0}, Vec2{-100, 0}, 120, 1, 0.8, true},
		{"expand from inside", Vec2{0, 0}, Vec2{100, 0}, 80, 1, 0.8, true},
		{"no relative motion", Vec2{200, 0}, Vec2{0, 0}, 120, 1, 0, false},
		{"beyond budget", Vec2{500, 0}, Vec2{-100, 0}, 120, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toi, ok := sweepCircleBoundary(tt.relPos, tt.relVel, tt.combined, tt.budget)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if ok {
				assertNear(t, "TOI", toi, tt.wantTOI)
			}
		})
	}
}

// --- contactNormal ---

func TestContactNormalFallbacks(t *testing.T) {
	tests := []struct {
		name            string
		separation, vel Vec2
		expect          Vec2
	}{
		{"separation direction", Vec2{3, 0}, Vec2{0, 100}, Vec2{1, 0}},
		{"reversed velocity", Vec2{0, 0}, Vec2{0, 100}, Vec2{0, -1}},
		{"fixed default", Vec2{0, 0}, Vec2{0, 0}, Vec2{0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "contactNormal", contactNormal(tt.separation, tt.vel), tt.expect)
		})
	}
}

// --- allocations ---

func TestSweepAllocations(t *testing.T) {
	point := Vec2{50, 0}
	allocs := testing.AllocsPerRun(100, func() {
		SweepPoint(point, Vec2{0, 0}, Vec2{100, 0}, 5, 1)
	})
	if allocs != 0 {
		t.Errorf("SweepPoint allocated %v times per run, want 0", allocs)
	}
}

// --- benchmarks ---

func BenchmarkSweepPoint(b *testing.B) {
	for b.Loop() {
		SweepPoint(Vec2{50, 3}, Vec2{0, 0}, Vec2{100, 0}, 5, 1)
	}
}

func BenchmarkSweepSegment(b *testing.B) {
	p1, p2 := Vec2{50, -100}, Vec2{50, 100}
	for b.Loop() {
		SweepSegment(p1, p2, Vec2{0, 0}, Vec2{100, 20}, 5, 1)
	}
}

func BenchmarkSweepSegmentMiss(b *testing.B) {
	p1, p2 := Vec2{50, -100}, Vec2{50, 100}
	for b.Loop() {
		SweepSegment(p1, p2, Vec2{0, 0}, Vec2{-100, 20}, 5, 1)
	}
}
