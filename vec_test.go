package bounce

import (
	"math"
	"testing"
)

const tol = 1e-6

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- arithmetic ---

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, -4}
	b := Vec2{1, 2}

	assertVec(t, "Add", a.Add(b), Vec2{4, -2})
	assertVec(t, "Sub", a.Sub(b), Vec2{2, -6})
	assertVec(t, "Scale", a.Scale(2), Vec2{6, -8})
	assertVec(t, "Negate", a.Negate(), Vec2{-3, 4})
	assertNear(t, "Dot", a.Dot(b), -5)
	assertNear(t, "LengthSq", a.LengthSq(), 25)
	assertNear(t, "Length", a.Length(), 5)
	assertNear(t, "Distance", a.Distance(b), math.Hypot(2, -6))
	assertVec(t, "Perp", b.Perp(), Vec2{-2, 1})
}

// --- Normalize ---

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"unit x", Vec2{5, 0}, Vec2{1, 0}},
		{"unit y", Vec2{0, -3}, Vec2{0, -1}},
		{"diagonal", Vec2{1, 1}, Vec2{math.Sqrt2 / 2, math.Sqrt2 / 2}},
		{"zero", Vec2{0, 0}, Vec2{0, 0}},
		{"near zero", Vec2{1e-9, 1e-9}, Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "Normalize", tt.in.Normalize(), tt.want)
		})
	}
}

// --- Reflect ---

func TestVec2Reflect(t *testing.T) {
	tests := []struct {
		name   string
		v, n   Vec2
		expect Vec2
	}{
		{"head-on into vertical wall", Vec2{100, 0}, Vec2{-1, 0}, Vec2{-100, 0}},
		{"head-on into floor", Vec2{0, 50}, Vec2{0, -1}, Vec2{0, -50}},
		{"grazing keeps tangential", Vec2{100, 30}, Vec2{0, -1}, Vec2{100, -30}},
		{"parallel to surface unchanged", Vec2{100, 0}, Vec2{0, -1}, Vec2{100, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "Reflect", tt.v.Reflect(tt.n), tt.expect)
		})
	}
}

// Reflection about a unit normal preserves speed.
func TestVec2ReflectPreservesLength(t *testing.T) {
	v := Vec2{123, -456}
	n := Vec2{3, 4}.Normalize()
	assertNear(t, "reflected length", v.Reflect(n).Length(), v.Length())
}

// --- AngleDeg ---

func TestVec2AngleDeg(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want float64
	}{
		{"+x", Vec2{1, 0}, 0},
		{"down (y grows downward)", Vec2{0, 1}, 90},
		{"-x", Vec2{-1, 0}, 180},
		{"up", Vec2{0, -1}, 270},
		{"diagonal", Vec2{1, 1}, 45},
		{"magnitude independent", Vec2{500, 500}, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "AngleDeg", tt.in.AngleDeg(), tt.want)
		})
	}
}

// --- benchmarks ---

func BenchmarkVec2Normalize(b *testing.B) {
	v := Vec2{123.4, -56.7}
	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec2Reflect(b *testing.B) {
	v := Vec2{123.4, -56.7}
	n := Vec2{0, -1}
	for b.Loop() {
		_ = v.Reflect(n)
	}
}
