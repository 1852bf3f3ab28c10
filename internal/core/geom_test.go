package core

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name    string
		in      Vec2
		want    Vec2
		wantLen float64
	}{
		{"axis", V(3, 0), V(1, 0), 3},
		{"diagonal", V(3, 4), V(0.6, 0.8), 5},
		{"zero vector", V(0, 0), V(0, 0), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, l := tc.in.Normalize()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Normalize() = %v, expected %v", got, tc.want)
			}
			if l != tc.wantLen {
				t.Errorf("Normalize() length = %f, expected %f", l, tc.wantLen)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Error("Normalize() must never produce NaN")
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a, b := V(1, 2), V(4, 6)

	if got := a.Add(b); got != V(5, 8) {
		t.Errorf("Add() = %v, expected (5, 8)", got)
	}
	if got := b.Sub(a); got != V(3, 4) {
		t.Errorf("Sub() = %v, expected (3, 4)", got)
	}
	if got := a.Scale(2); got != V(2, 4) {
		t.Errorf("Scale() = %v, expected (2, 4)", got)
	}
	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist() = %f, expected 5", got)
	}
}

func TestPolar(t *testing.T) {
	p := Polar(math.Pi/2, 2)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-2) > 1e-9 {
		t.Errorf("Polar(pi/2, 2) = %v, expected (0, 2)", p)
	}
	if math.Abs(p.Angle()-math.Pi/2) > 1e-9 {
		t.Errorf("Angle() = %f, expected pi/2", p.Angle())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}

	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF should clamp to bounds")
	}
}
