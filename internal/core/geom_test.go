package core

import (
	"math"
	"testing"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "apart horizontally",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "apart vertically",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained",
			a:        RectF{X: 0, Y: 0, W: 20, H: 20},
			b:        RectF{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 9.5, Y: 9.5, W: 10, H: 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFOverlap(t *testing.T) {
	a := RectF{X: 0, Y: 0, W: 50, H: 50}
	b := RectF{X: 40, Y: 20, W: 50, H: 50}

	x, y := a.Overlap(b)
	if x != 10 {
		t.Errorf("x overlap = %v, expected 10", x)
	}
	if y != 30 {
		t.Errorf("y overlap = %v, expected 30", y)
	}
}

func TestVec2(t *testing.T) {
	v := V(1, 2).Add(V(3, 4)).Scale(2)
	if v.X != 8 || v.Y != 12 {
		t.Errorf("got %+v, expected {8 12}", v)
	}

	angles := map[Vec2]float64{
		V(1, 0):  0,
		V(0, 1):  90,
		V(-1, 0): 180,
		V(0, -1): -90,
	}
	for dir, want := range angles {
		if got := dir.Angle(); math.Abs(got-want) > 1e-9 {
			t.Errorf("Angle(%v) = %v, expected %v", dir, got, want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
}
