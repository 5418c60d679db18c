package common

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"zero", 0, 0, 0, 0},
		{"right", 1, 0, 1, 0},
		{"up", 0, -1, 0, -1},
		{"diagonal", 1, 1, math.Sqrt2 / 2, math.Sqrt2 / 2},
		{"long_vector", 30, 40, 0.6, 0.8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := Normalize(c.x, c.y)
			if math.Abs(x-c.wantX) > 1e-12 || math.Abs(y-c.wantY) > 1e-12 {
				t.Fatalf("Normalize(%v, %v) = (%v, %v), want (%v, %v)", c.x, c.y, x, y, c.wantX, c.wantY)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp(0,10,0.5) = %v, want 5", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Fatalf("Lerp(2,4,0) = %v, want 2", got)
	}
	if got := Lerp(2, 4, 1); got != 4 {
		t.Fatalf("Lerp(2,4,1) = %v, want 4", got)
	}
}
