package common

import (
	"math"
	"testing"
)

func TestExpSmoothNeverOvershoots(t *testing.T) {
	cases := []struct {
		name            string
		current, target float64
		rate, dt        float64
	}{
		{"accelerate", 0, 220, 12, 1.0 / 60.0},
		{"decelerate", 380, 0, 12, 1.0 / 60.0},
		{"reverse", -220, 220, 50, 0.5},
		{"huge_step", 0, 100, 1000, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ExpSmooth(c.current, c.target, c.rate, c.dt)
			lo, hi := math.Min(c.current, c.target), math.Max(c.current, c.target)
			if got < lo || got > hi {
				t.Fatalf("expected value in [%v,%v], got %v", lo, hi, got)
			}
		})
	}
}

func TestExpSmoothDisabled(t *testing.T) {
	if got := ExpSmooth(5, 10, 0, 1); got != 5 {
		t.Fatalf("expected current to be held, got %v", got)
	}
	if got := ExpFactor(6, 0); got != 0 {
		t.Fatalf("expected zero factor, got %v", got)
	}
}

func TestSign(t *testing.T) {
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(0.1) != 1 {
		t.Fatal("unexpected sign")
	}
}
