package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// ExpSmooth moves current toward target by a frame-rate independent factor.
// The result always lies between current and target.
func ExpSmooth(current, target, rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return current
	}
	return target + (current-target)*math.Exp(-rate*dt)
}

// ExpFactor is the lerp factor equivalent to ExpSmooth for one step.
func ExpFactor(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
