package vmath

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 bounds x to [0, 1], NaN maps to 0
func Clamp01(x float64) float64 {
	if x != x {
		return 0
	}
	return Clamp(x, 0, 1)
}

// Lerp returns a + (b-a)*t, exact at t=0
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseInOutQuint maps [0,1] onto [0,1] with slow ends and a fast middle
// Input is clamped first so the result never leaves the unit interval
func EaseInOutQuint(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := -2*t + 2
	return 1 - (u*u*u*u*u)/2
}
