package vmath

import "math"

// Finite reports whether x is neither NaN nor ±Inf
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FiniteVec3F reports whether every component of v is finite
func FiniteVec3F(v Vec3F) bool {
	return Finite(v.X) && Finite(v.Y) && Finite(v.Z)
}

// OrZero returns x when finite, otherwise 0
func OrZero(x float64) float64 {
	if Finite(x) {
		return x
	}
	return 0
}
