package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used by the particle hot paths
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FLerp interpolates component-wise, t is not clamped
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}

// RotateY rotates v about the Y axis by angle radians (right-handed)
func RotateY(v Vec3F, angle float64) Vec3F {
	sin, cos := math.Sincos(angle)
	return Vec3F{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// At reads the i-th triple of a packed xyz buffer
func At(buf []float64, i int) Vec3F {
	idx := i * 3
	return Vec3F{buf[idx], buf[idx+1], buf[idx+2]}
}

// Put writes v into the i-th triple of a packed xyz buffer
func Put(buf []float64, i int, v Vec3F) {
	idx := i * 3
	buf[idx] = v.X
	buf[idx+1] = v.Y
	buf[idx+2] = v.Z
}
