package physics

import (
	"math"

	"github.com/lixenwraith/aspire/vmath"
)

// Repel returns the velocity impulse pushing p away from source
// Linear falloff: full strength at distance 0, nothing at radius
// Returns zero when p coincides with source (no defined direction) or lies outside radius
// Bounding-box rejection runs first and only skips particles the sphere test would reject anyway
func Repel(p, source vmath.Vec3F, radius, strength float64) vmath.Vec3F {
	if radius <= 0 {
		return vmath.Vec3F{}
	}
	dx := p.X - source.X
	dy := p.Y - source.Y
	if math.Abs(dx) > radius || math.Abs(dy) > radius {
		return vmath.Vec3F{}
	}
	dz := p.Z - source.Z

	distSq := dx*dx + dy*dy + dz*dz
	if distSq == 0 || distSq >= radius*radius {
		return vmath.Vec3F{}
	}

	dist := math.Sqrt(distSq)
	push := (radius - dist) / radius * strength
	inv := push / dist
	return vmath.Vec3F{X: dx * inv, Y: dy * inv, Z: dz * inv}
}

// Spring returns the return impulse pulling p toward target, linear in displacement
func Spring(p, target vmath.Vec3F, stiffness float64) vmath.Vec3F {
	return vmath.V3FScale(vmath.V3FSub(target, p), stiffness)
}

// Damp scales velocity by friction, friction in (0,1) guarantees decay
func Damp(v vmath.Vec3F, friction float64) vmath.Vec3F {
	return vmath.V3FScale(v, friction)
}

// Integrate advances position by one unit step: p = p + v
func Integrate(p, v vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FAdd(p, v)
}
