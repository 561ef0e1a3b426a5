package render

import (
	"math"

	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/vmath"
)

// nearPlane rejects points too close to or behind the camera
const nearPlane = 0.1

// Camera is a pinhole camera on the +Z axis looking at the origin
type Camera struct {
	Distance float64
	// FOV is the vertical field of view in degrees
	FOV float64
}

// DefaultCamera matches the hero scene camera
func DefaultCamera() Camera {
	return Camera{Distance: parameter.CameraDistance, FOV: parameter.CameraFOV}
}

// Project maps a world point onto a width x height surface, Y down
// depth is the camera-space distance, ok is false when the point is behind the near plane or the surface is empty
func (c Camera) Project(p vmath.Vec3F, width, height float64) (sx, sy, depth float64, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, 0, false
	}
	depth = c.Distance - p.Z
	if depth < nearPlane {
		return 0, 0, 0, false
	}
	focal := (height / 2) / math.Tan(c.FOV*math.Pi/360)
	sx = width/2 + p.X*focal/depth
	sy = height/2 - p.Y*focal/depth
	if !vmath.Finite(sx) || !vmath.Finite(sy) {
		return 0, 0, 0, false
	}
	return sx, sy, depth, true
}

// Scale returns surface pixels per world unit at depth
func (c Camera) Scale(depth, height float64) float64 {
	if depth <= 0 {
		return 0
	}
	return (height / 2) / math.Tan(c.FOV*math.Pi/360) / depth
}
