package shape

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lixenwraith/aspire/vmath"
)

// Kind names a sampling rule
type Kind uint8

const (
	KindSphere Kind = iota
	KindSilhouette
)

var kindNames = [...]string{
	KindSphere:     "sphere",
	KindSilhouette: "silhouette",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind resolves a shape name as used in config files and flags
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}

// Generate dispatches to the sampler for kind
func Generate(kind Kind, count int, scale float64, rng *rand.Rand) []float64 {
	switch kind {
	case KindSilhouette:
		return Silhouette(count, scale, rng)
	default:
		return Sphere(count, scale, rng)
	}
}

// Sphere samples count points uniformly over a sphere surface of the given radius
// Inverse-CDF on the polar angle keeps density uniform over area, not over phi
func Sphere(count int, radius float64, rng *rand.Rand) []float64 {
	count = max(count, 0)
	buf := make([]float64, count*3)
	for i := 0; i < count; i++ {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		vmath.Put(buf, i, SpherePoint(theta, phi, radius))
	}
	return buf
}

// SpherePoint projects spherical angles to Cartesian at radius
func SpherePoint(theta, phi, radius float64) vmath.Vec3F {
	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)
	return vmath.Vec3F{
		X: radius * sinPhi * cosTheta,
		Y: radius * sinPhi * sinTheta,
		Z: radius * cosPhi,
	}
}
