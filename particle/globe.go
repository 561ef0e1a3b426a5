package particle

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/aspire/event"
	"github.com/lixenwraith/aspire/parameter"
)

// Dot is one projected globe particle in surface coordinates
type Dot struct {
	X, Y  float64
	Size  float64
	Alpha float64
	// Depth in [-1,1], +1 nearest the viewer
	Depth float64
	Blue  uint8
}

// Globe is the rotating angular point cloud of the not-found page
type Globe struct {
	count int
	// angles packs theta, phi, theta speed per particle
	angles []float64
	// style packs size, opacity and an unused slot per particle
	style []float64

	angle         float64
	width, height int
	radius        float64

	frame uint64
	sub   *event.Subscription
}

// NewGlobe seeds count particles with uniform sphere angles
func NewGlobe(count int, seed int64) *Globe {
	count = max(count, 0)
	rng := rand.New(rand.NewSource(seed))
	g := &Globe{
		count:  count,
		angles: make([]float64, count*3),
		style:  make([]float64, count*3),
	}
	for i := 0; i < count; i++ {
		idx := i * 3
		g.angles[idx] = rng.Float64() * 2 * math.Pi
		g.angles[idx+1] = math.Acos(2*rng.Float64() - 1)
		g.angles[idx+2] = (rng.Float64() - 0.5) * parameter.GlobeDriftRange
		g.style[idx] = rng.Float64()*parameter.GlobeSizeRange + parameter.GlobeSizeMin
		g.style[idx+1] = rng.Float64()*parameter.GlobeOpacityRange + parameter.GlobeOpacityMin
	}
	return g
}

// Mount tracks surface resizes until Unmount
func (g *Globe) Mount(r *event.Router) {
	g.Unmount()
	g.sub = r.Subscribe(event.Resize, func(ev event.Event) {
		g.Resize(ev.Width, ev.Height)
	})
}

// Unmount releases the resize subscription, safe to call repeatedly
func (g *Globe) Unmount() {
	g.sub.Cancel()
	g.sub = nil
}

// Resize updates the surface size and derived radius
func (g *Globe) Resize(width, height int) {
	g.width, g.height = max(width, 0), max(height, 0)
	g.radius = float64(min(g.width, g.height)) * parameter.GlobeRadiusFactor
}

// Frame rotates the globe and advances each particle's theta
func (g *Globe) Frame() {
	g.frame++
	g.angle += parameter.GlobeSpin
	for i := 0; i < g.count; i++ {
		idx := i * 3
		g.angles[idx] += g.angles[idx+2] + parameter.GlobeSpin
	}
}

// Project appends the current screen-space dots to dst
// Nothing is produced for an empty surface
func (g *Globe) Project(dst []Dot) []Dot {
	if g.radius <= 0 {
		return dst
	}
	r := g.radius
	cx, cy := float64(g.width)/2, float64(g.height)/2
	sinA, cosA := math.Sincos(g.angle)

	for i := 0; i < g.count; i++ {
		idx := i * 3
		sinPhi, cosPhi := math.Sincos(g.angles[idx+1])
		sinTheta, cosTheta := math.Sincos(g.angles[idx])

		x3 := r * sinPhi * cosTheta
		y3 := r * cosPhi
		z3 := r * sinPhi * sinTheta

		x2 := x3*cosA - z3*sinA
		z2 := x3*sinA + z3*cosA

		persp := (r + z2) / (2 * r)
		depth := z2 / r
		blue := math.Floor(parameter.GlobeBlueBase + depth*parameter.GlobeBlueRange)

		dst = append(dst, Dot{
			X:     cx + x2*persp,
			Y:     cy + y3*persp,
			Size:  g.style[idx] * persp * parameter.GlobeSizeBoost,
			Alpha: g.style[idx+1] * persp,
			Depth: depth,
			Blue:  uint8(max(0, min(255, blue))),
		})
	}
	return dst
}

// Glow returns the halo center and radius
func (g *Globe) Glow() (cx, cy, radius float64) {
	return float64(g.width) / 2, float64(g.height) / 2, g.radius * parameter.GlobeGlowFactor
}

func (g *Globe) Count() int      { return g.count }
func (g *Globe) Radius() float64 { return g.radius }
func (g *Globe) Frames() uint64  { return g.frame }
