package shape

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/vmath"
)

// Region is one sub-shape of the logo silhouette
type Region uint8

const (
	RegionRing Region = iota
	RegionLeftBar
	RegionRightBar
	RegionCrossbar
	RegionPeakFill
	regionCount
)

var regionNames = [regionCount]string{"ring", "left-bar", "right-bar", "crossbar", "peak-fill"}

func (r Region) String() string {
	if r < regionCount {
		return regionNames[r]
	}
	return "unknown"
}

// Weight returns the share of particles assigned to r
func (r Region) Weight() float64 {
	switch r {
	case RegionRing:
		return parameter.SilhouetteRingWeight
	case RegionLeftBar:
		return parameter.SilhouetteLeftBarWeight
	case RegionRightBar:
		return parameter.SilhouetteRightBarWeight
	case RegionCrossbar:
		return parameter.SilhouetteCrossbarWeight
	case RegionPeakFill:
		return parameter.SilhouettePeakFillWeight
	}
	return 0
}

// sampler generates one point of a region at scale 1
type sampler func(rng *rand.Rand) vmath.Vec3F

var samplers = [regionCount]sampler{
	RegionRing:     sampleRing,
	RegionLeftBar:  sampleLeftBar,
	RegionRightBar: sampleRightBar,
	RegionCrossbar: sampleCrossbar,
	RegionPeakFill: samplePeakFill,
}

// RegionFor assigns index i of count to a region by cumulative weight
// Indices are partitioned in order, trailing rounding slack lands in the last region
func RegionFor(i, count int) Region {
	if count <= 0 {
		return RegionRing
	}
	f := (float64(i) + 0.5) / float64(count)
	acc := 0.0
	for r := Region(0); r < regionCount-1; r++ {
		acc += r.Weight()
		if f < acc {
			return r
		}
	}
	return regionCount - 1
}

// Silhouette samples the logo: a ring around a peaked letter with a crossbar
func Silhouette(count int, scale float64, rng *rand.Rand) []float64 {
	count = max(count, 0)
	buf := make([]float64, count*3)
	for i := 0; i < count; i++ {
		p := samplers[RegionFor(i, count)](rng)
		vmath.Put(buf, i, vmath.V3FScale(p, scale))
	}
	return buf
}

// RegionCounts tallies how many of count indices each region receives
func RegionCounts(count int) map[Region]int {
	out := make(map[Region]int, regionCount)
	for i := 0; i < count; i++ {
		out[RegionFor(i, count)]++
	}
	return out
}

// symmetric returns a uniform draw in [-1, 1)
func symmetric(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

func depth(rng *rand.Rand) float64 {
	return symmetric(rng) * parameter.SilhouetteDepthJitter
}

func sampleRing(rng *rand.Rand) vmath.Vec3F {
	angle := rng.Float64() * 2 * math.Pi
	r := parameter.SilhouetteRingRadius + symmetric(rng)*parameter.SilhouetteRingJitter
	sin, cos := math.Sincos(angle)
	return vmath.Vec3F{X: r * cos, Y: r * sin, Z: depth(rng)}
}

func sampleLeftBar(rng *rand.Rand) vmath.Vec3F {
	return sampleBar(rng, -parameter.SilhouetteBaseHalfW)
}

func sampleRightBar(rng *rand.Rand) vmath.Vec3F {
	return sampleBar(rng, parameter.SilhouetteBaseHalfW)
}

// sampleBar walks from a base foot at baseX up to the apex
// Perpendicular jitter narrows toward the apex
func sampleBar(rng *rand.Rand, baseX float64) vmath.Vec3F {
	t := rng.Float64()
	x := vmath.Lerp(baseX, 0, t)
	y := vmath.Lerp(parameter.SilhouetteBaseY, parameter.SilhouetteApexY, t)

	dx := -baseX
	dy := parameter.SilhouetteApexY - parameter.SilhouetteBaseY
	inv := 1 / math.Hypot(dx, dy)
	nx, ny := -dy*inv, dx*inv

	j := symmetric(rng) * parameter.SilhouetteBarJitter * (1 - t*parameter.SilhouetteBarTaper)
	return vmath.Vec3F{X: x + nx*j, Y: y + ny*j, Z: depth(rng)}
}

func sampleCrossbar(rng *rand.Rand) vmath.Vec3F {
	t := rng.Float64()
	return vmath.Vec3F{
		X: vmath.Lerp(-parameter.SilhouetteCrossHalfW, parameter.SilhouetteCrossHalfW, t),
		Y: parameter.SilhouetteCrossbarY + symmetric(rng)*parameter.SilhouetteCrossJitter,
		Z: depth(rng),
	}
}

// samplePeakFill fills the small triangle under the apex
func samplePeakFill(rng *rand.Rand) vmath.Vec3F {
	height := parameter.SilhouetteApexY - parameter.SilhouetteBaseY
	halfW := parameter.SilhouetteBaseHalfW * parameter.SilhouettePeakDepth / height
	apex := vmath.Vec3F{Y: parameter.SilhouetteApexY}
	left := vmath.Vec3F{X: -halfW, Y: parameter.SilhouetteApexY - parameter.SilhouettePeakDepth}
	right := vmath.Vec3F{X: halfW, Y: left.Y}

	u, v := rng.Float64(), rng.Float64()
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	p := vmath.V3FAdd(apex, vmath.V3FAdd(
		vmath.V3FScale(vmath.V3FSub(left, apex), u),
		vmath.V3FScale(vmath.V3FSub(right, apex), v),
	))
	p.Z = depth(rng)
	return p
}
