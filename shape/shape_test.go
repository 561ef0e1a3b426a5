package shape

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/vmath"
)

func TestBufferLengths(t *testing.T) {
	for _, count := range []int{0, 1, 7, 1000} {
		for _, kind := range []Kind{KindSphere, KindSilhouette} {
			buf := Generate(kind, count, 1, rand.New(rand.NewSource(1)))
			assert.Len(t, buf, 3*count, "kind=%s count=%d", kind, count)
		}
	}
}

func TestNegativeCountIsEmpty(t *testing.T) {
	assert.Empty(t, Sphere(-5, 1, rand.New(rand.NewSource(1))))
	assert.Empty(t, Silhouette(-5, 1, rand.New(rand.NewSource(1))))
}

func TestSphereOnSurface(t *testing.T) {
	const radius = 2.6
	buf := Sphere(500, radius, rand.New(rand.NewSource(7)))
	for i := 0; i < 500; i++ {
		assert.InDelta(t, radius, vmath.V3FMag(vmath.At(buf, i)), 1e-9)
	}
}

// TestSphereUniformZ checks z/r is uniform on [-1,1], the signature of area-uniform sampling
func TestSphereUniformZ(t *testing.T) {
	const (
		n      = 20000
		bins   = 10
		radius = 3.0
	)
	buf := Sphere(n, radius, rand.New(rand.NewSource(42)))

	var hist [bins]int
	sum := 0.0
	for i := 0; i < n; i++ {
		z := vmath.At(buf, i).Z / radius
		sum += z
		b := int((z + 1) / 2 * bins)
		if b == bins {
			b = bins - 1
		}
		hist[b]++
	}

	expected := float64(n) / bins
	for b, got := range hist {
		assert.InEpsilon(t, expected, float64(got), 0.15, "bin %d", b)
	}
	assert.InDelta(t, 0, sum/n, 0.03)
}

func TestDeterministicForSeed(t *testing.T) {
	for _, kind := range []Kind{KindSphere, KindSilhouette} {
		a := Generate(kind, 256, 1.5, rand.New(rand.NewSource(99)))
		b := Generate(kind, 256, 1.5, rand.New(rand.NewSource(99)))
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s not deterministic (-a +b):\n%s", kind, diff)
		}
	}
}

func TestRegionPartitionFollowsWeights(t *testing.T) {
	total := 0.0
	for r := Region(0); r < regionCount; r++ {
		total += r.Weight()
	}
	require.InDelta(t, 1.0, total, 1e-9)

	for _, count := range []int{1000, 4500, 2000, 37} {
		counts := RegionCounts(count)
		sum := 0
		for r := Region(0); r < regionCount; r++ {
			want := r.Weight() * float64(count)
			assert.InDelta(t, want, float64(counts[r]), 1.0, "count=%d region=%s", count, r)
			sum += counts[r]
		}
		assert.Equal(t, count, sum)
	}
}

func TestRegionForOrdered(t *testing.T) {
	prev := RegionFor(0, 100)
	for i := 1; i < 100; i++ {
		cur := RegionFor(i, 100)
		assert.GreaterOrEqual(t, cur, prev, "index %d", i)
		prev = cur
	}
	assert.Equal(t, RegionRing, RegionFor(0, 0))
}

func TestSilhouetteBounds(t *testing.T) {
	const scale = 2.0
	buf := Silhouette(3000, scale, rand.New(rand.NewSource(3)))
	limit := (parameter.SilhouetteRingRadius + parameter.SilhouetteRingJitter) * scale
	for i := 0; i < 3000; i++ {
		p := vmath.At(buf, i)
		assert.LessOrEqual(t, math.Hypot(p.X, p.Y), limit+1e-9)
		assert.LessOrEqual(t, math.Abs(p.Z), parameter.SilhouetteDepthJitter*scale+1e-9)
	}
}

func TestRingRegionRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		p := sampleRing(rng)
		r := math.Hypot(p.X, p.Y)
		assert.InDelta(t, parameter.SilhouetteRingRadius, r, parameter.SilhouetteRingJitter+1e-9)
	}
}

func TestBarJitterShrinksTowardApex(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var nearBase, nearApex float64
	for i := 0; i < 5000; i++ {
		p := sampleLeftBar(rng)
		// Distance from the bar's center line
		t0 := (p.Y - parameter.SilhouetteBaseY) / (parameter.SilhouetteApexY - parameter.SilhouetteBaseY)
		off := math.Abs(p.X - vmath.Lerp(-parameter.SilhouetteBaseHalfW, 0, t0))
		if t0 < 0.2 {
			nearBase = math.Max(nearBase, off)
		} else if t0 > 0.8 {
			nearApex = math.Max(nearApex, off)
		}
	}
	assert.Greater(t, nearBase, nearApex)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("silhouette")
	require.NoError(t, err)
	assert.Equal(t, KindSilhouette, k)

	_, err = ParseKind("cube")
	assert.Error(t, err)
	assert.Equal(t, "sphere", KindSphere.String())
}
