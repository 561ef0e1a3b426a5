package particle

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aspire/event"
	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/transition"
	"github.com/lixenwraith/aspire/vmath"
)

func newTestField(t *testing.T, mutate func(*FieldConfig)) *Field {
	t.Helper()
	cfg := DefaultFieldConfig()
	cfg.Count = 400
	cfg.Width, cfg.Height = 1280, 720
	if mutate != nil {
		mutate(&cfg)
	}
	f, err := NewField(cfg)
	require.NoError(t, err)
	return f
}

func TestFieldPopulationByClass(t *testing.T) {
	desktop := newTestField(t, func(c *FieldConfig) { c.Count = 0 })
	assert.Equal(t, parameter.HeroParticleCountDesktop, desktop.Store().Count())

	mobile := newTestField(t, func(c *FieldConfig) {
		c.Count = 0
		c.Class = transition.ClassMobile
	})
	assert.Equal(t, parameter.HeroParticleCountMobile, mobile.Store().Count())
	assert.Len(t, mobile.Store().Positions(), 3*parameter.HeroParticleCountMobile)
}

func TestFieldRejectsBadTuning(t *testing.T) {
	cfg := DefaultFieldConfig()
	cfg.Tuning.Friction = 1.2
	_, err := NewField(cfg)
	assert.Error(t, err)
}

func TestFieldMountLifecycle(t *testing.T) {
	r := event.NewRouter()
	f := newTestField(t, nil)

	f.Mount(r)
	assert.True(t, f.Mounted())
	for _, typ := range []event.Type{event.Scroll, event.PointerMove, event.PointerLeave, event.Resize} {
		assert.Equal(t, 1, r.Subscribers(typ), typ.String())
	}

	// Remount does not stack listeners
	f.Mount(r)
	assert.Equal(t, 1, r.Subscribers(event.Scroll))

	f.Unmount()
	f.Unmount()
	assert.False(t, f.Mounted())
	for _, typ := range []event.Type{event.Scroll, event.PointerMove, event.PointerLeave, event.Resize} {
		assert.Zero(t, r.Subscribers(typ), typ.String())
	}

	r.Push(event.ScrollTo(300))
	r.DispatchAll()
	assert.Zero(t, f.Driver().Scroll(), "unmounted field ignores scroll")
}

func TestFieldRoutesEvents(t *testing.T) {
	r := event.NewRouter()
	f := newTestField(t, nil)
	f.Mount(r)
	defer f.Unmount()

	r.Push(event.ScrollTo(150))
	r.Push(event.ScrollBy(1e9))
	r.Push(event.PointerAt(0, 0))
	r.Push(event.Resized(800, 600))
	r.DispatchAll()

	assert.Equal(t, f.Driver().ScrollMax(), f.Driver().Scroll())
	assert.True(t, f.Pointer().Active)
	w, h := f.viewW, f.viewH
	assert.InDelta(t, 800.0/600.0, w/h, 1e-12)

	r.Push(event.Event{Type: event.PointerLeave})
	r.DispatchAll()
	assert.False(t, f.Pointer().Active)
}

func TestProjectPointer(t *testing.T) {
	f := newTestField(t, nil)
	w, h := f.viewW, f.viewH
	require.Greater(t, w, 0.0)

	center := f.ProjectPointer(0, 0)
	assert.True(t, center.Active)
	assert.Equal(t, vmath.Vec3F{}, center.Position)

	edge := f.ProjectPointer(1, -1)
	assert.InDelta(t, w/2, edge.Position.X, 1e-12)
	assert.InDelta(t, -h/2, edge.Position.Y, 1e-12)

	assert.False(t, f.ProjectPointer(math.NaN(), 0).Active)
}

func TestProjectPointerZeroViewport(t *testing.T) {
	f := newTestField(t, func(c *FieldConfig) { c.Width, c.Height = 0, 0 })
	f.SetPointer(0.5, 0.5)
	assert.False(t, f.Pointer().Active)

	for i := 0; i < 10; i++ {
		f.Frame()
	}
	for _, v := range f.Store().Positions() {
		require.True(t, vmath.Finite(v))
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{Position: vmath.Vec3F{X: -2, Y: 0.3}, RotationY: 1.1}
	p := vmath.Vec3F{X: 0.4, Y: -1, Z: 2}
	back := tr.Inverse(tr.Apply(p))
	assert.InDelta(t, 0, vmath.V3FMag(vmath.V3FSub(back, p)), 1e-12)
}

// TestFieldRestsWithoutInput: group motion never leaks into local positions
func TestFieldRestsWithoutInput(t *testing.T) {
	f := newTestField(t, nil)
	origin := append([]float64(nil), f.Store().Origin()...)
	for i := 0; i < 300; i++ {
		f.Frame()
	}
	if diff := cmp.Diff(origin, f.Snapshot().Positions); diff != "" {
		t.Fatalf("resting field drifted:\n%s", diff)
	}
	assert.Equal(t, uint64(300), f.Snapshot().Frame)
}

func TestFieldGlidesAndSettles(t *testing.T) {
	f := newTestField(t, nil)
	f.Driver().SetScroll(f.Driver().ScrollMax())

	spinStart := f.Group().RotationY
	for i := 0; i < 600; i++ {
		f.Frame()
	}
	snap := f.Snapshot()
	assert.InDelta(t, parameter.HeroGlideX, snap.Group.Position.X, 1e-3)
	assert.Equal(t, 1.0, snap.Progress)
	assert.Greater(t, snap.Group.RotationY, spinStart)
	assert.Greater(t, snap.PointSize, parameter.HeroPointSize)
	assert.Less(t, snap.Opacity, parameter.HeroPointOpacity)
}

func TestFieldPointerScatters(t *testing.T) {
	f := newTestField(t, nil)
	f.SetPointer(0.3, 0)
	require.True(t, f.Pointer().Active)

	// The sphere shell is hollow, so the pointer must sit near the surface to reach anything
	radius := DefaultTuning().RadiusAt(0)
	inReach := false
	for i := 0; i < f.Store().Count(); i++ {
		d := vmath.V3FMag(vmath.V3FSub(vmath.At(f.Store().Positions(), i), f.Pointer().Position))
		if d < radius {
			inReach = true
			break
		}
	}
	require.True(t, inReach, "no particle within %.2f of pointer", radius)

	for i := 0; i < 5; i++ {
		f.Frame()
	}
	moved := false
	origin := f.Store().Origin()
	for i, v := range f.Store().Positions() {
		if v != origin[i] {
			moved = true
			break
		}
	}
	assert.True(t, moved)
}

func TestFieldWithoutMorph(t *testing.T) {
	f := newTestField(t, func(c *FieldConfig) { c.Morph = false })
	assert.False(t, f.Store().HasAlt())
	f.Driver().SetScroll(600)
	for i := 0; i < 50; i++ {
		f.Frame()
	}
	if diff := cmp.Diff(f.Store().Origin(), f.Store().Positions()); diff != "" {
		t.Errorf("single-shape field moved without input:\n%s", diff)
	}
}
