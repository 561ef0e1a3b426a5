package particle

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/aspire/event"
	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/shape"
	"github.com/lixenwraith/aspire/transition"
	"github.com/lixenwraith/aspire/vmath"
)

// FieldConfig describes one hero field instance
type FieldConfig struct {
	// Class fixes the population and shape scale at mount
	Class transition.ViewportClass
	// Count overrides the class population when positive
	Count int
	// Origin is the seed shape, Alt the morph target when Morph is set
	Origin shape.Kind
	Alt    shape.Kind
	Morph  bool

	Tuning    Tuning
	ScrollMax float64
	Seed      int64

	// Surface size in pixels (or pixel-equivalent units)
	Width, Height int
}

// DefaultFieldConfig returns a desktop sphere-to-logo field
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Class:     transition.ClassDesktop,
		Origin:    shape.KindSphere,
		Alt:       shape.KindSilhouette,
		Morph:     true,
		Tuning:    DefaultTuning(),
		ScrollMax: parameter.ScrollMax,
		Seed:      1,
	}
}

// Transform is the group placement applied on top of local particle positions
type Transform struct {
	Position  vmath.Vec3F
	RotationY float64
}

// Apply maps a local point into world space
func (tr Transform) Apply(p vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FAdd(vmath.RotateY(p, tr.RotationY), tr.Position)
}

// Inverse maps a world point into local space
func (tr Transform) Inverse(p vmath.Vec3F) vmath.Vec3F {
	return vmath.RotateY(vmath.V3FSub(p, tr.Position), -tr.RotationY)
}

// Snapshot is the read-only view handed to render sinks after a frame
type Snapshot struct {
	// Positions aliases the live buffer and must not be written
	Positions []float64
	Count     int
	Group     Transform
	Progress  float64
	PointSize float64
	Opacity   float64
	Frame     uint64
}

// Field is one mounted hero point cloud
type Field struct {
	store  *Store
	integ  *Integrator
	driver *transition.Driver

	// Pointer in normalized device coordinates, re-projected every frame as the group moves
	ndcX, ndcY float64
	hasPointer bool
	pointer    Pointer

	width, height int
	viewW, viewH  float64

	glide    harmonica.Spring
	glidePos vmath.Vec3F
	glideVel vmath.Vec3F
	spin     float64
	noise    *perlin.Perlin
	group    Transform

	frame uint64
	subs  []*event.Subscription
}

// NewField seeds buffers from the configured shapes
func NewField(cfg FieldConfig) (*Field, error) {
	integ, err := NewIntegrator(cfg.Tuning)
	if err != nil {
		return nil, err
	}

	count := cfg.Count
	if count <= 0 {
		count = cfg.Class.ParticleCount()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	scale := cfg.Class.Scale()
	origin := shape.Generate(cfg.Origin, count, originScale(cfg.Origin, scale), rng)
	var alt []float64
	if cfg.Morph {
		alt = shape.Generate(cfg.Alt, count, originScale(cfg.Alt, scale), rng)
	}

	store, err := NewStore(count, origin, alt)
	if err != nil {
		return nil, err
	}

	f := &Field{
		store:  store,
		integ:  integ,
		driver: transition.NewDriver(cfg.ScrollMax, cfg.Class),
		glide:  harmonica.NewSpring(harmonica.FPS(parameter.FrameRate), parameter.HeroGlideFrequency, parameter.HeroGlideDamping),
		noise:  perlin.NewPerlin(2, 2, 3, cfg.Seed),
	}
	f.Resize(cfg.Width, cfg.Height)
	return f, nil
}

// originScale converts a class scale into a shape extent
func originScale(kind shape.Kind, classScale float64) float64 {
	if kind == shape.KindSphere {
		return parameter.HeroSphereRadius * classScale
	}
	return classScale
}

// Mount subscribes the field to scroll, pointer and resize events
// Every subscription is released by Unmount
func (f *Field) Mount(r *event.Router) {
	f.Unmount()
	f.subs = append(f.subs,
		r.Subscribe(event.Scroll, func(ev event.Event) {
			if ev.Delta {
				f.driver.ScrollBy(ev.Y)
			} else {
				f.driver.SetScroll(ev.Y)
			}
		}),
		r.Subscribe(event.PointerMove, func(ev event.Event) {
			f.SetPointer(ev.X, ev.Y)
		}),
		r.Subscribe(event.PointerLeave, func(event.Event) {
			f.ClearPointer()
		}),
		r.Subscribe(event.Resize, func(ev event.Event) {
			f.Resize(ev.Width, ev.Height)
		}),
	)
}

// Unmount releases every subscription, safe to call repeatedly
func (f *Field) Unmount() {
	for _, s := range f.subs {
		s.Cancel()
	}
	f.subs = f.subs[:0]
}

// Mounted reports whether subscriptions are held
func (f *Field) Mounted() bool { return len(f.subs) > 0 }

// Resize recomputes the visible world extent at z=0 for the camera
func (f *Field) Resize(width, height int) {
	f.width, f.height = width, height
	if width <= 0 || height <= 0 {
		f.viewW, f.viewH = 0, 0
		return
	}
	halfFov := parameter.CameraFOV * math.Pi / 360
	f.viewH = 2 * parameter.CameraDistance * math.Tan(halfFov)
	f.viewW = f.viewH * float64(width) / float64(height)
}

// SetPointer records a normalized pointer, X right and Y up in [-1,1]
func (f *Field) SetPointer(ndcX, ndcY float64) {
	f.ndcX, f.ndcY = ndcX, ndcY
	f.hasPointer = true
	f.pointer = f.ProjectPointer(ndcX, ndcY)
}

// ClearPointer disables repulsion until the next move
func (f *Field) ClearPointer() {
	f.hasPointer = false
	f.pointer = Pointer{}
}

// ProjectPointer maps normalized coordinates into local space through the group transform
// A zero-size viewport yields an inactive pointer
func (f *Field) ProjectPointer(ndcX, ndcY float64) Pointer {
	if f.viewW <= 0 || f.viewH <= 0 || !vmath.Finite(ndcX) || !vmath.Finite(ndcY) {
		return Pointer{}
	}
	world := vmath.Vec3F{X: ndcX * f.viewW / 2, Y: ndcY * f.viewH / 2}
	local := f.group.Inverse(world)
	if !vmath.FiniteVec3F(local) {
		return Pointer{}
	}
	return Pointer{Position: local, Active: true}
}

// Frame advances the group motion and then every particle by one step
func (f *Field) Frame() {
	f.frame++
	t := float64(f.frame) / parameter.FrameRate

	target := f.driver.GroupTarget()
	f.glidePos.X, f.glideVel.X = f.glide.Update(f.glidePos.X, f.glideVel.X, target.X)
	f.glidePos.Y, f.glideVel.Y = f.glide.Update(f.glidePos.Y, f.glideVel.Y, target.Y)
	f.spin += f.driver.RotationSpeed()

	bob := f.noise.Noise1D(t*parameter.HeroFloatSpeed) * parameter.HeroFloatIntensity
	wobble := f.noise.Noise1D(t*parameter.HeroFloatSpeed+100) * parameter.HeroFloatRotationIntensity * parameter.HeroFloatAmplitude
	f.group = Transform{
		Position:  vmath.V3FAdd(f.glidePos, vmath.Vec3F{Y: vmath.OrZero(bob) * parameter.HeroFloatAmplitude}),
		RotationY: f.spin + vmath.OrZero(wobble),
	}

	if f.hasPointer {
		f.pointer = f.ProjectPointer(f.ndcX, f.ndcY)
	}
	f.integ.Step(f.store, f.pointer, f.driver.Progress())
}

// Snapshot returns the state render sinks consume
func (f *Field) Snapshot() Snapshot {
	return Snapshot{
		Positions: f.store.Positions(),
		Count:     f.store.Count(),
		Group:     f.group,
		Progress:  f.driver.Progress(),
		PointSize: f.driver.PointSize(),
		Opacity:   f.driver.Opacity(),
		Frame:     f.frame,
	}
}

func (f *Field) Store() *Store              { return f.store }
func (f *Field) Driver() *transition.Driver { return f.driver }
func (f *Field) Integrator() *Integrator    { return f.integ }
func (f *Field) Pointer() Pointer           { return f.pointer }
func (f *Field) Group() Transform           { return f.group }
func (f *Field) Frames() uint64             { return f.frame }
