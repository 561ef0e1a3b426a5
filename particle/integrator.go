package particle

import (
	"github.com/lixenwraith/aspire/physics"
	"github.com/lixenwraith/aspire/vmath"
)

// Pointer is the interaction source in the field's local coordinates
type Pointer struct {
	Position vmath.Vec3F
	Active   bool
}

// Integrator advances a Store by one frame
type Integrator struct {
	tuning Tuning
}

// NewIntegrator validates tuning
func NewIntegrator(t Tuning) (*Integrator, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Integrator{tuning: t}, nil
}

func (in *Integrator) Tuning() Tuning { return in.tuning }

// SetTuning swaps constants between frames, invalid tuning is rejected and the old one kept
func (in *Integrator) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	in.tuning = t
	return nil
}

// Step runs one update over every particle
// Per particle: blended target, pointer repulsion, spring return, damping, then position += velocity
// Non-finite state is reset to the target at rest
func (in *Integrator) Step(s *Store, ptr Pointer, progress float64) {
	progress = vmath.Clamp01(progress)
	t := in.tuning
	radius := t.RadiusAt(progress)
	repel := ptr.Active && vmath.FiniteVec3F(ptr.Position) && t.PushStrength > 0

	for i := 0; i < s.count; i++ {
		pos := vmath.At(s.position, i)
		vel := vmath.At(s.velocity, i)
		target := s.Target(i, progress)

		if repel {
			vel = vmath.V3FAdd(vel, physics.Repel(pos, ptr.Position, radius, t.PushStrength))
		}
		vel = vmath.V3FAdd(vel, physics.Spring(pos, target, t.Stiffness))
		vel = physics.Damp(vel, t.Friction)
		pos = physics.Integrate(pos, vel)

		if !vmath.FiniteVec3F(pos) || !vmath.FiniteVec3F(vel) {
			pos = target
			if !vmath.FiniteVec3F(pos) {
				pos = vmath.Vec3F{}
			}
			vel = vmath.Vec3F{}
		}

		vmath.Put(s.position, i, pos)
		vmath.Put(s.velocity, i, vel)
	}
}
