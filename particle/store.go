package particle

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/aspire/vmath"
)

// ErrShapeLength reports a shape buffer that does not hold 3*count values
var ErrShapeLength = errors.New("shape buffer length mismatch")

// Store holds the parallel xyz buffers of one particle population
// Every buffer is 3*count long and keeps its backing array for the instance lifetime
type Store struct {
	count    int
	position []float64
	velocity []float64
	origin   []float64
	alt      []float64 // nil without a morph target
}

// NewStore seeds positions from origin with zero velocity
// alt may be nil; when present it must match origin's length
func NewStore(count int, origin, alt []float64) (*Store, error) {
	count = max(count, 0)
	n := count * 3
	if len(origin) != n {
		return nil, fmt.Errorf("%w: origin has %d values, want %d", ErrShapeLength, len(origin), n)
	}
	if alt != nil && len(alt) != n {
		return nil, fmt.Errorf("%w: alt has %d values, want %d", ErrShapeLength, len(alt), n)
	}

	s := &Store{
		count:    count,
		position: make([]float64, n),
		velocity: make([]float64, n),
		origin:   make([]float64, n),
	}
	copy(s.origin, origin)
	copy(s.position, origin)
	if alt != nil {
		s.alt = make([]float64, n)
		copy(s.alt, alt)
	}
	return s, nil
}

// Reseed overwrites the shapes in place and snaps positions back to origin
// A store created without alt cannot gain one, and vice versa
func (s *Store) Reseed(origin, alt []float64) error {
	n := s.count * 3
	if len(origin) != n {
		return fmt.Errorf("%w: origin has %d values, want %d", ErrShapeLength, len(origin), n)
	}
	if (alt == nil) != (s.alt == nil) || (alt != nil && len(alt) != n) {
		return fmt.Errorf("%w: alt does not match store layout", ErrShapeLength)
	}
	copy(s.origin, origin)
	copy(s.position, origin)
	clear(s.velocity)
	if alt != nil {
		copy(s.alt, alt)
	}
	return nil
}

func (s *Store) Count() int   { return s.count }
func (s *Store) HasAlt() bool { return s.alt != nil }

// Positions exposes the live position buffer; callers outside the frame loop must treat it as read-only
func (s *Store) Positions() []float64 { return s.position }

// Velocities exposes the live velocity buffer, read-only outside the frame loop
func (s *Store) Velocities() []float64 { return s.velocity }

// Origin exposes the seed shape, read-only
func (s *Store) Origin() []float64 { return s.origin }

// Alt exposes the morph shape, nil when absent, read-only
func (s *Store) Alt() []float64 { return s.alt }

// Position returns particle i
func (s *Store) Position(i int) vmath.Vec3F { return vmath.At(s.position, i) }

// Velocity returns particle i velocity
func (s *Store) Velocity(i int) vmath.Vec3F { return vmath.At(s.velocity, i) }

// Target returns the blended target of particle i for progress
func (s *Store) Target(i int, progress float64) vmath.Vec3F {
	o := vmath.At(s.origin, i)
	if s.alt == nil {
		return o
	}
	return vmath.V3FLerp(o, vmath.At(s.alt, i), vmath.Clamp01(progress))
}

// Perturb adds dv to the velocity of particle i, used for one-shot impulses
func (s *Store) Perturb(i int, dv vmath.Vec3F) {
	vmath.Put(s.velocity, i, vmath.V3FAdd(vmath.At(s.velocity, i), dv))
}
