package particle

import (
	"fmt"

	"github.com/lixenwraith/aspire/parameter"
)

// Tuning groups the force constants of an integrator
// Values are visual-design choices, not load-bearing
type Tuning struct {
	Stiffness      float64 `yaml:"stiffness"`
	Friction       float64 `yaml:"friction"`
	PushStrength   float64 `yaml:"push_strength"`
	InteractRadius float64 `yaml:"interact_radius"`
	InteractGrowth float64 `yaml:"interact_growth"`
}

// DefaultTuning returns the crisp preset (friction 0.88, push 0.25)
func DefaultTuning() Tuning {
	return Tuning{
		Stiffness:      parameter.HeroStiffness,
		Friction:       parameter.HeroFriction,
		PushStrength:   parameter.HeroPushStrength,
		InteractRadius: parameter.HeroInteractRadius,
		InteractGrowth: parameter.HeroInteractGrowth,
	}
}

// SoftTuning returns the loose preset (friction 0.8, push 0.3)
func SoftTuning() Tuning {
	t := DefaultTuning()
	t.Stiffness = parameter.HeroSoftStiffness
	t.Friction = parameter.HeroSoftFriction
	t.PushStrength = parameter.HeroSoftPushStrength
	return t
}

// Preset resolves a preset name
func Preset(name string) (Tuning, error) {
	switch name {
	case "", "default", "crisp":
		return DefaultTuning(), nil
	case "soft":
		return SoftTuning(), nil
	}
	return Tuning{}, fmt.Errorf("unknown tuning preset %q", name)
}

// Validate rejects constants that would let energy grow without bound
func (t Tuning) Validate() error {
	if !(t.Friction > 0 && t.Friction < 1) {
		return fmt.Errorf("friction %v must be in (0,1)", t.Friction)
	}
	if !(t.Stiffness >= 0 && t.Stiffness < 1) {
		return fmt.Errorf("stiffness %v must be in [0,1)", t.Stiffness)
	}
	if !(t.PushStrength >= 0) {
		return fmt.Errorf("push strength %v must be non-negative", t.PushStrength)
	}
	if !(t.InteractRadius >= 0) || !(t.InteractGrowth >= 0) {
		return fmt.Errorf("interaction radius %v/%v must be non-negative", t.InteractRadius, t.InteractGrowth)
	}
	return nil
}

// RadiusAt returns the pointer influence radius for progress
func (t Tuning) RadiusAt(progress float64) float64 {
	return t.InteractRadius + t.InteractGrowth*progress
}
