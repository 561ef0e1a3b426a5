// Package transition maps scroll offset into an eased progress scalar and the
// group offsets, spin and point appearance derived from it.
package transition

import (
	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/vmath"
)

// ViewportClass selects responsive constants, fixed for an instance at mount
type ViewportClass uint8

const (
	ClassDesktop ViewportClass = iota
	ClassMobile
)

func (c ViewportClass) String() string {
	if c == ClassMobile {
		return "mobile"
	}
	return "desktop"
}

// ClassFor picks the class for a viewport width
func ClassFor(width int) ViewportClass {
	if width > 0 && width < parameter.MobileBreakpoint {
		return ClassMobile
	}
	return ClassDesktop
}

// ParticleCount returns the population for the class
func (c ViewportClass) ParticleCount() int {
	if c == ClassMobile {
		return parameter.HeroParticleCountMobile
	}
	return parameter.HeroParticleCountDesktop
}

// Scale returns the shape scale for the class
func (c ViewportClass) Scale() float64 {
	if c == ClassMobile {
		return parameter.HeroMobileScale
	}
	return 1
}

// Driver holds the scroll state of one mounted instance
// Not safe for concurrent use; owned by the frame loop
type Driver struct {
	scrollMax float64
	class     ViewportClass
	scrollY   float64
}

// NewDriver creates a driver; non-positive scrollMax falls back to the default
func NewDriver(scrollMax float64, class ViewportClass) *Driver {
	if !(scrollMax > 0) || !vmath.Finite(scrollMax) {
		scrollMax = parameter.ScrollMax
	}
	return &Driver{scrollMax: scrollMax, class: class}
}

// SetScroll records an absolute offset clamped to [0, scrollMax]
func (d *Driver) SetScroll(y float64) {
	if !vmath.Finite(y) {
		if y > 0 {
			y = d.scrollMax
		} else {
			y = 0
		}
	}
	d.scrollY = vmath.Clamp(y, 0, d.scrollMax)
}

// ScrollBy applies a relative offset, clamped the same way
func (d *Driver) ScrollBy(dy float64) {
	d.SetScroll(d.scrollY + dy)
}

func (d *Driver) Scroll() float64      { return d.scrollY }
func (d *Driver) ScrollMax() float64   { return d.scrollMax }
func (d *Driver) Class() ViewportClass { return d.class }

// Raw returns linear progress in [0,1]
func (d *Driver) Raw() float64 {
	return vmath.Clamp01(d.scrollY / d.scrollMax)
}

// Progress returns eased progress in [0,1]
func (d *Driver) Progress() float64 {
	return vmath.EaseInOutQuint(d.Raw())
}

// GroupTarget is where the group should sit for the current progress
// Desktop glides horizontally, mobile glides vertically
func (d *Driver) GroupTarget() vmath.Vec3F {
	p := d.Progress()
	if d.class == ClassMobile {
		return vmath.Vec3F{Y: p * parameter.HeroGlideY}
	}
	return vmath.Vec3F{X: p * parameter.HeroGlideX}
}

// RotationSpeed is the per-frame Y spin, settling as progress completes
func (d *Driver) RotationSpeed() float64 {
	p := d.Progress()
	return parameter.HeroBaseSpin * vmath.Lerp(1, parameter.HeroSettleSpin, p)
}

// PointSize is the render size handed to sinks
func (d *Driver) PointSize() float64 {
	return parameter.HeroPointSize * (1 + parameter.HeroPointSizeGrowth*d.Progress())
}

// Opacity is the render opacity handed to sinks
func (d *Driver) Opacity() float64 {
	return parameter.HeroPointOpacity * (1 - parameter.HeroOpacityFade*d.Progress())
}

// Settled reports whether the transition rests at either end
func (d *Driver) Settled() bool {
	r := d.Raw()
	return r == 0 || r == 1
}
