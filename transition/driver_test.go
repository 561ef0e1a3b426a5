package transition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/aspire/parameter"
)

func TestProgressClamped(t *testing.T) {
	tests := []struct {
		name   string
		scroll float64
		raw    float64
	}{
		{name: "Negative", scroll: -250, raw: 0},
		{name: "Zero", scroll: 0, raw: 0},
		{name: "Half", scroll: 300, raw: 0.5},
		{name: "At max", scroll: 600, raw: 1},
		{name: "Huge", scroll: 1e12, raw: 1},
		{name: "Positive infinity", scroll: math.Inf(1), raw: 1},
		{name: "Negative infinity", scroll: math.Inf(-1), raw: 0},
		{name: "NaN", scroll: math.NaN(), raw: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDriver(600, ClassDesktop)
			d.SetScroll(tt.scroll)
			assert.InDelta(t, tt.raw, d.Raw(), 1e-12)
			p := d.Progress()
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		})
	}
}

func TestScrollByAccumulatesWithinBounds(t *testing.T) {
	d := NewDriver(100, ClassDesktop)
	for i := 0; i < 10; i++ {
		d.ScrollBy(30)
	}
	assert.Equal(t, 100.0, d.Scroll())
	d.ScrollBy(-1000)
	assert.Equal(t, 0.0, d.Scroll())
}

func TestInvalidScrollMaxFallsBack(t *testing.T) {
	assert.Equal(t, parameter.ScrollMax, NewDriver(0, ClassDesktop).ScrollMax())
	assert.Equal(t, parameter.ScrollMax, NewDriver(-1, ClassDesktop).ScrollMax())
	assert.Equal(t, parameter.ScrollMax, NewDriver(math.NaN(), ClassDesktop).ScrollMax())
}

func TestGroupTargetByClass(t *testing.T) {
	desktop := NewDriver(600, ClassDesktop)
	desktop.SetScroll(600)
	assert.InDelta(t, parameter.HeroGlideX, desktop.GroupTarget().X, 1e-12)
	assert.Zero(t, desktop.GroupTarget().Y)

	mobile := NewDriver(600, ClassMobile)
	mobile.SetScroll(600)
	assert.InDelta(t, parameter.HeroGlideY, mobile.GroupTarget().Y, 1e-12)
	assert.Zero(t, mobile.GroupTarget().X)

	mobile.SetScroll(0)
	assert.Zero(t, mobile.GroupTarget().Y)
}

func TestRotationSpeedDecays(t *testing.T) {
	d := NewDriver(600, ClassDesktop)
	prev := d.RotationSpeed()
	assert.InDelta(t, parameter.HeroBaseSpin, prev, 1e-15)
	for y := 50.0; y <= 600; y += 50 {
		d.SetScroll(y)
		cur := d.RotationSpeed()
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
	assert.InDelta(t, parameter.HeroBaseSpin*parameter.HeroSettleSpin, prev, 1e-15)
	assert.Greater(t, prev, 0.0)
}

func TestSettled(t *testing.T) {
	d := NewDriver(600, ClassDesktop)
	assert.True(t, d.Settled())
	d.SetScroll(10)
	assert.False(t, d.Settled())
	d.SetScroll(900)
	assert.True(t, d.Settled())
}

func TestClassFor(t *testing.T) {
	assert.Equal(t, ClassMobile, ClassFor(375))
	assert.Equal(t, ClassDesktop, ClassFor(1440))
	assert.Equal(t, ClassDesktop, ClassFor(0))
	assert.Equal(t, parameter.HeroParticleCountMobile, ClassMobile.ParticleCount())
	assert.Equal(t, parameter.HeroParticleCountDesktop, ClassDesktop.ParticleCount())
}
