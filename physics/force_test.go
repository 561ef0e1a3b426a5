package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/aspire/vmath"
)

func TestRepel(t *testing.T) {
	tests := []struct {
		name   string
		p      vmath.Vec3F
		source vmath.Vec3F
		radius float64
		zero   bool
	}{
		{name: "Coincident", p: vmath.Vec3F{X: 1, Y: 1, Z: 1}, source: vmath.Vec3F{X: 1, Y: 1, Z: 1}, radius: 2, zero: true},
		{name: "Outside radius", p: vmath.Vec3F{X: 3}, source: vmath.Vec3F{}, radius: 2, zero: true},
		{name: "Outside box", p: vmath.Vec3F{Y: 5}, source: vmath.Vec3F{}, radius: 2, zero: true},
		{name: "Box corner outside sphere", p: vmath.Vec3F{X: 1.9, Y: 1.9}, source: vmath.Vec3F{}, radius: 2, zero: true},
		{name: "Zero radius", p: vmath.Vec3F{X: 0.1}, source: vmath.Vec3F{}, radius: 0, zero: true},
		{name: "Inside", p: vmath.Vec3F{X: 0.5}, source: vmath.Vec3F{}, radius: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Repel(tt.p, tt.source, tt.radius, 0.25)
			if tt.zero {
				assert.Equal(t, vmath.Vec3F{}, got)
				return
			}
			assert.Greater(t, got.X, 0.0)
			// (2-0.5)/2 * 0.25
			assert.InDelta(t, 0.1875, vmath.V3FMag(got), 1e-12)
		})
	}
}

func TestRepelFallsOffWithDistance(t *testing.T) {
	near := vmath.V3FMag(Repel(vmath.Vec3F{Y: 0.2}, vmath.Vec3F{}, 1.8, 0.3))
	far := vmath.V3FMag(Repel(vmath.Vec3F{Y: 1.5}, vmath.Vec3F{}, 1.8, 0.3))
	assert.Greater(t, near, far)
}

func TestSpringAndDamp(t *testing.T) {
	s := Spring(vmath.Vec3F{X: 1}, vmath.Vec3F{X: 3, Z: -1}, 0.5)
	assert.Equal(t, vmath.Vec3F{X: 1, Z: -0.5}, s)

	assert.Equal(t, vmath.Vec3F{}, Spring(vmath.Vec3F{X: 2, Y: 2, Z: 2}, vmath.Vec3F{X: 2, Y: 2, Z: 2}, 0.04))
	assert.Equal(t, vmath.Vec3F{X: 0.5, Y: -1}, Damp(vmath.Vec3F{X: 1, Y: -2}, 0.5))
	assert.Equal(t, vmath.Vec3F{X: 2, Y: 2, Z: 2}, Integrate(vmath.Vec3F{X: 1, Y: 1, Z: 1}, vmath.Vec3F{X: 1, Y: 1, Z: 1}))
}
