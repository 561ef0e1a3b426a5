package render

import "github.com/lixenwraith/aspire/parameter"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBAccent = RGB{parameter.AccentR, parameter.AccentG, parameter.AccentB}
	// RGBBackground matches the dark navy page background
	RGBBackground = RGB{0x09, 0x0d, 0x18}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies each channel by f
func (c RGB) Scale(f float64) RGB {
	return RGB{clamp(float64(c.R) * f), clamp(float64(c.G) * f), clamp(float64(c.B) * f)}
}

// Add sums channels with saturation, additive blending of overlapping points
func (c RGB) Add(o RGB) RGB {
	return RGB{
		clamp(float64(c.R) + float64(o.R)),
		clamp(float64(c.G) + float64(o.G)),
		clamp(float64(c.B) + float64(o.B)),
	}
}

// Over composites c over bg with alpha in [0,1]
func (c RGB) Over(bg RGB, alpha float64) RGB {
	a := max(0, min(1, alpha))
	return RGB{
		clamp(float64(c.R)*a + float64(bg.R)*(1-a)),
		clamp(float64(c.G)*a + float64(bg.G)*(1-a)),
		clamp(float64(c.B)*a + float64(bg.B)*(1-a)),
	}
}
