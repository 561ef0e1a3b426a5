package render

import (
	"math"

	"github.com/lixenwraith/aspire/particle"
	"github.com/lixenwraith/aspire/vmath"
)

// PlotField projects a hero snapshot into the canvas
// aspect is the height of one cell relative to its width (2 for terminals, 1 for images)
// Only reads the snapshot
func PlotField(c *Canvas, snap particle.Snapshot, cam Camera, aspect float64) {
	if aspect <= 0 {
		aspect = 1
	}
	w := float64(c.width)
	h := float64(c.height) * aspect
	intensity := snap.Opacity

	for i := 0; i < snap.Count; i++ {
		world := snap.Group.Apply(vmath.At(snap.Positions, i))
		sx, sy, depth, ok := cam.Project(world, w, h)
		if !ok {
			continue
		}
		// Nearer points read brighter
		shade := intensity * vmath.Clamp(cam.Distance/depth, 0.5, 1.5)
		c.Plot(cell(sx), cell(sy/aspect), shade, RGBAccent)
	}
}

// PlotGlobe draws projected globe dots; dots are in surface units with square pixels
func PlotGlobe(c *Canvas, dots []particle.Dot, aspect float64) {
	if aspect <= 0 {
		aspect = 1
	}
	for _, d := range dots {
		color := RGB{0, d.Blue, 255}
		c.Plot(cell(d.X), cell(d.Y/aspect), d.Alpha, color)
	}
}

// cell floors a surface coordinate to its cell index
func cell(v float64) int {
	return int(math.Floor(v))
}
