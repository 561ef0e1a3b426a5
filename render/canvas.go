package render

// Cell accumulates light landing in one surface cell
type Cell struct {
	Intensity float64
	Color     RGB
}

// Canvas is an additive intensity grid with dirty tracking
// Sinks plot into it, then flush to a screen or image
type Canvas struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewCanvas creates a canvas with the specified dimensions
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.cells) < size {
		c.cells = make([]Cell, size)
		c.touched = make([]bool, size)
	} else {
		c.cells = c.cells[:size]
		c.touched = c.touched[:size]
	}
	c.width = width
	c.height = height
	c.Clear()
}

// Clear resets all cells using exponential copy
func (c *Canvas) Clear() {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = Cell{}
	c.touched[0] = false
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
	for filled := 1; filled < len(c.touched); filled *= 2 {
		copy(c.touched[filled:], c.touched[:filled])
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Plot adds intensity of color at (x, y), out-of-bounds writes are dropped
func (c *Canvas) Plot(x, y int, intensity float64, color RGB) {
	if !c.inBounds(x, y) || !(intensity > 0) {
		return
	}
	idx := y*c.width + x
	cell := &c.cells[idx]
	cell.Color = cell.Color.Add(color.Scale(intensity))
	cell.Intensity += intensity
	c.touched[idx] = true
}

// At returns the cell at (x, y), zero when out of bounds
func (c *Canvas) At(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// Touched reports whether anything landed at (x, y) since Clear
func (c *Canvas) Touched(x, y int) bool {
	return c.inBounds(x, y) && c.touched[y*c.width+x]
}

func (c *Canvas) Size() (int, int) { return c.width, c.height }

// TouchedCount returns the number of lit cells
func (c *Canvas) TouchedCount() int {
	n := 0
	for _, t := range c.touched {
		if t {
			n++
		}
	}
	return n
}
