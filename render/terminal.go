package render

import (
	"github.com/gdamore/tcell/v2"
)

// glyphRamp orders glyphs from faint to dense
var glyphRamp = []rune(" .:-=+*#%@")

// rampStep is the accumulated intensity covered by one glyph step
const rampStep = 0.35

// TerminalSink flushes a canvas into a tcell screen
type TerminalSink struct {
	screen tcell.Screen
	canvas *Canvas
	bg     tcell.Style
}

// NewTerminalSink wraps an initialized screen
func NewTerminalSink(screen tcell.Screen) *TerminalSink {
	w, h := screen.Size()
	return &TerminalSink{
		screen: screen,
		canvas: NewCanvas(w, h),
		bg:     tcell.StyleDefault.Background(toColor(RGBBackground)),
	}
}

// Begin prepares a cleared canvas sized to the screen
func (t *TerminalSink) Begin() *Canvas {
	w, h := t.screen.Size()
	if cw, ch := t.canvas.Size(); cw != w || ch != h {
		t.canvas.Resize(w, h)
	} else {
		t.canvas.Clear()
	}
	return t.canvas
}

// Flush writes every cell of the canvas to the screen without showing it
func (t *TerminalSink) Flush() {
	w, h := t.canvas.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !t.canvas.Touched(x, y) {
				t.screen.SetContent(x, y, ' ', nil, t.bg)
				continue
			}
			cell := t.canvas.At(x, y)
			style := t.bg.Foreground(toColor(cell.Color))
			t.screen.SetContent(x, y, Glyph(cell.Intensity), nil, style)
		}
	}
}

// Text draws a single-line overlay, clipped to the screen
func (t *TerminalSink) Text(x, y int, s string, color RGB) {
	w, h := t.screen.Size()
	if y < 0 || y >= h {
		return
	}
	style := t.bg.Foreground(toColor(color))
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			t.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// Show presents the frame
func (t *TerminalSink) Show() {
	t.screen.Show()
}

// Glyph maps accumulated intensity onto the ramp
func Glyph(intensity float64) rune {
	if !(intensity > 0) {
		return glyphRamp[0]
	}
	idx := 1 + int(intensity/rampStep)
	if idx >= len(glyphRamp) {
		idx = len(glyphRamp) - 1
	}
	return glyphRamp[idx]
}

func toColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
