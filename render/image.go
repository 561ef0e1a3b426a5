package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/aspire/particle"
	"github.com/lixenwraith/aspire/vmath"
)

// ErrUnknownFormat reports an unsupported poster format
var ErrUnknownFormat = errors.New("unknown image format")

// minDotRadius keeps far points visible after downsampling (supersampled pixels)
const minDotRadius = 0.75

// ImageSink rasterizes frames into still images
// Drawing happens at supersample scale and is downsampled once per frame
type ImageSink struct {
	width, height int
	ss            int
	bg            RGB
}

// NewImageSink creates a sink; supersample below 1 is treated as 1
func NewImageSink(width, height, supersample int) *ImageSink {
	return &ImageSink{
		width:  max(width, 1),
		height: max(height, 1),
		ss:     max(supersample, 1),
		bg:     RGBBackground,
	}
}

func (s *ImageSink) Size() (int, int) { return s.width, s.height }

// RenderField draws the hero snapshot as soft additive dots
func (s *ImageSink) RenderField(snap particle.Snapshot, cam Camera) *image.RGBA {
	big := s.canvas()
	w, h := float64(big.Rect.Dx()), float64(big.Rect.Dy())

	for i := 0; i < snap.Count; i++ {
		world := snap.Group.Apply(vmath.At(snap.Positions, i))
		sx, sy, depth, ok := cam.Project(world, w, h)
		if !ok {
			continue
		}
		radius := max(snap.PointSize*cam.Scale(depth, h), minDotRadius*float64(s.ss))
		splat(big, sx, sy, radius, snap.Opacity, RGBAccent)
	}
	return s.downsample(big)
}

// RenderGlobe draws projected dots and the halo; dots are in output image coordinates
func (s *ImageSink) RenderGlobe(dots []particle.Dot, cx, cy, glow float64) *image.RGBA {
	big := s.canvas()
	k := float64(s.ss)

	if glow > 0 {
		halo(big, cx*k, cy*k, glow*k)
	}
	for _, d := range dots {
		radius := max(d.Size*k, minDotRadius*k)
		splat(big, d.X*k, d.Y*k, radius, d.Alpha, RGB{0, d.Blue, 255})
	}
	return s.downsample(big)
}

func (s *ImageSink) canvas() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width*s.ss, s.height*s.ss))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = s.bg.R
		img.Pix[i+1] = s.bg.G
		img.Pix[i+2] = s.bg.B
		img.Pix[i+3] = 0xff
	}
	return img
}

// downsample reduces the supersampled frame with CatmullRom filtering
func (s *ImageSink) downsample(big *image.RGBA) *image.RGBA {
	if s.ss == 1 {
		return big
	}
	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)
	return dst
}

// splat adds a disc with quadratic falloff, saturating per channel
func splat(img *image.RGBA, cx, cy, radius, alpha float64, color RGB) {
	if !(radius > 0) || !(alpha > 0) {
		return
	}
	b := img.Rect
	x0 := max(int(math.Floor(cx-radius)), b.Min.X)
	x1 := min(int(math.Ceil(cx+radius)), b.Max.X-1)
	y0 := max(int(math.Floor(cy-radius)), b.Min.Y)
	y1 := min(int(math.Ceil(cy+radius)), b.Max.Y-1)
	invR2 := 1 / (radius * radius)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d2 := (dx*dx + dy*dy) * invR2
			if d2 >= 1 {
				continue
			}
			a := alpha * (1 - d2)
			i := img.PixOffset(x, y)
			img.Pix[i] = clamp(float64(img.Pix[i]) + float64(color.R)*a)
			img.Pix[i+1] = clamp(float64(img.Pix[i+1]) + float64(color.G)*a)
			img.Pix[i+2] = clamp(float64(img.Pix[i+2]) + float64(color.B)*a)
		}
	}
}

// halo paints the faint radial gradient behind the globe
func halo(img *image.RGBA, cx, cy, radius float64) {
	inner := RGB{0, 160, 240}
	outer := RGB{0, 100, 200}
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / radius
			if d >= 1 {
				continue
			}
			var c RGB
			var a float64
			if d < 0.6 {
				c = inner
				a = vmath.Lerp(0.09, 0.04, d/0.6)
			} else {
				c = outer
				a = vmath.Lerp(0.04, 0, (d-0.6)/0.4)
			}
			i := img.PixOffset(x, y)
			bg := RGB{img.Pix[i], img.Pix[i+1], img.Pix[i+2]}
			out := c.Over(bg, a)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = out.R, out.G, out.B
		}
	}
}

// EncodeWebP writes img as lossless WebP
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// Encode dispatches on format name, "webp" or "png"
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		return EncodeWebP(w, img)
	case "png":
		return EncodePNG(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// FormatFor picks the format from a file extension, defaulting to webp
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return "png"
	}
	return "webp"
}
