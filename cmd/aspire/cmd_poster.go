package main

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/particle"
	"github.com/lixenwraith/aspire/render"
	"github.com/lixenwraith/aspire/transition"
)

var (
	posterScene       string
	posterOut         string
	posterFormat      string
	posterScroll      float64
	posterFrames      int
	posterWidth       int
	posterHeight      int
	posterSupersample int
)

var posterCmd = &cobra.Command{
	Use:   "poster",
	Short: "Render a scene headless to a WebP or PNG image",
	Long: `Poster steps a scene for a number of frames at a fixed scroll offset and writes
the last frame. The format follows --format, or the output extension.`,
	RunE: runPoster,
}

func init() {
	posterCmd.Flags().StringVar(&posterScene, "scene", "hero", "Scene to render (hero, globe)")
	posterCmd.Flags().StringVarP(&posterOut, "out", "o", "poster.webp", "Output file")
	posterCmd.Flags().StringVar(&posterFormat, "format", "", "Image format (webp, png); inferred from --out when empty")
	posterCmd.Flags().Float64Var(&posterScroll, "scroll", 0, "Scroll offset for the hero transition")
	posterCmd.Flags().IntVar(&posterFrames, "frames", parameter.PosterWarmFrames, "Frames to simulate before capture")
	posterCmd.Flags().IntVar(&posterWidth, "width", parameter.PosterWidth, "Image width")
	posterCmd.Flags().IntVar(&posterHeight, "height", parameter.PosterHeight, "Image height")
	posterCmd.Flags().IntVar(&posterSupersample, "supersample", parameter.PosterSupersample, "Supersampling factor")
}

func renderHeroPoster(sink *render.ImageSink) (image.Image, error) {
	w, h := sink.Size()
	fc, err := cfg.Hero.FieldConfig(transition.ClassFor(w), w, h)
	if err != nil {
		return nil, err
	}
	field, err := particle.NewField(fc)
	if err != nil {
		return nil, err
	}
	field.Driver().SetScroll(posterScroll)
	for range max(posterFrames, 1) {
		field.Frame()
	}
	return sink.RenderField(field.Snapshot(), render.DefaultCamera()), nil
}

func renderGlobePoster(sink *render.ImageSink) image.Image {
	w, h := sink.Size()
	g := particle.NewGlobe(cfg.Globe.Count, cfg.Globe.Seed)
	g.Resize(w, h)
	for range max(posterFrames, 1) {
		g.Frame()
	}
	cx, cy, glow := g.Glow()
	return sink.RenderGlobe(g.Project(nil), cx, cy, glow)
}

func runPoster(cmd *cobra.Command, args []string) error {
	if posterWidth <= 0 || posterHeight <= 0 {
		return fmt.Errorf("invalid size %dx%d", posterWidth, posterHeight)
	}
	format := posterFormat
	if format == "" {
		format = render.FormatFor(posterOut)
	}

	sink := render.NewImageSink(posterWidth, posterHeight, posterSupersample)

	var img image.Image
	switch posterScene {
	case "hero":
		var err error
		if img, err = renderHeroPoster(sink); err != nil {
			return err
		}
	case "globe", "notfound":
		img = renderGlobePoster(sink)
	default:
		return fmt.Errorf("unknown scene %q", posterScene)
	}

	f, err := os.Create(posterOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", posterOut, err)
	}
	if err := render.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("Poster written",
		zap.String("scene", posterScene),
		zap.String("path", posterOut),
		zap.String("format", format),
		zap.Int("frames", posterFrames))
	return nil
}
