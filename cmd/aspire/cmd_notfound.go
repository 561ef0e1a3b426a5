package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/aspire/event"
	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/particle"
	"github.com/lixenwraith/aspire/render"
)

var notFoundCmd = &cobra.Command{
	Use:         "notfound",
	Short:       "Preview the not-found globe in the terminal",
	Annotations: map[string]string{screenAnnotation: "true"},
	RunE:        runNotFound,
}

type globeScene struct {
	globe *particle.Globe
	dots  []particle.Dot
}

func (g *globeScene) Mount(r *event.Router) { g.globe.Mount(r) }
func (g *globeScene) Unmount()              { g.globe.Unmount() }
func (g *globeScene) Frame()                { g.globe.Frame() }

func (g *globeScene) Draw(sink *render.TerminalSink, c *render.Canvas) {
	g.dots = g.globe.Project(g.dots[:0])
	render.PlotGlobe(c, g.dots, parameter.CellAspect)
	sink.Flush()

	cols, rows := c.Size()
	msg := parameter.PreviewNotFound
	sink.Text((cols-len(msg))/2, rows-2, msg, render.RGBAccent)
}

func runNotFound(cmd *cobra.Command, args []string) error {
	defer logPanic(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runPreview(ctx, func(width, height int) (scene, error) {
		g := particle.NewGlobe(cfg.Globe.Count, cfg.Globe.Seed)
		g.Resize(width, height)
		logger.Info("Globe mounted", zap.Int("particles", g.Count()), zap.Float64("radius", g.Radius()))
		return &globeScene{globe: g, dots: make([]particle.Dot, 0, g.Count())}, nil
	})
}
