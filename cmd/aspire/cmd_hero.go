package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/aspire/audio"
	"github.com/lixenwraith/aspire/config"
	"github.com/lixenwraith/aspire/event"
	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/particle"
	"github.com/lixenwraith/aspire/render"
	"github.com/lixenwraith/aspire/transition"
)

var (
	heroSound  bool
	heroWatch  bool
	heroMobile bool
	heroPreset string
)

var heroCmd = &cobra.Command{
	Use:   "hero",
	Short: "Preview the hero particle field in the terminal",
	Long: `Preview the hero field: the mouse pushes particles away, the wheel or arrow keys
scroll the sphere into the logo silhouette. Home/End jump to either end, q or Esc quits.`,
	Annotations: map[string]string{screenAnnotation: "true"},
	RunE:        runHero,
}

func init() {
	heroCmd.Flags().BoolVar(&heroSound, "sound", false, "Play a tone when the transition settles")
	heroCmd.Flags().BoolVar(&heroWatch, "watch", false, "Reload hero tuning when the config file changes")
	heroCmd.Flags().BoolVar(&heroMobile, "mobile", false, "Force the mobile viewport class")
	heroCmd.Flags().StringVar(&heroPreset, "preset", "", "Tuning preset (default, soft)")
}

// stat is one count-up counter shown under the field
type stat struct {
	value  int
	suffix string
	label  string
}

var heroStats = []stat{
	{500, "+", "clients guided"},
	{15, "+", "years of practice"},
	{98, "%", "would recommend"},
}

const statDuration = 2 * time.Second

type heroScene struct {
	field   *particle.Field
	cam     render.Camera
	player  *audio.Player
	tracker audio.Tracker
	tuning  chan particle.Tuning
	started time.Time
	log     *zap.Logger
}

func (h *heroScene) Mount(r *event.Router) { h.field.Mount(r) }
func (h *heroScene) Unmount()              { h.field.Unmount() }

func (h *heroScene) Frame() {
	select {
	case t := <-h.tuning:
		if err := h.field.Integrator().SetTuning(t); err != nil {
			h.log.Warn("Tuning rejected", zap.Error(err))
		} else {
			h.log.Info("Tuning applied", zap.Float64("friction", t.Friction), zap.Float64("push", t.PushStrength))
		}
	default:
	}

	h.field.Frame()

	if cue := h.tracker.Observe(h.field.Driver()); cue != audio.CueNone && h.player != nil && h.player.Enabled() {
		if err := h.player.Play(cue); err != nil {
			h.log.Debug("Cue failed", zap.Error(err))
		}
	}
}

func (h *heroScene) Draw(sink *render.TerminalSink, c *render.Canvas) {
	snap := h.field.Snapshot()
	render.PlotField(c, snap, h.cam, parameter.CellAspect)
	sink.Flush()

	d := h.field.Driver()
	shape := "sphere"
	if h.field.Store().HasAlt() {
		shape = "sphere>logo"
	}
	sink.Text(1, parameter.PreviewHUDRow, fmt.Sprintf("%s %s  scroll %3.0f/%3.0f  progress %.2f  particles %d",
		d.Class(), shape, d.Scroll(), d.ScrollMax(), snap.Progress, snap.Count), render.RGBAccent)

	_, rows := c.Size()
	elapsed := time.Since(h.started)
	x := 1
	for _, s := range heroStats {
		text := fmt.Sprintf("%d%s %s", transition.CountUp(s.value, elapsed, statDuration), s.suffix, s.label)
		sink.Text(x, rows-1, text, render.RGBAccent)
		x += len(text) + 4
	}
}

func runHero(cmd *cobra.Command, args []string) error {
	defer logPanic(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hero := cfg.Hero
	if heroPreset != "" {
		t, err := particle.Preset(heroPreset)
		if err != nil {
			return err
		}
		hero.Preset, hero.Tuning = heroPreset, t
	}

	var player *audio.Player
	if heroSound {
		player = audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			// Non-fatal, preview runs without sound
			logger.Warn("Audio initialization failed", zap.Error(err))
			player = nil
		} else {
			defer player.Cleanup()
		}
	}

	tuning := make(chan particle.Tuning, 1)
	if heroWatch {
		w, err := config.NewWatcher(configPath, func(c *config.Config) {
			select {
			case tuning <- c.Hero.Tuning:
			default:
			}
		}, logger.Named("watch"))
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
	}

	return runPreview(ctx, func(width, height int) (scene, error) {
		class := transition.ClassFor(width * parameter.CellPixelWidth)
		if heroMobile {
			class = transition.ClassMobile
		}
		fc, err := hero.FieldConfig(class, width, height)
		if err != nil {
			return nil, err
		}
		field, err := particle.NewField(fc)
		if err != nil {
			return nil, err
		}
		logger.Info("Hero mounted",
			zap.Stringer("class", class),
			zap.Int("particles", field.Store().Count()),
			zap.String("preset", hero.Preset))
		return &heroScene{
			field:   field,
			cam:     render.DefaultCamera(),
			player:  player,
			tuning:  tuning,
			started: time.Now(),
			log:     logger,
		}, nil
	})
}
