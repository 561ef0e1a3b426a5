package main

import (
	"context"
	"errors"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/aspire/event"
	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/render"
)

var errNotTerminal = errors.New("preview needs an interactive terminal; use poster for headless output")

// scene is one animated instance driven by the preview loop
type scene interface {
	Mount(r *event.Router)
	Unmount()
	Frame()
	Draw(sink *render.TerminalSink, c *render.Canvas)
}

// sceneFactory builds a scene for the initial surface size
type sceneFactory func(width, height int) (scene, error)

// surfaceSize converts terminal cells into square-pixel surface units
func surfaceSize(cols, rows int) (int, int) {
	return cols, int(float64(rows) * parameter.CellAspect)
}

// pointerNDC maps a cell onto normalized device coordinates, Y up
func pointerNDC(x, y, cols, rows int) (float64, float64) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	nx := (float64(x)+0.5)/float64(cols)*2 - 1
	ny := 1 - (float64(y)+0.5)/float64(rows)*2
	return nx, ny
}

// inputEvent translates terminal input into router events; quit reports an exit request
func inputEvent(ev tcell.Event, cols, rows int) (out []event.Event, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return nil, true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return nil, true
			}
		case tcell.KeyDown, tcell.KeyPgDn:
			return []event.Event{event.ScrollBy(step(ev.Key()))}, false
		case tcell.KeyUp, tcell.KeyPgUp:
			return []event.Event{event.ScrollBy(-step(ev.Key()))}, false
		case tcell.KeyHome:
			return []event.Event{event.ScrollTo(0)}, false
		case tcell.KeyEnd:
			return []event.Event{event.ScrollTo(math.Inf(1))}, false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		nx, ny := pointerNDC(x, y, cols, rows)
		out = append(out, event.PointerAt(nx, ny))
		switch {
		case ev.Buttons()&tcell.WheelDown != 0:
			out = append(out, event.ScrollBy(parameter.ScrollStep))
		case ev.Buttons()&tcell.WheelUp != 0:
			out = append(out, event.ScrollBy(-parameter.ScrollStep))
		}
		return out, false

	case *tcell.EventFocus:
		if !ev.Focused {
			return []event.Event{event.PointerLeft()}, false
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		sw, sh := surfaceSize(w, h)
		return []event.Event{event.Resized(sw, sh)}, false
	}
	return nil, false
}

func step(k tcell.Key) float64 {
	if k == tcell.KeyPgDn || k == tcell.KeyPgUp {
		return parameter.ScrollStep * 5
	}
	return parameter.ScrollStep
}

// runPreview owns the screen until ctx ends or the user quits
func runPreview(ctx context.Context, build sceneFactory) (err error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
		screen.Fini()
	}()

	cols, rows := screen.Size()
	sc, err := build(surfaceSize(cols, rows))
	if err != nil {
		return err
	}

	router := event.NewRouter()
	sc.Mount(router)
	defer sc.Unmount()
	defer func() {
		if logger == nil {
			return
		}
		merged, dropped := router.QueueStats()
		logger.Debug("Preview input", zap.Uint64("merged", merged), zap.Uint64("dropped", dropped))
	}()

	sink := render.NewTerminalSink(screen)

	done := make(chan struct{})
	defer close(done)
	input := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case input <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-input:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				cols, rows = screen.Size()
			}
			evs, quit := inputEvent(ev, cols, rows)
			if quit {
				return nil
			}
			for _, e := range evs {
				router.Push(e)
			}

		case <-ticker.C:
			router.DispatchAll()
			sc.Frame()
			sc.Draw(sink, sink.Begin())
			sink.Show()
		}
	}
}

// logPanic records a recovered panic before it propagates
func logPanic(log *zap.Logger) {
	if r := recover(); r != nil {
		log.Error("Preview panic", zap.Any("panic", r), zap.Stack("stack"))
		_ = log.Sync()
		panic(r)
	}
}
