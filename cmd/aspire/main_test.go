package main

import (
	"bytes"
	"database/sql"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aspire/contact"
	"github.com/lixenwraith/aspire/event"
	"github.com/lixenwraith/aspire/parameter"
)

func TestPointerNDC(t *testing.T) {
	tests := []struct {
		name       string
		x, y       int
		cols, rows int
		wantX      float64
		wantY      float64
	}{
		{"center of 2x2 quadrant", 1, 0, 2, 2, 0.5, 0.5},
		{"top left", 0, 0, 100, 50, -0.99, 0.98},
		{"empty surface", 3, 3, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := pointerNDC(tt.x, tt.y, tt.cols, tt.rows)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestInputEvent(t *testing.T) {
	_, quit := inputEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 80, 24)
	assert.True(t, quit)
	_, quit = inputEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 80, 24)
	assert.True(t, quit)

	evs, quit := inputEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), 80, 24)
	require.False(t, quit)
	require.Len(t, evs, 1)
	assert.Equal(t, event.ScrollBy(parameter.ScrollStep), evs[0])

	evs, _ = inputEvent(tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), 80, 24)
	require.Len(t, evs, 1)
	assert.Equal(t, -parameter.ScrollStep*5, evs[0].Y)

	evs, _ = inputEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), 80, 24)
	require.Len(t, evs, 1)
	assert.True(t, math.IsInf(evs[0].Y, 1))

	evs, _ = inputEvent(tcell.NewEventMouse(40, 12, tcell.WheelDown, tcell.ModNone), 80, 24)
	require.Len(t, evs, 2)
	assert.Equal(t, event.PointerMove, evs[0].Type)
	assert.Equal(t, event.ScrollBy(parameter.ScrollStep), evs[1])

	evs, _ = inputEvent(tcell.NewEventFocus(false), 80, 24)
	require.Len(t, evs, 1)
	assert.Equal(t, event.PointerLeave, evs[0].Type)

	evs, _ = inputEvent(tcell.NewEventResize(100, 30), 80, 24)
	require.Len(t, evs, 1)
	assert.Equal(t, event.Resized(100, 60), evs[0])

	evs, quit = inputEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 80, 24)
	assert.False(t, quit)
	assert.Empty(t, evs)
}

func TestFormatSubmissions(t *testing.T) {
	out := formatSubmissions(nil, 0)
	assert.Contains(t, out, "No submissions yet.")

	rec := contact.Record{ID: "a", CreatedAt: time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)}
	rec.FirstName = sql.NullString{String: "Ada", Valid: true}
	rec.LastName = sql.NullString{String: "Lovelace", Valid: true}
	rec.Email = sql.NullString{String: "ada@example.com", Valid: true}
	rec.Message = sql.NullString{String: "Looking for a career change", Valid: true}

	out = formatSubmissions([]contact.Record{rec}, 1)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "Looking for a career change")
	assert.Contains(t, out, "(1 stored)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPosterCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.png")

	_, err := execute(t, "poster", "--scene", "hero", "--out", path, "--width", "96", "--height", "54", "--frames", "3", "--supersample", "1")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())

	globe := filepath.Join(dir, "globe.webp")
	_, err = execute(t, "poster", "--scene", "globe", "--out", globe, "--width", "64", "--height", "64", "--frames", "2")
	require.NoError(t, err)
	data, err := os.ReadFile(globe)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("RIFF")))

	_, err = execute(t, "poster", "--scene", "cube", "--out", filepath.Join(dir, "x.png"))
	assert.Error(t, err)
}

func TestSubmissionsCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "contact.db")
	out, err := execute(t, "submissions", "--db", db)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "No submissions yet."), out)
}
