package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-banner/simulation"
	"github.com/olivierh59500/particle-banner/theme"
)

func newTestBanner(t *testing.T) *termBanner {
	t.Helper()
	cfg := simulation.DefaultConfig()
	cfg.Seed = 77
	cfg.ResizeDebounceMs = 0
	b, err := newTermBanner(cfg, 40, 12, theme.Default(theme.Light), nil)
	if err != nil {
		t.Fatalf("newTermBanner failed: %v", err)
	}
	return b
}

func TestTermBannerMouseMovesCursor(t *testing.T) {
	b := newTestBanner(t)

	b.handleEvent(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	c := b.sim.Cursor()
	if c.Pos.X != 28 || c.Pos.Y != 40 {
		t.Errorf("Expected cursor at cell centre (28,40), got %v", c.Pos)
	}

	b.handleEvent(tcell.NewEventMouse(-1, 2, tcell.ButtonNone, tcell.ModNone))
	if b.sim.Cursor().Active(b.sim.Config().InteractionRadius) {
		t.Error("Expected cursor parked after leaving the screen")
	}
}

func TestTermBannerKeys(t *testing.T) {
	b := newTestBanner(t)

	if b.handleKey(tcell.KeyRune, 't') {
		t.Error("Theme toggle should not quit")
	}
	if b.theme.Mode() != theme.Dark {
		t.Errorf("Expected dark theme after toggle, got %s", b.theme.Mode())
	}
	for _, k := range []struct {
		key tcell.Key
		r   rune
	}{
		{tcell.KeyRune, 'q'},
		{tcell.KeyEscape, 0},
		{tcell.KeyCtrlC, 0},
	} {
		if !b.handleKey(k.key, k.r) {
			t.Errorf("Expected key %v/%q to quit", k.key, k.r)
		}
	}
}

func TestTermBannerToggleSavesPreference(t *testing.T) {
	b := newTestBanner(t)
	store, err := theme.OpenStore(filepath.Join(t.TempDir(), "prefs.json"))
	if err != nil {
		t.Fatal(err)
	}
	b.prefs = store

	b.toggleTheme()
	if v, _ := store.Get(theme.Key); v != "dark" {
		t.Errorf("Expected stored theme \"dark\", got %q", v)
	}
}

func TestTermBannerSavesConfig(t *testing.T) {
	wd, _ := os.Getwd()
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	b := newTestBanner(t)
	if b.handleKey(tcell.KeyRune, 's') {
		t.Error("Saving the config should not quit")
	}
	got, err := simulation.LoadConfig(filepath.Join(dir, configDumpFile))
	if err != nil {
		t.Fatalf("Expected a loadable config dump: %v", err)
	}
	if got != b.sim.Config() {
		t.Errorf("Expected %+v, got %+v", b.sim.Config(), got)
	}
}

func TestTermBannerResize(t *testing.T) {
	b := newTestBanner(t)
	screen := newFakeScreen()

	b.handleEvent(tcell.NewEventResize(30, 8))
	if b.cols != 30 || b.rows != 8 || len(b.canvas.cells) != 240 {
		t.Fatalf("Expected 30x8 canvas, got %dx%d with %d cells", b.cols, b.rows, len(b.canvas.cells))
	}
	if b.sim.Generation() != 1 {
		t.Fatal("Population rebuilt before the debounced frame")
	}

	b.frame(screen)

	if b.sim.Generation() != 2 {
		t.Errorf("Expected generation 2 after resize, got %d", b.sim.Generation())
	}
	bounds := b.sim.Bounds()
	if bounds.Width != 240 || bounds.Height != 128 {
		t.Errorf("Expected banner 240x128, got %+v", bounds)
	}
	if len(screen.cells) != 240 {
		t.Errorf("Expected every cell flushed, got %d", len(screen.cells))
	}

	// Same size again is not a resize
	b.handleEvent(tcell.NewEventResize(30, 8))
	b.frame(screen)
	if b.sim.Generation() != 2 {
		t.Errorf("Unchanged size rebuilt the population")
	}
}
