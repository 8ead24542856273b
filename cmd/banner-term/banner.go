package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-banner/simulation"
	"github.com/olivierh59500/particle-banner/theme"
)

// configDumpFile receives the effective config when 's' is pressed
const configDumpFile = "banner-config.json"

// termBanner hosts the simulation in a terminal. All of its state is owned
// by the goroutine running the frame loop.
type termBanner struct {
	sim        *simulation.Simulation
	theme      *theme.Theme
	prefs      *theme.Store
	resize     *simulation.Debouncer
	canvas     *cellCanvas
	cols, rows int
}

func newTermBanner(cfg simulation.Config, cols, rows int, th *theme.Theme, prefs *theme.Store) (*termBanner, error) {
	sim, err := simulation.New(cfg, float64(cols)*CellWidth, float64(rows)*CellHeight)
	if err != nil {
		return nil, err
	}
	st := sim.Stats()
	log.Printf("created %d particles (%d accent) for %dx%d cells", st.Particles, st.Accents, cols, rows)
	return &termBanner{
		sim:    sim,
		theme:  th,
		prefs:  prefs,
		resize: simulation.NewDebouncer(cfg.ResizeDebounce(), nil),
		canvas: newCellCanvas(cols, rows),
		cols:   cols,
		rows:   rows,
	}, nil
}

// handleEvent applies one input event and reports whether to quit
func (b *termBanner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return b.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		x, y := ev.Position()
		if x < 0 || y < 0 || x >= b.cols || y >= b.rows {
			b.sim.ClearCursor()
			return false
		}
		// Aim at the centre of the cell
		b.sim.SetCursor((float64(x)+0.5)*CellWidth, (float64(y)+0.5)*CellHeight)

	case *tcell.EventFocus:
		if !ev.Focused {
			b.sim.ClearCursor()
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		if cols == b.cols && rows == b.rows {
			return false
		}
		// The cell buffer follows at once, the population after the quiet period
		b.cols, b.rows = cols, rows
		b.canvas.Resize(cols, rows)
		b.resize.Trigger(float64(cols)*CellWidth, float64(rows)*CellHeight)
	}
	return false
}

func (b *termBanner) handleKey(key tcell.Key, r rune) bool {
	switch {
	case key == tcell.KeyEscape, key == tcell.KeyCtrlC:
		return true
	case key == tcell.KeyRune && r == 'q':
		return true
	case key == tcell.KeyRune && r == 't':
		b.toggleTheme()
	case key == tcell.KeyRune && r == 's':
		b.saveConfig(configDumpFile)
	}
	return false
}

func (b *termBanner) saveConfig(filename string) {
	if err := simulation.SaveConfig(filename, b.sim.Config()); err != nil {
		log.Printf("save config: %v", err)
		return
	}
	log.Printf("config saved to %s", filename)
}

func (b *termBanner) toggleTheme() {
	mode := b.theme.Toggle()
	log.Printf("theme: %s", mode)
	if b.prefs == nil {
		return
	}
	if err := theme.SaveMode(b.prefs, mode); err != nil {
		log.Printf("save theme: %v", err)
	}
}

// frame steps the simulation once and draws it to dst
func (b *termBanner) frame(dst contentSetter) {
	if w, h, ok := b.resize.Poll(); ok {
		b.sim.Resize(w, h)
		st := b.sim.Stats()
		log.Printf("resized to %gx%g, created %d particles (%d accent)", w, h, st.Particles, st.Accents)
	}
	b.sim.Step()
	b.canvas.Reset(b.theme.Palette())
	b.sim.Render(b.canvas)
	b.canvas.Flush(dst)
}
