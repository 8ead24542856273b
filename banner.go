package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-banner/simulation"
	"github.com/olivierh59500/particle-banner/theme"
)

// configDumpFile receives the effective config when S is pressed
const configDumpFile = "banner-config.json"

// Banner is the windowed host: the ebiten window is the banner
type Banner struct {
	sim      *simulation.Simulation
	theme    *theme.Theme
	prefs    *theme.Store
	resize   *simulation.Debouncer
	width    int
	height   int
	disabled bool // Narrow banners are left static
	debug    bool
}

// NewBanner creates the host and seeds the first population
func NewBanner(cfg simulation.Config, width, height int, th *theme.Theme, prefs *theme.Store) (*Banner, error) {
	sim, err := simulation.New(cfg, float64(width), float64(height))
	if err != nil {
		return nil, err
	}
	b := &Banner{
		sim:    sim,
		theme:  th,
		prefs:  prefs,
		resize: simulation.NewDebouncer(cfg.ResizeDebounce(), nil),
		width:  width,
		height: height,
	}
	if float64(width) <= cfg.MobileMaxWidth {
		b.disabled = true
		log.Printf("banner %dpx wide, animation disabled", width)
	}
	logPopulation(sim)
	return b, nil
}

func logPopulation(sim *simulation.Simulation) {
	st := sim.Stats()
	log.Printf("created %d particles (%d accent)", st.Particles, st.Accents)
}

// Update is called each tick by Ebitengine
func (b *Banner) Update() error {
	b.handleInput()

	if w, h, ok := b.resize.Poll(); ok {
		log.Println("resizing...")
		b.sim.Resize(w, h)
		log.Printf("banner resized to: %gx%g", w, h)
		logPopulation(b.sim)
	}

	if b.disabled {
		return nil
	}
	b.sim.Step()
	return nil
}

// handleInput processes keyboard and mouse input
func (b *Banner) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		b.toggleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		b.debug = !b.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		b.saveConfig(configDumpFile)
	}

	mx, my := ebiten.CursorPosition()
	if ebiten.IsFocused() && mx >= 0 && my >= 0 && mx < b.width && my < b.height {
		b.sim.SetCursor(float64(mx), float64(my))
	} else {
		b.sim.ClearCursor()
	}
}

func (b *Banner) toggleTheme() {
	mode := b.theme.Toggle()
	if b.prefs == nil {
		return
	}
	if err := theme.SaveMode(b.prefs, mode); err != nil {
		log.Printf("save theme: %v", err)
	}
}

// saveConfig writes the tuning in effect so it can be passed back with -config
func (b *Banner) saveConfig(filename string) {
	if err := simulation.SaveConfig(filename, b.sim.Config()); err != nil {
		log.Printf("save config: %v", err)
		return
	}
	log.Printf("config saved to %s", filename)
}

// Draw is called each frame by Ebitengine
func (b *Banner) Draw(screen *ebiten.Image) {
	palette := b.theme.Palette()
	screen.Fill(palette.Background)
	if b.disabled {
		return
	}

	b.sim.Render(&screenRenderer{dst: screen, palette: palette})

	if b.debug {
		st := b.sim.Stats()
		msg := fmt.Sprintf(
			"FPS: %0.1f\nparticles: %d (%d accent)\nlines: %d\ngrid: %dx%d\ngeneration: %d\ntheme: %s [T]",
			ebiten.ActualFPS(), st.Particles, st.Accents, st.Segments, st.GridCols, st.GridRows, st.Generation, b.theme.Mode())
		if b.resize.Pending() {
			msg += "\nresize pending"
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout tracks the window size; a change is applied once the debounce
// period has passed
func (b *Banner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != b.width || outsideHeight != b.height {
		b.width, b.height = outsideWidth, outsideHeight
		b.resize.Trigger(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// screenRenderer draws simulation output onto an ebiten image
type screenRenderer struct {
	dst     *ebiten.Image
	palette theme.Palette
}

func (r *screenRenderer) DrawSegment(seg simulation.Segment) {
	vector.StrokeLine(r.dst,
		float32(seg.From.X), float32(seg.From.Y),
		float32(seg.To.X), float32(seg.To.Y),
		r.palette.LineThickness, theme.Fade(r.palette.Line, seg.Opacity), true)
}

func (r *screenRenderer) DrawParticle(p *simulation.Particle) {
	col := r.palette.Particle
	if p.Accent {
		col = r.palette.Accent
	}
	vector.DrawFilledCircle(r.dst, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size/2), col, true)
}
