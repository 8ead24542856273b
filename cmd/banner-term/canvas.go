package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-banner/simulation"
	"github.com/olivierh59500/particle-banner/theme"
)

// Terminal cells are mapped onto banner pixels at this scale
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

const (
	lineRune     = '·'
	smallDotRune = '•'
	largeDotRune = '●'
	largeDotSize = 3.0 // Particles at least this big use largeDotRune
)

// contentSetter is the slice of tcell.Screen the canvas writes to
type contentSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type cell struct {
	r       rune
	fg      color.RGBA
	opacity float64 // Strongest line through the cell
	dot     bool
}

// cellCanvas rasterises one frame into terminal cells. Implements
// simulation.Renderer.
type cellCanvas struct {
	cols, rows int
	cells      []cell
	palette    theme.Palette
}

func newCellCanvas(cols, rows int) *cellCanvas {
	c := &cellCanvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the cell buffer
func (c *cellCanvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]cell, c.cols*c.rows)
}

// Reset clears every cell and adopts palette for the next frame
func (c *cellCanvas) Reset(palette theme.Palette) {
	c.palette = palette
	clear(c.cells)
}

// cellAt maps banner pixels to a cell, ok is false off-screen
func (c *cellCanvas) cellAt(x, y float64) (int, bool) {
	col := int(math.Floor(x / CellWidth))
	row := int(math.Floor(y / CellHeight))
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0, false
	}
	return row*c.cols + col, true
}

func (c *cellCanvas) DrawSegment(seg simulation.Segment) {
	x0, y0 := seg.From.X/CellWidth, seg.From.Y/CellHeight
	x1, y1 := seg.To.X/CellWidth, seg.To.Y/CellHeight
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := (x0 + (x1-x0)*t) * CellWidth
		py := (y0 + (y1-y0)*t) * CellHeight
		idx, ok := c.cellAt(px, py)
		if !ok {
			continue
		}
		cl := &c.cells[idx]
		if cl.dot || cl.opacity >= seg.Opacity {
			continue
		}
		cl.r = lineRune
		cl.opacity = seg.Opacity
		cl.fg = theme.Blend(c.palette.Background, c.palette.Line, seg.Opacity)
	}
}

func (c *cellCanvas) DrawParticle(p *simulation.Particle) {
	idx, ok := c.cellAt(p.Pos.X, p.Pos.Y)
	if !ok {
		return
	}
	cl := &c.cells[idx]
	cl.dot = true
	cl.r = smallDotRune
	if p.Size >= largeDotSize {
		cl.r = largeDotRune
	}
	cl.fg = c.palette.Particle
	if p.Accent {
		cl.fg = c.palette.Accent
	}
}

// Flush copies the frame to the terminal
func (c *cellCanvas) Flush(dst contentSetter) {
	bg := tcellColor(c.palette.Background)
	base := tcell.StyleDefault.Background(bg)
	for i, cl := range c.cells {
		x, y := i%c.cols, i/c.cols
		if cl.r == 0 {
			dst.SetContent(x, y, ' ', nil, base)
			continue
		}
		dst.SetContent(x, y, cl.r, nil, base.Foreground(tcellColor(cl.fg)))
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
