// Package theme resolves the banner's light and dark colour palettes and
// remembers which one the viewer picked.
package theme

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/crazy3lf/colorconv"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mode is the persisted theme choice
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode maps a stored value to a mode. Anything but "dark" is light.
func ParseMode(s string) Mode {
	if Mode(s) == Dark {
		return Dark
	}
	return Light
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Scheme declares a palette with hex colours. An empty Accent is derived
// from Particle.
type Scheme struct {
	Background    string  `json:"background"`
	Particle      string  `json:"particle"`
	Accent        string  `json:"accent"`
	Line          string  `json:"line"`
	LineThickness float64 `json:"line_thickness"`
}

// Palette is a resolved Scheme ready for drawing
type Palette struct {
	Background    color.RGBA
	Particle      color.RGBA
	Accent        color.RGBA
	Line          color.RGBA
	LineThickness float32
}

var (
	LightScheme = Scheme{
		Background:    "#f4f6fa",
		Particle:      "#3b4252",
		Accent:        "#d08770",
		Line:          "#5e81ac",
		LineThickness: 1,
	}
	DarkScheme = Scheme{
		Background:    "#0e131f",
		Particle:      "#d8dee9",
		Line:          "#81a1c1",
		LineThickness: 0.8,
	}
)

// Schemes is the layout of a theme file
type Schemes struct {
	Light Scheme `json:"light"`
	Dark  Scheme `json:"dark"`
}

// DefaultSchemes returns the stock light and dark schemes
func DefaultSchemes() Schemes {
	return Schemes{Light: LightScheme, Dark: DarkScheme}
}

// LoadSchemes overlays a JSON theme file onto the stock schemes. Colours
// absent from the file keep their stock value; an explicit empty accent is
// derived from the particle colour.
func LoadSchemes(filename string) (Schemes, error) {
	sc := DefaultSchemes()
	data, err := os.ReadFile(filename)
	if err != nil {
		return sc, fmt.Errorf("read theme: %w", err)
	}
	if err := json.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parse theme %s: %w", filename, err)
	}
	if _, err := New(Light, sc.Light, sc.Dark); err != nil {
		return sc, fmt.Errorf("theme %s: %w", filename, err)
	}
	return sc, nil
}

// Resolve parses the hex colours of s
func Resolve(s Scheme) (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = parseHex("background", s.Background); err != nil {
		return p, err
	}
	if p.Particle, err = parseHex("particle", s.Particle); err != nil {
		return p, err
	}
	if p.Line, err = parseHex("line", s.Line); err != nil {
		return p, err
	}
	if s.Accent == "" {
		if p.Accent, err = complement(p.Particle); err != nil {
			return p, err
		}
	} else if p.Accent, err = parseHex("accent", s.Accent); err != nil {
		return p, err
	}

	p.LineThickness = float32(s.LineThickness)
	if p.LineThickness <= 0 {
		p.LineThickness = 1
	}
	return p, nil
}

func parseHex(name, hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%s colour %q: %w", name, hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// complement rotates the hue half way around the wheel
func complement(c color.RGBA) (color.RGBA, error) {
	h, s, v := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
	r, g, b, err := colorconv.HSVToRGB(math.Mod(h+180, 360), s, v)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("derive accent: %w", err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Theme holds both palettes and the active mode
type Theme struct {
	mode  Mode
	light Palette
	dark  Palette
}

// New resolves both schemes and starts in mode
func New(mode Mode, light, dark Scheme) (*Theme, error) {
	lp, err := Resolve(light)
	if err != nil {
		return nil, fmt.Errorf("light palette: %w", err)
	}
	dp, err := Resolve(dark)
	if err != nil {
		return nil, fmt.Errorf("dark palette: %w", err)
	}
	return &Theme{mode: mode, light: lp, dark: dp}, nil
}

// Load resolves a pair of schemes and starts in mode
func Load(mode Mode, sc Schemes) (*Theme, error) {
	return New(mode, sc.Light, sc.Dark)
}

// Default builds the stock light and dark palettes
func Default(mode Mode) *Theme {
	t, err := Load(mode, DefaultSchemes())
	if err != nil {
		panic(err)
	}
	return t
}

// Mode returns the active mode
func (t *Theme) Mode() Mode {
	return t.mode
}

// Palette returns the active palette
func (t *Theme) Palette() Palette {
	if t.mode == Dark {
		return t.dark
	}
	return t.light
}

// Toggle flips the mode and returns the new one
func (t *Theme) Toggle() Mode {
	t.mode = t.mode.Toggle()
	return t.mode
}
