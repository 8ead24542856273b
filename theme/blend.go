package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fade scales c to the given opacity as a premultiplied colour, the form
// ebiten expects for translucent strokes.
func Fade(c color.RGBA, opacity float64) color.RGBA {
	a := clamp01(opacity)
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: uint8(float64(c.A)*a + 0.5),
	}
}

// Blend mixes fg over bg at opacity, for targets without an alpha channel
func Blend(bg, fg color.RGBA, opacity float64) color.RGBA {
	b, _ := colorful.MakeColor(bg)
	f, _ := colorful.MakeColor(fg)
	r, g, bl := b.BlendRgb(f, clamp01(opacity)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
