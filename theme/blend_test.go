package theme

import (
	"image/color"
	"testing"
)

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	tests := []struct {
		opacity float64
		want    color.RGBA
	}{
		{1, c},
		{0, color.RGBA{}},
		{0.5, color.RGBA{R: 100, G: 50, B: 25, A: 128}},
		{1.7, c},
	}
	for _, tt := range tests {
		if got := Fade(c, tt.opacity); got != tt.want {
			t.Errorf("Fade(%g) = %v, want %v", tt.opacity, got, tt.want)
		}
	}
}

func TestBlendEndpoints(t *testing.T) {
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	fg := color.RGBA{R: 250, G: 240, B: 230, A: 255}

	if got := Blend(bg, fg, 0); got != bg {
		t.Errorf("Blend at 0 = %v, want background %v", got, bg)
	}
	if got := Blend(bg, fg, 1); got != fg {
		t.Errorf("Blend at 1 = %v, want foreground %v", got, fg)
	}
	mid := Blend(bg, fg, 0.5)
	if mid.R < 125 || mid.R > 135 {
		t.Errorf("Expected red channel near 130 at half opacity, got %v", mid)
	}
}
