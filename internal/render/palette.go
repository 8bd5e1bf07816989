package render

import (
	"image/color"

	"github.com/crazy3lf/colorconv"
)

// HeatPalette builds an n-entry palette sweeping hue from blue (cold,
// low values) to red (hot, high values).
func HeatPalette(n int) []color.RGBA {
	if n < 2 {
		n = 2
	}
	palette := make([]color.RGBA, n)
	for i := range palette {
		t := float64(i) / float64(n-1)
		hue := 240 * (1 - t)
		r, g, b, _ := colorconv.HSVToRGB(hue, 1, 1)
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return palette
}

// GrayPalette builds an n-entry grayscale palette.
func GrayPalette(n int) []color.RGBA {
	if n < 2 {
		n = 2
	}
	palette := make([]color.RGBA, n)
	for i := range palette {
		v := uint8(i * 255 / (n - 1))
		palette[i] = color.RGBA{R: v, G: v, B: v, A: 0xff}
	}
	return palette
}
