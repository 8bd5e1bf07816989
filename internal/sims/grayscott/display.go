package grayscott

import (
	"image/color"

	"graypde/internal/render"
)

var heatPalette = render.HeatPalette(256)

// Palette exposes the color palette used for rendering the killer field.
func (w *World) Palette() []color.RGBA {
	return heatPalette
}
