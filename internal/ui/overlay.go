//go:build ebiten

package ui

import (
	"image/color"

	"graypde/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type feederProvider interface {
	FeederCells() []uint8
}

// Overlay draws an optional translucent view of the feeder species on
// top of the killer-field heatmap.
type Overlay struct {
	sim   core.Sim
	scale int

	showFeeder bool

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the feeder view on key press.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.showFeeder = !o.showFeeder
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.showFeeder {
		return
	}
	provider, ok := o.sim.(feederProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total <= 0 {
		return
	}
	cells := provider.FeederCells()
	if len(cells) != total {
		return
	}

	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	tint := color.RGBA{R: 64, G: 164, B: 223}
	for i, c := range cells {
		base := i * 4
		alpha := uint16(c) * 180 / 255
		o.maskBuf[base+0] = uint8(uint16(tint.R) * alpha / 255)
		o.maskBuf[base+1] = uint8(uint16(tint.G) * alpha / 255)
		o.maskBuf[base+2] = uint8(uint16(tint.B) * alpha / 255)
		o.maskBuf[base+3] = uint8(alpha)
	}
	o.maskImg.WritePixels(o.maskBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
