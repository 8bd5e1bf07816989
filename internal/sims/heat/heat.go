// Package heat implements the 2D explicit heat equation with fixed edge
// temperatures. It is the second consumer of the field toolkit next to
// the Gray-Scott model and doubles as a visual sanity check for the
// Dirichlet boundary path: heat bleeds in from the pinned edges until
// the interior reaches the steady state.
package heat

import (
	"image/color"

	"graypde/internal/core"
	"graypde/internal/field"
	"graypde/internal/render"
)

// World stores the temperature field for the heat simulation.
type World struct {
	cfg Config

	w, h int

	boundary field.Boundary
	temp     *field.Grid
	display  []uint8
}

// New returns a heat simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a heat world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Width < 1 {
		cfg.Width = 1
	}
	if cfg.Height < 1 {
		cfg.Height = 1
	}
	edges := cfg.Edges
	return &World{
		cfg:      cfg,
		w:        cfg.Width,
		h:        cfg.Height,
		boundary: field.Boundary{Kind: field.Dirichlet, Edges: &edges},
		display:  make([]uint8, cfg.Width*cfg.Height),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "heat" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the normalized temperature display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Temperature exposes the current temperature grid.
func (w *World) Temperature() *field.Grid { return w.temp }

// Palette exposes the color palette used for rendering the temperature.
func (w *World) Palette() []color.RGBA { return render.HeatPalette(256) }

// Reset zeroes the interior; the edge temperatures come entirely from
// the Dirichlet halo. The seed is unused, the system is deterministic.
func (w *World) Reset(seed int64) {
	interior := make([][]float64, w.h)
	for y := range interior {
		interior[y] = make([]float64, w.w)
	}
	w.temp, _ = field.Embed(interior, w.boundary)
	w.refreshDisplay()
}

// Step advances the temperature field one FTCS step.
func (w *World) Step() {
	if w.temp == nil {
		return
	}
	p := w.cfg.Params
	lap := field.Laplacian(w.temp, field.VonNeumann, p.Dx)
	next := field.NewGrid(w.temp.W, w.temp.H)
	for y := 1; y <= w.temp.H; y++ {
		tRow := w.temp.Row(y)
		lRow := lap.Row(y)
		nRow := next.Row(y)
		for x := 1; x <= w.temp.W; x++ {
			nRow[x] = tRow[x] + p.Dt*p.Alpha*lRow[x]
		}
	}
	if err := w.boundary.Apply(next); err != nil {
		return
	}
	w.temp = next
	w.refreshDisplay()
}

func (w *World) refreshDisplay() {
	copy(w.display, render.Normalize(w.temp.Interior()))
}

func init() {
	core.Register("heat", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
