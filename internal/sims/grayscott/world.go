package grayscott

import (
	"math/rand"

	"graypde/internal/core"
	"graypde/internal/field"
	"graypde/internal/render"
)

// World adapts the Gray-Scott model to the core.Sim contract for the
// interactive viewer: it owns the field pair, advances them one model
// step per tick and keeps a normalized display buffer of the killer
// field.
type World struct {
	cfg Config

	w, h int

	model   *Model
	feeder  *field.Grid
	killer  *field.Grid
	display []uint8

	rng *rand.Rand
}

// New returns a Gray-Scott simulation with the provided dimensions using
// defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Gray-Scott world configured from the provided
// options. Invalid numerical parameters fall back to the defaults so the
// viewer always has a runnable model.
func NewWithConfig(cfg Config) *World {
	model, err := NewModel(cfg.Params, cfg.Boundary, cfg.Stencil)
	if err != nil {
		defaults := DefaultConfig()
		cfg.Params = defaults.Params
		cfg.Boundary = defaults.Boundary
		model, _ = NewModel(cfg.Params, cfg.Boundary, cfg.Stencil)
	}
	if cfg.Width < 1 {
		cfg.Width = 1
	}
	if cfg.Height < 1 {
		cfg.Height = 1
	}
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		model:   model,
		display: make([]uint8, cfg.Width*cfg.Height),
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "grayscott" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the normalized killer-field display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Feeder exposes the current feeder grid.
func (w *World) Feeder() *field.Grid { return w.feeder }

// Killer exposes the current killer grid.
func (w *World) Killer() *field.Grid { return w.killer }

// FeederCells returns a freshly normalized 8-bit view of the feeder
// field for overlay rendering.
func (w *World) FeederCells() []uint8 {
	if w.feeder == nil {
		return nil
	}
	return render.Normalize(w.feeder.Interior())
}

// Reset prepares the initial fields: feeder at 1 everywhere, killer at 0
// except for randomly placed square seed patches.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)

	feeder := make([][]float64, w.h)
	killer := make([][]float64, w.h)
	for y := range feeder {
		feeder[y] = make([]float64, w.w)
		killer[y] = make([]float64, w.w)
		for x := range feeder[y] {
			feeder[y][x] = 1
		}
	}
	for p := 0; p < w.cfg.SeedCount; p++ {
		x0 := w.rng.Intn(w.w)
		y0 := w.rng.Intn(w.h)
		for dy := 0; dy < w.cfg.SeedSize; dy++ {
			yp := y0 + dy
			if yp >= w.h {
				break
			}
			for dx := 0; dx < w.cfg.SeedSize; dx++ {
				xp := x0 + dx
				if xp >= w.w {
					break
				}
				killer[yp][xp] = 1
				feeder[yp][xp] = 0.5
			}
		}
	}

	bc := w.model.Boundary()
	w.feeder, _ = field.Embed(feeder, bc)
	w.killer, _ = field.Embed(killer, bc)
	w.refreshDisplay()
}

// Step advances the coupled fields by one model step.
func (w *World) Step() {
	if w.feeder == nil || w.killer == nil {
		return
	}
	nf, nk, err := w.model.Step(w.feeder, w.killer)
	if err != nil {
		return
	}
	w.feeder, w.killer = nf, nk
	w.refreshDisplay()
}

func (w *World) refreshDisplay() {
	copy(w.display, render.Normalize(w.killer.Interior()))
}

func init() {
	core.Register("grayscott", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
