package grayscott

import (
	"graypde/internal/field"
	"graypde/internal/render"
)

// Driver owns an end-to-end run: it embeds raw interior fields into
// halo-padded grids, records the initial state, then advances the model
// a fixed number of steps while recording into a History.
type Driver struct {
	model *Model
}

// NewDriver wraps a model.
func NewDriver(m *Model) *Driver {
	return &Driver{model: m}
}

// Run advances the field pair nIter steps. Both full fields are appended
// to the history every iteration; a normalized 8-bit frame of the killer
// field is appended for the initial state and for every nPerRecord-th
// iteration thereafter, so after the run
//
//	len(feeder) == len(killer) == nIter+1
//	len(frame)  == 1 + nIter/nPerRecord
//
// The computation is deterministic and single-pass; a failed run leaves
// no side effects beyond the history already appended.
func (d *Driver) Run(feeder, killer [][]float64, nIter, nPerRecord int) (*History, error) {
	if nIter < 0 {
		return nil, errInvalid("iteration count must not be negative")
	}
	if nPerRecord < 1 {
		return nil, errInvalid("record interval must be positive")
	}

	bc := d.model.Boundary()
	f, err := field.Embed(feeder, bc)
	if err != nil {
		return nil, err
	}
	k, err := field.Embed(killer, bc)
	if err != nil {
		return nil, err
	}
	if !f.SameShape(k) {
		return nil, field.ErrShapeMismatch
	}

	history := NewHistory()
	record(history, f, k, true)

	for iter := 1; iter <= nIter; iter++ {
		f, k, err = d.model.Step(f, k)
		if err != nil {
			return nil, err
		}
		record(history, f, k, iter%nPerRecord == 0)
	}
	return history, nil
}

func record(h *History, f, k *field.Grid, withFrame bool) {
	kInterior := k.Interior()
	h.AppendSnapshot(SeriesFeeder, Snapshot{W: f.W, H: f.H, Data: f.Interior()})
	h.AppendSnapshot(SeriesKiller, Snapshot{W: k.W, H: k.H, Data: kInterior})
	if withFrame {
		h.AppendFrame(SeriesFrame, Frame{W: k.W, H: k.H, Pix: render.Normalize(kInterior)})
	}
}
