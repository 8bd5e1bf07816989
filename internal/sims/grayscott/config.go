package grayscott

import (
	"math"
	"strconv"

	"graypde/internal/field"
)

// Params holds the Gray-Scott reaction-diffusion coefficients. A Model
// never mutates its Params after construction.
type Params struct {
	// Dt is the integration time step, Dx the spatial step.
	Dt float64
	Dx float64

	// DiffFeeder and DiffKiller are the two species' diffusion rates.
	DiffFeeder float64
	DiffKiller float64

	// Feed replenishes the feeder toward 1; Kill removes the killer.
	Feed float64
	Kill float64
}

// StableStep returns the largest time step for which the explicit FTCS
// scheme is stable under the 2D von Neumann bound dx²/(4·D), using the
// faster-diffusing species.
func (p Params) StableStep() float64 {
	d := math.Max(p.DiffFeeder, p.DiffKiller)
	if d <= 0 {
		return math.Inf(1)
	}
	return p.Dx * p.Dx / (4 * d)
}

// Validate reports whether the parameters describe a runnable scheme.
func (p Params) Validate() error {
	if !(p.Dt > 0) || math.IsInf(p.Dt, 0) {
		return errInvalid("dt must be a positive finite value")
	}
	if !(p.Dx > 0) || math.IsInf(p.Dx, 0) {
		return errInvalid("dx must be a positive finite value")
	}
	for _, v := range []float64{p.DiffFeeder, p.DiffKiller, p.Feed, p.Kill} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return errInvalid("rates must be finite and non-negative")
		}
	}
	return nil
}

// Config controls the Gray-Scott simulation dimensions and scheme.
type Config struct {
	Width  int
	Height int

	Seed int64

	// SeedCount square patches of killer concentration, each
	// SeedSize cells wide, are placed at random on Reset.
	SeedCount int
	SeedSize  int

	Stencil  field.Stencil
	Boundary field.Boundary

	Params Params
}

// DefaultConfig returns the standard configuration: the reference
// Gray-Scott parameter set on a periodic domain with the Moore stencil.
func DefaultConfig() Config {
	return Config{
		Width:     256,
		Height:    256,
		Seed:      1337,
		SeedCount: 8,
		SeedSize:  6,
		Stencil:   field.Moore,
		Boundary:  field.Boundary{Kind: field.Periodic},
		Params: Params{
			Dt:         1,
			Dx:         1,
			DiffFeeder: 0.1,
			DiffKiller: 0.05,
			Feed:       0.0545,
			Kill:       0.062,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SeedCount = parsed
		}
	}
	if v, ok := cfg["seed_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SeedSize = parsed
		}
	}
	if v, ok := cfg["stencil"]; ok {
		switch v {
		case "moore":
			c.Stencil = field.Moore
		case "von-neumann":
			c.Stencil = field.VonNeumann
		}
	}
	if v, ok := cfg["boundary"]; ok {
		switch v {
		case "periodic":
			c.Boundary = field.Boundary{Kind: field.Periodic}
		case "neumann":
			c.Boundary = field.Boundary{Kind: field.Neumann}
		case "dirichlet":
			c.Boundary = field.Boundary{Kind: field.Dirichlet, Edges: &field.EdgeValues{}}
		}
	}
	if v, ok := cfg["dt"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Dt = parsed
		}
	}
	if v, ok := cfg["dx"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Dx = parsed
		}
	}
	if v, ok := cfg["diff_feeder"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DiffFeeder = parsed
		}
	}
	if v, ok := cfg["diff_killer"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DiffKiller = parsed
		}
	}
	if v, ok := cfg["feed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Feed = parsed
		}
	}
	if v, ok := cfg["kill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Kill = parsed
		}
	}
	return c
}
