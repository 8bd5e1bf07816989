package heat

import (
	"strconv"

	"graypde/internal/field"
)

// Params holds the heat equation coefficients.
type Params struct {
	// Alpha is the thermal diffusivity.
	Alpha float64
	Dt    float64
	Dx    float64
}

// Config controls the heat simulation dimensions and edge temperatures.
type Config struct {
	Width  int
	Height int

	// Edges are the fixed Dirichlet temperatures, one per side.
	Edges field.EdgeValues

	Params Params
}

// DefaultConfig returns a hot-left-edge configuration with a time step
// inside the explicit stability bound dx²/(4·alpha).
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Edges:  field.EdgeValues{Left: 100},
		Params: Params{Alpha: 1, Dt: 0.2, Dx: 1},
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
	if v, ok := cfg["alpha"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Alpha = parsed
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
	for key, edge := range map[string]*float64{
		"edge_top":    &c.Edges.Top,
		"edge_bottom": &c.Edges.Bottom,
		"edge_left":   &c.Edges.Left,
		"edge_right":  &c.Edges.Right,
	} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*edge = parsed
			}
		}
	}
	return c
}
