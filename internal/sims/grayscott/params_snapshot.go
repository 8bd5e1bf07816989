package grayscott

import (
	"strconv"

	"graypde/internal/core"
)

// Parameters captures the current tunables for the HUD panel.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.model.Params()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("seed_count", "Killer seed patches", w.cfg.SeedCount),
				intParam("seed_size", "Killer seed size", w.cfg.SeedSize),
			},
		},
		{
			Name: "Scheme",
			Params: []core.Parameter{
				floatParam("dt", "Time step", params.Dt),
				floatParam("dx", "Spatial step", params.Dx),
				stringParam("stencil", "Stencil", w.model.Stencil().String()),
				stringParam("boundary", "Boundary", w.model.Boundary().Kind.String()),
			},
		},
		{
			Name: "Reaction",
			Params: []core.Parameter{
				floatParam("diff_feeder", "Feeder diffusion", params.DiffFeeder),
				floatParam("diff_killer", "Killer diffusion", params.DiffKiller),
				floatParam("feed", "Feed rate", params.Feed),
				floatParam("kill", "Kill rate", params.Kill),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "feed", Label: "Feed rate", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 0.1, HasMin: true, HasMax: true},
		{Key: "kill", Label: "Kill rate", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 0.1, HasMin: true, HasMax: true},
		{Key: "diff_feeder", Label: "Feeder diffusion", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "diff_killer", Label: "Killer diffusion", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates one of the reaction parameters, clamping to
// the control bounds. The model is rebuilt so Params stays immutable for
// any given model instance.
func (w *World) SetFloatParameter(key string, value float64) bool {
	params := w.model.Params()
	clampTo := func(min, max float64) float64 {
		if value < min {
			return min
		}
		if value > max {
			return max
		}
		return value
	}
	switch key {
	case "feed":
		params.Feed = clampTo(0, 0.1)
	case "kill":
		params.Kill = clampTo(0, 0.1)
	case "diff_feeder":
		params.DiffFeeder = clampTo(0, 1)
	case "diff_killer":
		params.DiffKiller = clampTo(0, 1)
	default:
		return false
	}
	model, err := NewModel(params, w.model.Boundary(), w.model.Stencil())
	if err != nil {
		return false
	}
	w.model = model
	w.cfg.Params = params
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
