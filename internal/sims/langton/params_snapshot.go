package langton

import (
	"strconv"

	"langton/internal/core"
)

// Parameters reports the current tunables for the HUD panel.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("w", "Surface width", cfg.Width),
				intParam("h", "Surface height", cfg.Height),
				int64Param("seed", "Seed", cfg.Seed),
				intParam("cell_size", "Cell size", cfg.CellSize),
				intParam("cell_border", "Cell border", cfg.CellBorder),
				intParam("ants", "Ants", cfg.Ants),
			},
		},
		{
			Name: "Speed",
			Params: []core.Parameter{
				floatParam("final_speed", "Final speed", cfg.FinalSpeed),
				intParam("speedup_frames", "Speedup frames", cfg.SpeedupFrames),
				floatParam("ease_power", "Ease power", cfg.EasePower),
			},
		},
		{
			Name: "Trail",
			Params: []core.Parameter{
				intParam("alpha_retention", "Alpha retention", int(cfg.AlphaRetention)),
				floatParam("dark_threshold", "Dark threshold", cfg.DarkThreshold),
			},
		},
		{
			Name: "Color",
			Params: []core.Parameter{
				floatParam("brightness", "Brightness", cfg.Brightness),
				floatParam("saturation", "Saturation", cfg.Saturation),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable at runtime: speed up to
// 1000 steps per frame, ramp up to 1500 frames, retention over the full
// byte range.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "final_speed", Label: "Final speed", Type: core.ParamTypeFloat, Step: 1, Min: 0.01, Max: 1000, HasMin: true, HasMax: true},
		{Key: "speedup_frames", Label: "Speedup frames", Type: core.ParamTypeInt, Step: 50, Min: 0, Max: 1500, HasMin: true, HasMax: true},
		{Key: "ease_power", Label: "Ease power", Type: core.ParamTypeFloat, Step: 0.25, Min: 0.25, Max: 16, HasMin: true, HasMax: true},
		{Key: "alpha_retention", Label: "Alpha retention", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255, HasMin: true, HasMax: true},
		{Key: "dark_threshold", Label: "Dark threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "brightness", Label: "Brightness", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "saturation", Label: "Saturation", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable, clamping into its domain.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "speedup_frames":
		w.cfg.SpeedupFrames = clampInt(value, 0, 1<<20)
		w.curve.SetRampFrames(w.cfg.SpeedupFrames)
	case "alpha_retention":
		w.cfg.AlphaRetention = uint8(clampInt(value, 0, 255))
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable, clamping into its
// domain. Color changes rebuild the ant palette and the display buffer so
// the next draw reflects them immediately.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "final_speed":
		w.cfg.FinalSpeed = clampFloat(value, 0.01, 1000)
		w.curve.SetFinal(w.cfg.FinalSpeed)
	case "ease_power":
		w.cfg.EasePower = clampFloat(value, 0.01, 64)
		w.curve.SetPower(w.cfg.EasePower)
	case "dark_threshold":
		w.cfg.DarkThreshold = clampFloat(value, 0, 1)
	case "brightness":
		w.cfg.Brightness = clampFloat(value, 0, 1)
		w.antColors = buildAntColors(w.cfg)
		w.rebuildDisplay()
	case "saturation":
		w.cfg.Saturation = clampFloat(value, 0, 1)
		w.antColors = buildAntColors(w.cfg)
		w.rebuildDisplay()
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
