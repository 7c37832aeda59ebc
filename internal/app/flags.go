package app

import (
	"flag"
	"image/color"
	"strconv"

	"langton/internal/sims/langton"
)

// Options configures the GUI game wrapper.
type Options struct {
	SurfaceW   int
	SurfaceH   int
	CellSize   int
	CellBorder int
	Background color.RGBA
	HUDWidth   int
	Debug      bool
	Seed       int64
}

// Flags carries the command-line configuration shared by the GUI and
// headless binaries. Defaults mirror langton.DefaultConfig.
type Flags struct {
	Width    int
	Height   int
	TPS      int
	HUDWidth int
	Seed     int64

	CellSize   int
	CellBorder int

	Ants        int
	StartX      float64
	StartY      float64
	StartJitter int

	AlphaRetention int
	DarkThreshold  float64

	FinalSpeed    float64
	SpeedupFrames int
	EasePower     float64

	Brightness float64
	Saturation float64
	WhiteR     int
	WhiteG     int
	WhiteB     int

	Debug bool
}

// NewFlags returns a Flags populated with the simulation defaults.
func NewFlags() *Flags {
	d := langton.DefaultConfig()
	return &Flags{
		Width:          d.Width,
		Height:         d.Height,
		TPS:            60,
		HUDWidth:       0,
		Seed:           d.Seed,
		CellSize:       d.CellSize,
		CellBorder:     d.CellBorder,
		Ants:           d.Ants,
		StartX:         d.StartX,
		StartY:         d.StartY,
		StartJitter:    d.StartJitter,
		AlphaRetention: int(d.AlphaRetention),
		DarkThreshold:  d.DarkThreshold,
		FinalSpeed:     d.FinalSpeed,
		SpeedupFrames:  d.SpeedupFrames,
		EasePower:      d.EasePower,
		Brightness:     d.Brightness,
		Saturation:     d.Saturation,
		WhiteR:         int(d.WhiteR),
		WhiteG:         int(d.WhiteG),
		WhiteB:         int(d.WhiteB),
		Debug:          d.Debug,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.IntVar(&f.Width, "width", f.Width, "surface width in pixels")
	fs.IntVar(&f.Height, "height", f.Height, "surface height in pixels")
	fs.IntVar(&f.TPS, "tps", f.TPS, "frames per second")
	fs.IntVar(&f.HUDWidth, "panel", f.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for spawn jitter and resets")
	fs.IntVar(&f.CellSize, "cell-size", f.CellSize, "pixels per grid cell")
	fs.IntVar(&f.CellBorder, "cell-border", f.CellBorder, "pixels of border between cells")
	fs.IntVar(&f.Ants, "ants", f.Ants, "number of ants")
	fs.Float64Var(&f.StartX, "start-x", f.StartX, "normalized spawn x in [0,1]")
	fs.Float64Var(&f.StartY, "start-y", f.StartY, "normalized spawn y in [0,1]")
	fs.IntVar(&f.StartJitter, "start-jitter", f.StartJitter, "max per-ant spawn offset in cells")
	fs.IntVar(&f.AlphaRetention, "alpha-retention", f.AlphaRetention, "trail intensity kept per tick, 0-255")
	fs.Float64Var(&f.DarkThreshold, "dark-threshold", f.DarkThreshold, "intensity at which a cell counts as dark")
	fs.Float64Var(&f.FinalSpeed, "final-speed", f.FinalSpeed, "asymptotic steps per frame")
	fs.IntVar(&f.SpeedupFrames, "speedup-frames", f.SpeedupFrames, "frames over which speed ramps up")
	fs.Float64Var(&f.EasePower, "ease-power", f.EasePower, "exponent shaping the speed ramp")
	fs.Float64Var(&f.Brightness, "brightness", f.Brightness, "ant color brightness in [0,1]")
	fs.Float64Var(&f.Saturation, "saturation", f.Saturation, "ant color saturation in [0,1]")
	fs.IntVar(&f.WhiteR, "white-r", f.WhiteR, "background red component")
	fs.IntVar(&f.WhiteG, "white-g", f.WhiteG, "background green component")
	fs.IntVar(&f.WhiteB, "white-b", f.WhiteB, "background blue component")
	fs.BoolVar(&f.Debug, "debug", f.Debug, "start with the debug overlay visible")
}

// SimParams converts the flags into the sim's key/value configuration map.
func (f *Flags) SimParams() map[string]string {
	return map[string]string{
		"w":               strconv.Itoa(f.Width),
		"h":               strconv.Itoa(f.Height),
		"seed":            strconv.FormatInt(f.Seed, 10),
		"cell_size":       strconv.Itoa(f.CellSize),
		"cell_border":     strconv.Itoa(f.CellBorder),
		"ants":            strconv.Itoa(f.Ants),
		"start_x":         strconv.FormatFloat(f.StartX, 'f', -1, 64),
		"start_y":         strconv.FormatFloat(f.StartY, 'f', -1, 64),
		"start_jitter":    strconv.Itoa(f.StartJitter),
		"alpha_retention": strconv.Itoa(f.AlphaRetention),
		"dark_threshold":  strconv.FormatFloat(f.DarkThreshold, 'f', -1, 64),
		"final_speed":     strconv.FormatFloat(f.FinalSpeed, 'f', -1, 64),
		"speedup_frames":  strconv.Itoa(f.SpeedupFrames),
		"ease_power":      strconv.FormatFloat(f.EasePower, 'f', -1, 64),
		"brightness":      strconv.FormatFloat(f.Brightness, 'f', -1, 64),
		"saturation":      strconv.FormatFloat(f.Saturation, 'f', -1, 64),
		"white_r":         strconv.Itoa(f.WhiteR),
		"white_g":         strconv.Itoa(f.WhiteG),
		"white_b":         strconv.Itoa(f.WhiteB),
		"debug":           strconv.FormatBool(f.Debug),
	}
}

// GameOptions assembles the GUI wrapper options from the flags.
func (f *Flags) GameOptions() Options {
	return Options{
		SurfaceW:   f.Width,
		SurfaceH:   f.Height,
		CellSize:   f.CellSize,
		CellBorder: f.CellBorder,
		Background: color.RGBA{R: clampByte(f.WhiteR), G: clampByte(f.WhiteG), B: clampByte(f.WhiteB), A: 255},
		HUDWidth:   f.HUDWidth,
		Debug:      f.Debug,
		Seed:       f.Seed,
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
