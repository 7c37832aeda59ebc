package langton

import (
	"fmt"
	"math"
	"strconv"

	"langton/internal/core"
)

// maxAnts keeps ant tags inside a uint8 with core.NoOwner reserved.
const maxAnts = 254

// Config holds every tunable for the ant simulation. Width and Height are
// the rendering surface size in pixels; the grid dimensions derive from them
// and CellSize.
type Config struct {
	Width  int
	Height int
	Seed   int64

	CellSize   int
	CellBorder int

	Ants        int
	StartX      float64
	StartY      float64
	StartJitter int

	AlphaRetention uint8
	DarkThreshold  float64

	FinalSpeed    float64
	SpeedupFrames int
	EasePower     float64

	Brightness float64
	Saturation float64

	WhiteR uint8
	WhiteG uint8
	WhiteB uint8

	Debug bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          1280,
		Height:         960,
		Seed:           1337,
		CellSize:       10,
		CellBorder:     1,
		Ants:           1,
		StartX:         0.80,
		StartY:         0.75,
		StartJitter:    0,
		AlphaRetention: 250,
		DarkThreshold:  0.5,
		FinalSpeed:     12,
		SpeedupFrames:  1300,
		EasePower:      4,
		Brightness:     0.95,
		Saturation:     0.85,
		WhiteR:         255,
		WhiteG:         255,
		WhiteB:         255,
	}
}

// GridSize reports the grid dimensions in cells: the surface divided by the
// cell size, rounded up so the trail covers the whole visible area.
func (c Config) GridSize() core.Size {
	return core.Size{
		W: (c.Width + c.CellSize - 1) / c.CellSize,
		H: (c.Height + c.CellSize - 1) / c.CellSize,
	}
}

// Validate rejects configurations whose fields are outside their domain.
// FromMap clamps everything it parses, so configs built that way always
// pass; hand-built configs fail here before a World is constructed.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("langton: surface size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("langton: cell_size must be positive, got %d", c.CellSize)
	}
	if c.CellBorder < 0 || c.CellBorder >= c.CellSize {
		return fmt.Errorf("langton: cell_border must be in [0,%d), got %d", c.CellSize, c.CellBorder)
	}
	if c.Ants < 1 || c.Ants > maxAnts {
		return fmt.Errorf("langton: ants must be in [1,%d], got %d", maxAnts, c.Ants)
	}
	if c.StartX < 0 || c.StartX > 1 || c.StartY < 0 || c.StartY > 1 {
		return fmt.Errorf("langton: start position must be normalized to [0,1], got (%g,%g)", c.StartX, c.StartY)
	}
	if c.StartJitter < 0 {
		return fmt.Errorf("langton: start_jitter must be non-negative, got %d", c.StartJitter)
	}
	if c.DarkThreshold < 0 || c.DarkThreshold > 1 {
		return fmt.Errorf("langton: dark_threshold must be in [0,1], got %g", c.DarkThreshold)
	}
	if c.FinalSpeed <= 0 || math.IsNaN(c.FinalSpeed) || math.IsInf(c.FinalSpeed, 0) {
		return fmt.Errorf("langton: final_speed must be a positive finite number, got %g", c.FinalSpeed)
	}
	if c.SpeedupFrames < 0 {
		return fmt.Errorf("langton: speedup_frames must be non-negative, got %d", c.SpeedupFrames)
	}
	if c.EasePower <= 0 || math.IsNaN(c.EasePower) || math.IsInf(c.EasePower, 0) {
		return fmt.Errorf("langton: ease_power must be a positive finite number, got %g", c.EasePower)
	}
	if c.Brightness < 0 || c.Brightness > 1 {
		return fmt.Errorf("langton: brightness must be in [0,1], got %g", c.Brightness)
	}
	if c.Saturation < 0 || c.Saturation > 1 {
		return fmt.Errorf("langton: saturation must be in [0,1], got %g", c.Saturation)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Values that fail to parse are ignored; parsed values are clamped into
// their domain rather than silently misread.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := parseInt(cfg, "w"); ok {
		c.Width = clampInt(v, 1, 1<<14)
	}
	if v, ok := parseInt(cfg, "h"); ok {
		c.Height = clampInt(v, 1, 1<<14)
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := parseInt(cfg, "cell_size"); ok {
		c.CellSize = clampInt(v, 1, 256)
	}
	if v, ok := parseInt(cfg, "cell_border"); ok {
		c.CellBorder = clampInt(v, 0, c.CellSize-1)
	}
	if c.CellBorder >= c.CellSize {
		c.CellBorder = c.CellSize - 1
	}
	if v, ok := parseInt(cfg, "ants"); ok {
		c.Ants = clampInt(v, 1, maxAnts)
	}
	if v, ok := parseFloat(cfg, "start_x"); ok {
		c.StartX = clampFloat(v, 0, 1)
	}
	if v, ok := parseFloat(cfg, "start_y"); ok {
		c.StartY = clampFloat(v, 0, 1)
	}
	if v, ok := parseInt(cfg, "start_jitter"); ok {
		c.StartJitter = clampInt(v, 0, 1<<10)
	}
	if v, ok := parseInt(cfg, "alpha_retention"); ok {
		c.AlphaRetention = uint8(clampInt(v, 0, 255))
	}
	if v, ok := parseFloat(cfg, "dark_threshold"); ok {
		c.DarkThreshold = clampFloat(v, 0, 1)
	}
	if v, ok := parseFloat(cfg, "final_speed"); ok && !math.IsNaN(v) {
		c.FinalSpeed = clampFloat(v, 0.01, 1000)
	}
	if v, ok := parseInt(cfg, "speedup_frames"); ok {
		c.SpeedupFrames = clampInt(v, 0, 1<<20)
	}
	if v, ok := parseFloat(cfg, "ease_power"); ok && !math.IsNaN(v) {
		c.EasePower = clampFloat(v, 0.01, 64)
	}
	if v, ok := parseFloat(cfg, "brightness"); ok {
		c.Brightness = clampFloat(v, 0, 1)
	}
	if v, ok := parseFloat(cfg, "saturation"); ok {
		c.Saturation = clampFloat(v, 0, 1)
	}
	if v, ok := parseInt(cfg, "white_r"); ok {
		c.WhiteR = uint8(clampInt(v, 0, 255))
	}
	if v, ok := parseInt(cfg, "white_g"); ok {
		c.WhiteG = uint8(clampInt(v, 0, 255))
	}
	if v, ok := parseInt(cfg, "white_b"); ok {
		c.WhiteB = uint8(clampInt(v, 0, 255))
	}
	if v, ok := cfg["debug"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Debug = parsed
		}
	}
	return c
}

func parseInt(cfg map[string]string, key string) (int, bool) {
	v, ok := cfg[key]
	if !ok {
		return 0, false
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func parseFloat(cfg map[string]string, key string) (float64, bool) {
	v, ok := cfg[key]
	if !ok {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
