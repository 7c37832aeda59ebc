package langton

import "testing"

func TestDefaultConfigMatchesClassicRun(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FinalSpeed != 12 {
		t.Fatalf("final speed = %g, want 12", cfg.FinalSpeed)
	}
	if cfg.SpeedupFrames != 1300 {
		t.Fatalf("speedup frames = %d, want 1300", cfg.SpeedupFrames)
	}
	if cfg.StartX != 0.80 || cfg.StartY != 0.75 {
		t.Fatalf("start = (%g,%g), want (0.80,0.75)", cfg.StartX, cfg.StartY)
	}
	if cfg.AlphaRetention != 250 {
		t.Fatalf("alpha retention = %d, want 250", cfg.AlphaRetention)
	}
	if cfg.CellSize != 10 {
		t.Fatalf("cell size = %d, want 10", cfg.CellSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestGridSizeRoundsUp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 1280, 960, 10
	if s := cfg.GridSize(); s.W != 128 || s.H != 96 {
		t.Fatalf("grid = %dx%d, want 128x96", s.W, s.H)
	}

	cfg.Width = 1285
	if s := cfg.GridSize(); s.W != 129 {
		t.Fatalf("grid width = %d, want 129 (partial cell still rendered)", s.W)
	}
}

func TestFromMapClampsAndIgnoresGarbage(t *testing.T) {
	cfg := FromMap(map[string]string{
		"start_x":         "1.7",
		"alpha_retention": "300",
		"ants":            "0",
		"final_speed":     "garbage",
		"cell_size":       "10",
		"cell_border":     "99",
		"seed":            "42",
	})
	if cfg.StartX != 1 {
		t.Fatalf("start_x not clamped: %g", cfg.StartX)
	}
	if cfg.AlphaRetention != 255 {
		t.Fatalf("alpha_retention not clamped: %d", cfg.AlphaRetention)
	}
	if cfg.Ants != 1 {
		t.Fatalf("ants not clamped: %d", cfg.Ants)
	}
	if cfg.FinalSpeed != DefaultConfig().FinalSpeed {
		t.Fatalf("unparseable final_speed should keep the default, got %g", cfg.FinalSpeed)
	}
	if cfg.CellBorder >= cfg.CellSize {
		t.Fatalf("cell_border %d not clamped below cell_size %d", cfg.CellBorder, cfg.CellSize)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed = %d, want 42", cfg.Seed)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("clamped config should validate: %v", err)
	}
}

func TestFromMapNilYieldsDefaults(t *testing.T) {
	if got, want := FromMap(nil), DefaultConfig(); got != want {
		t.Fatalf("FromMap(nil) = %+v, want defaults", got)
	}
}

func TestValidateRejectsOutOfDomain(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"no ants", func(c *Config) { c.Ants = 0 }},
		{"too many ants", func(c *Config) { c.Ants = maxAnts + 1 }},
		{"start out of range", func(c *Config) { c.StartX = 1.5 }},
		{"negative jitter", func(c *Config) { c.StartJitter = -1 }},
		{"threshold out of range", func(c *Config) { c.DarkThreshold = 1.5 }},
		{"zero speed", func(c *Config) { c.FinalSpeed = 0 }},
		{"negative ramp", func(c *Config) { c.SpeedupFrames = -1 }},
		{"zero ease power", func(c *Config) { c.EasePower = 0 }},
		{"brightness out of range", func(c *Config) { c.Brightness = 2 }},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}
}
