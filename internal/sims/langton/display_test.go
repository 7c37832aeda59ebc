package langton

import (
	"image/color"
	"testing"
)

func TestAntColorsAreDistinct(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ants = 8
	colors := buildAntColors(cfg)
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			if colors[i] == colors[j] {
				t.Fatalf("ants %d and %d share color %v", i, j, colors[i])
			}
		}
	}
}

func TestDisplayBlendsTowardBackground(t *testing.T) {
	cfg := testConfig()
	cfg.Width, cfg.Height = 8, 8
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i, c := range world.Colors() {
		if c != white {
			t.Fatalf("empty grid cell %d = %v, want background", i, c)
		}
	}

	idx := world.Grid().Index(3, 3)
	world.Grid().Paint(3, 3, 0)
	world.rebuildDisplay()
	if got := world.Colors()[idx]; got != world.antColors[0] {
		t.Fatalf("full intensity cell = %v, want ant color %v", got, world.antColors[0])
	}

	world.Grid().Intensities()[idx] = 0.5
	world.rebuildDisplay()
	got := world.Colors()[idx]
	ant := world.antColors[0]
	if !between(got.R, ant.R, 255) || !between(got.G, ant.G, 255) || !between(got.B, ant.B, 255) {
		t.Fatalf("half intensity cell %v not between ant color %v and background", got, ant)
	}

	world.Grid().Intensities()[idx] = 0.0001
	world.rebuildDisplay()
	if got := world.Colors()[idx]; got != white {
		t.Fatalf("sub-visible cell = %v, want background", got)
	}
}

func TestBlendEndpoints(t *testing.T) {
	base := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	overlay := color.RGBA{R: 10, G: 200, B: 60, A: 255}
	if got := blendRGBA(base, overlay, 0); got != base {
		t.Fatalf("weight 0 = %v, want base", got)
	}
	if got := blendRGBA(base, overlay, 1); got != overlay {
		t.Fatalf("weight 1 = %v, want overlay", got)
	}
}

func between(v, lo, hi uint8) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}
