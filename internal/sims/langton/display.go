package langton

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"langton/internal/core"
)

// goldenAngle spaces ant hues so neighboring tags stay distinguishable no
// matter how many ants share the grid.
const goldenAngle = 137.50776405003785

// minVisibleIntensity is the point below which a trail cell renders as
// plain background; the renderer can skip such cells entirely.
const minVisibleIntensity = 1.0 / 255

// buildAntColors derives one hue per ant from the configured saturation and
// brightness, walking the hue circle by the golden angle.
func buildAntColors(cfg Config) []color.RGBA {
	colors := make([]color.RGBA, cfg.Ants)
	for i := range colors {
		hue := math.Mod(float64(i)*goldenAngle, 360)
		r, g, b := colorful.Hsv(hue, cfg.Saturation, cfg.Brightness).RGB255()
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// rebuildDisplay composites the trail grid into per-cell colors: each cell
// blends its last painter's hue toward the configured white as its
// intensity falls toward zero.
func (w *World) rebuildDisplay() {
	intensities := w.grid.Intensities()
	owners := w.grid.Owners()
	for i, v := range intensities {
		owner := owners[i]
		if v < minVisibleIntensity || owner == core.NoOwner {
			w.display[i] = w.white
			continue
		}
		w.display[i] = blendRGBA(w.white, w.antColors[owner], float64(v))
	}
}

// blendRGBA mixes base toward overlay by weight in [0,1].
func blendRGBA(base, overlay color.RGBA, weight float64) color.RGBA {
	if weight <= 0 {
		return base
	}
	if weight >= 1 {
		return overlay
	}
	inv := 1 - weight
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*weight + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*weight + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*weight + 0.5),
		A: 255,
	}
}
