package langton

import (
	"image/color"

	"langton/internal/core"
)

// World runs one or more ants over a shared trail grid. The grid is the
// only mutable shared state; ants never touch each other directly, and all
// sub-steps within a frame run sequentially in ant insertion order.
type World struct {
	cfg Config

	grid  *core.TrailGrid
	ants  []Ant
	curve *SpeedCurve

	tick     int
	substeps uint64
	lastRate float64

	display   []color.RGBA
	antColors []color.RGBA
	white     color.RGBA
}

// New returns a World for a surface of the given pixel size using defaults.
func New(width, height int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options. An
// out-of-domain configuration fails here; no partial world is ever built.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	size := cfg.GridSize()
	w := &World{
		cfg:     cfg,
		grid:    core.NewTrailGrid(size.W, size.H),
		curve:   NewSpeedCurve(cfg.FinalSpeed, cfg.SpeedupFrames, cfg.EasePower),
		display: make([]color.RGBA, size.W*size.H),
		white:   color.RGBA{R: cfg.WhiteR, G: cfg.WhiteG, B: cfg.WhiteB, A: 255},
	}
	w.antColors = buildAntColors(cfg)
	w.seedAnts(cfg.Seed)
	w.rebuildDisplay()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "langton" }

// Size reports the grid dimensions in cells.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Colors exposes the composited per-cell display buffer.
func (w *World) Colors() []color.RGBA { return w.display }

// Grid exposes the trail grid for tests and headless tooling.
func (w *World) Grid() *core.TrailGrid { return w.grid }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Tick reports the number of frames simulated since the last reset.
func (w *World) Tick() int { return w.tick }

// SubSteps reports the total ant transitions executed since the last reset.
func (w *World) SubSteps() uint64 { return w.substeps }

// EffectiveSpeed reports the sub-step rate targeted by the last frame.
func (w *World) EffectiveSpeed() float64 { return w.lastRate }

// Ants returns a copy of the current agent states in insertion order.
func (w *World) Ants() []Ant {
	out := make([]Ant, len(w.ants))
	copy(out, w.ants)
	return out
}

// AntMarkers describes the agents for debug overlays.
func (w *World) AntMarkers() []core.AntMarker {
	markers := make([]core.AntMarker, len(w.ants))
	for i, a := range w.ants {
		dx, dy := a.Heading.Delta()
		markers[i] = core.AntMarker{X: a.X, Y: a.Y, DX: dx, DY: dy, Color: w.antColors[i]}
	}
	return markers
}

// Reset rebuilds the initial state. A zero seed falls back to the
// configured one, so resets replay the original run exactly.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.grid.Clear()
	w.curve = NewSpeedCurve(w.cfg.FinalSpeed, w.cfg.SpeedupFrames, w.cfg.EasePower)
	w.tick = 0
	w.substeps = 0
	w.lastRate = 0
	w.seedAnts(seed)
	w.rebuildDisplay()
}

// seedAnts places every ant at the normalized start position. Ants after
// the first are offset by up to StartJitter cells using the seeded RNG so
// they do not overlap perfectly; with zero jitter they share one cell.
func (w *World) seedAnts(seed int64) {
	size := w.Size()
	baseX := int(w.cfg.StartX * float64(size.W))
	baseY := int(w.cfg.StartY * float64(size.H))
	baseX, baseY = w.grid.Wrap(baseX, baseY)

	rng := core.NewRNG(seed)
	w.ants = w.ants[:0]
	for i := 0; i < w.cfg.Ants; i++ {
		x, y := baseX, baseY
		if i > 0 && w.cfg.StartJitter > 0 {
			span := 2*w.cfg.StartJitter + 1
			x, y = w.grid.Wrap(
				baseX+rng.IntN(span)-w.cfg.StartJitter,
				baseY+rng.IntN(span)-w.cfg.StartJitter,
			)
		}
		w.ants = append(w.ants, Ant{X: x, Y: y, Heading: HeadingUp, tag: uint8(i)})
	}
}

// Step advances one frame: one whole-grid decay, then the ramp-determined
// number of sub-steps with every ant transitioning once per sub-step, then
// a display rebuild. Decay runs first so a freshly painted cell renders at
// full intensity. The tick counter advances once per frame regardless of
// how many sub-steps ran, which is what couples the ramp to frame count.
func (w *World) Step() {
	w.grid.Decay(w.cfg.AlphaRetention)

	w.lastRate = w.curve.StepsForFrame(w.tick)
	n := w.curve.Advance(w.tick)
	threshold := float32(w.cfg.DarkThreshold)
	for i := 0; i < n; i++ {
		for j := range w.ants {
			w.ants[j].step(w.grid, threshold)
		}
	}
	w.substeps += uint64(n) * uint64(len(w.ants))
	w.tick++
	w.rebuildDisplay()
}

func init() {
	core.Register("langton", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
