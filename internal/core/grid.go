package core

// NoOwner tags a cell that no ant has painted, or that was erased back to
// the background state.
const NoOwner = 0xff

// TrailGrid stores a 2D grid of trail cells in row-major order. Each cell
// holds a decaying intensity in [0,1] plus the tag of the ant that painted
// it last. The grid wraps toroidally, so an agent walking off one edge
// re-enters on the opposite one.
type TrailGrid struct {
	W, H      int
	intensity []float32
	owner     []uint8
}

// NewTrailGrid allocates a cleared grid with the given dimensions.
func NewTrailGrid(w, h int) *TrailGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	total := w * h
	g := &TrailGrid{
		W:         w,
		H:         h,
		intensity: make([]float32, total),
		owner:     make([]uint8, total),
	}
	g.Clear()
	return g
}

// Index returns the linear slice index for coordinates (x, y).
func (g *TrailGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *TrailGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear resets every cell to zero intensity with no owner.
func (g *TrailGrid) Clear() {
	for i := range g.intensity {
		g.intensity[i] = 0
		g.owner[i] = NoOwner
	}
}

// Intensities exposes the backing intensity slice for read-only iteration.
func (g *TrailGrid) Intensities() []float32 { return g.intensity }

// Owners exposes the backing owner-tag slice for read-only iteration.
func (g *TrailGrid) Owners() []uint8 { return g.owner }

// IntensityAt reads the trail intensity at (x, y).
func (g *TrailGrid) IntensityAt(x, y int) float32 { return g.intensity[g.Index(x, y)] }

// OwnerAt reads the owner tag at (x, y).
func (g *TrailGrid) OwnerAt(x, y int) uint8 { return g.owner[g.Index(x, y)] }

// Paint marks a fresh visit: full intensity tagged with the visiting ant.
func (g *TrailGrid) Paint(x, y int, owner uint8) {
	idx := g.Index(x, y)
	g.intensity[idx] = 1
	g.owner[idx] = owner
}

// Erase returns the cell to the fully decayed background state.
func (g *TrailGrid) Erase(x, y int) {
	idx := g.Index(x, y)
	g.intensity[idx] = 0
	g.owner[idx] = NoOwner
}

// Decay multiplies every intensity by retention/255. Owner tags are kept so
// a fading trail holds its ant's color until repainted or erased.
func (g *TrailGrid) Decay(retention uint8) {
	if retention == 255 {
		return
	}
	f := float32(retention) / 255
	for i, v := range g.intensity {
		if v == 0 {
			continue
		}
		g.intensity[i] = v * f
	}
}
