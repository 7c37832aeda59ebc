package core

import "image/color"

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim defines the contract a frame-driven simulation must implement. Step
// advances exactly one rendered frame's worth of simulated time; Colors
// exposes the composited per-cell colors for that frame in row-major order.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Colors() []color.RGBA
}

// AntMarker describes an agent position and unit heading for debug overlays.
type AntMarker struct {
	X, Y   int
	DX, DY int
	Color  color.RGBA
}

// Factory constructs a Sim from an optional configuration map. A malformed
// configuration fails here, before the first frame is ever scheduled.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
