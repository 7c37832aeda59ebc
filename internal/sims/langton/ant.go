package langton

import "langton/internal/core"

// Heading enumerates the four cardinal directions an ant can face.
type Heading uint8

const (
	HeadingUp Heading = iota
	HeadingRight
	HeadingDown
	HeadingLeft
)

// Left returns the heading after a 90 degree counter-clockwise turn.
func (h Heading) Left() Heading { return (h + 3) % 4 }

// Right returns the heading after a 90 degree clockwise turn.
func (h Heading) Right() Heading { return (h + 1) % 4 }

// Delta returns the unit grid offset for one move along the heading. The
// y axis grows downward, matching the rendering surface.
func (h Heading) Delta() (int, int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingRight:
		return 1, 0
	case HeadingDown:
		return 0, 1
	default:
		return -1, 0
	}
}

// Ant is one agent walking the shared trail grid. All of its interaction
// with other ants is mediated through the grid; ants hold no private cell
// memory.
type Ant struct {
	X, Y    int
	Heading Heading
	tag     uint8
}

// step applies one atomic rule transition: classify the current cell, turn,
// toggle the cell, then move one cell forward with toroidal wrapping. A
// cell at or above threshold counts as dark (turn left, erase); below it as
// light (turn right, paint at full intensity with this ant's tag).
func (a *Ant) step(g *core.TrailGrid, threshold float32) {
	if g.IntensityAt(a.X, a.Y) >= threshold {
		a.Heading = a.Heading.Left()
		g.Erase(a.X, a.Y)
	} else {
		a.Heading = a.Heading.Right()
		g.Paint(a.X, a.Y, a.tag)
	}
	dx, dy := a.Heading.Delta()
	a.X, a.Y = g.Wrap(a.X+dx, a.Y+dy)
}
