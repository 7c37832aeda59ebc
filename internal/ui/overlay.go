//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"langton/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type markerProvider interface {
	AntMarkers() []core.AntMarker
}

type statsProvider interface {
	Tick() int
	SubSteps() uint64
	EffectiveSpeed() float64
}

// Overlay draws optional debugging visuals on top of the base simulation:
// agent markers with headings plus a tick/speed readout.
type Overlay struct {
	sim      core.Sim
	cellSize int
	visible  bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay; visible controls its initial state.
func NewOverlay(sim core.Sim, cellSize int, visible bool) *Overlay {
	o := &Overlay{sim: sim, cellSize: cellSize, visible: visible}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	cell := o.cellSize
	if cell <= 0 {
		cell = 1
	}

	if provider, ok := o.sim.(markerProvider); ok {
		for _, m := range provider.AntMarkers() {
			cx := (float64(m.X) + 0.5) * float64(cell)
			cy := (float64(m.Y) + 0.5) * float64(cell)
			size := float64(cell) * 0.8
			if size < 3 {
				size = 3
			}
			ring := size + 2
			o.drawPoint(screen, cx, cy, ring, color.RGBA{R: 20, G: 20, B: 26, A: 230})
			o.drawPoint(screen, cx, cy, size, m.Color)
			tipX := cx + float64(m.DX)*float64(cell)*1.5
			tipY := cy + float64(m.DY)*float64(cell)*1.5
			o.drawLine(screen, cx, cy, tipX, tipY, math.Max(float64(cell)*0.2, 1), color.RGBA{R: 20, G: 20, B: 26, A: 230})
		}
	}

	if provider, ok := o.sim.(statsProvider); ok {
		line := fmt.Sprintf("tick %d  speed %.2f/frame  steps %d",
			provider.Tick(), provider.EffectiveSpeed(), provider.SubSteps())
		face := basicfont.Face7x13
		text.Draw(screen, line, face, 9, 17, color.RGBA{R: 235, G: 235, B: 240, A: 255})
		text.Draw(screen, line, face, 8, 16, color.RGBA{R: 30, G: 30, B: 38, A: 255})
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
