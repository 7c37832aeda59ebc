//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SurfacePainter rasterizes composited cell colors into a full-resolution
// RGBA buffer and uploads it to an ebiten image once per frame. It holds no
// simulation state.
type SurfacePainter struct {
	surfW, surfH int
	cellSize     int
	border       int
	img          *ebiten.Image
	buf          []byte
}

// NewSurfacePainter allocates a painter for a surface of surfW x surfH
// pixels drawn as cellSize squares with the given border.
func NewSurfacePainter(surfW, surfH, cellSize, border int) *SurfacePainter {
	p := &SurfacePainter{
		surfW:    surfW,
		surfH:    surfH,
		cellSize: cellSize,
		border:   border,
		buf:      make([]byte, 4*surfW*surfH),
	}
	p.img = ebiten.NewImage(surfW, surfH)
	return p
}

// Blit renders the cell colors into the surface buffer and draws it.
func (p *SurfacePainter) Blit(dst *ebiten.Image, colors []color.RGBA, gridW, gridH int, bg color.RGBA) {
	RenderCells(p.buf, p.surfW, p.surfH, colors, gridW, gridH, p.cellSize, p.border, bg)
	p.img.ReplacePixels(p.buf)
	dst.DrawImage(p.img, nil)
}

// Size returns the surface dimensions in pixels.
func (p *SurfacePainter) Size() (int, int) { return p.surfW, p.surfH }
