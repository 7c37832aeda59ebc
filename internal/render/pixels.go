package render

import "image/color"

// FillBackground paints the whole RGBA buffer with the given color.
func FillBackground(buf []byte, c color.RGBA) {
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = c.R
		buf[i+1] = c.G
		buf[i+2] = c.B
		buf[i+3] = c.A
	}
}

// FillCellRect rasterizes one grid cell as a square of side cellSize-border
// anchored at (x*cellSize, y*cellSize), clipped to the surface bounds. A
// grid larger than the surface therefore draws its visible portion and
// drops the rest.
func FillCellRect(buf []byte, surfW, surfH, x, y, cellSize, border int, c color.RGBA) {
	side := cellSize - border
	if side <= 0 {
		return
	}
	px0 := x * cellSize
	py0 := y * cellSize
	px1 := px0 + side
	py1 := py0 + side
	if px0 < 0 {
		px0 = 0
	}
	if py0 < 0 {
		py0 = 0
	}
	if px1 > surfW {
		px1 = surfW
	}
	if py1 > surfH {
		py1 = surfH
	}
	for py := py0; py < py1; py++ {
		base := (py*surfW + px0) * 4
		for px := px0; px < px1; px++ {
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
			base += 4
		}
	}
}

// RenderCells composites a frame: background fill, then one bordered rect
// per cell whose color differs from the background. Fully decayed cells
// match the background exactly and are skipped.
func RenderCells(buf []byte, surfW, surfH int, colors []color.RGBA, gridW, gridH, cellSize, border int, bg color.RGBA) {
	FillBackground(buf, bg)
	if len(colors) < gridW*gridH {
		return
	}
	for y := 0; y < gridH; y++ {
		row := y * gridW
		for x := 0; x < gridW; x++ {
			c := colors[row+x]
			if c == bg {
				continue
			}
			FillCellRect(buf, surfW, surfH, x, y, cellSize, border, c)
		}
	}
}
