package render

import "image/color"

// CellSource reports whether a world cell is alive.
type CellSource interface {
	Cell(x, y int) bool
}

// Viewport is the window of world cells shown on screen. X, Y is the world
// coordinate of the top-left cell; W and H are measured in cells.
type Viewport struct {
	X, Y int
	W, H int
}

// Pan moves the viewport by (dx, dy) cells.
func (v *Viewport) Pan(dx, dy int) {
	v.X += dx
	v.Y += dy
}

// Zoom grows or shrinks the viewport by d cells per axis, keeping at least one
// cell visible.
func (v *Viewport) Zoom(d int) {
	v.W = max(1, v.W+d)
	v.H = max(1, v.H+d)
}

// CellAt maps a pixel position on a screen of sw×sh pixels to a world cell.
func (v Viewport) CellAt(px, py, sw, sh int) (int, int) {
	x := v.X + px*v.W/max(1, sw)
	y := v.Y + py*v.H/max(1, sh)
	return x, y
}

// fillBinaryRGBA samples the viewport from src into RGBA pixels in buf, one
// pixel per cell.
func fillBinaryRGBA(buf []byte, v Viewport, src CellSource, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for y := 0; y < v.H; y++ {
		for x := 0; x < v.W; x++ {
			base := (y*v.W + x) * 4
			if src.Cell(v.X+x, v.Y+y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
