//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads the visible cells into an image with one pixel per cell
// and scales it onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns a painter; its image is sized on the first Blit.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

// Blit samples the viewport from src and draws it stretched over dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, v Viewport, src CellSource, on, off color.Color) {
	if v.W <= 0 || v.H <= 0 {
		return
	}
	if gp.img == nil || gp.w != v.W || gp.h != v.H {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.w, gp.h = v.W, v.H
		gp.img = ebiten.NewImage(v.W, v.H)
		gp.buf = make([]byte, 4*v.W*v.H)
	}
	fillBinaryRGBA(gp.buf, v, src, on, off)
	gp.img.WritePixels(gp.buf)

	sw, sh := dst.Bounds().Dx(), dst.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(v.W), float64(sh)/float64(v.H))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image in cells.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
