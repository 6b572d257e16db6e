//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/render"
	"lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type chunkLister interface {
	Chunks() []life.ChunkKey
}

// Overlay outlines materialized chunks on top of the grid. Toggle with C.
type Overlay struct {
	sim        chunkLister
	showChunks bool
	pixel      *ebiten.Image
}

// NewOverlay constructs an overlay; sims without chunks draw nothing.
func NewOverlay(sim any) *Overlay {
	o := &Overlay{}
	if l, ok := sim.(chunkLister); ok {
		o.sim = l
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showChunks = !o.showChunks
	}
}

// Draw outlines every chunk that intersects the viewport.
func (o *Overlay) Draw(screen *ebiten.Image, v render.Viewport) {
	if o.sim == nil || !o.showChunks || v.W <= 0 || v.H <= 0 {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	sx := float64(sw) / float64(v.W)
	sy := float64(sh) / float64(v.H)
	edge := color.RGBA{R: 60, G: 140, B: 220, A: 160}
	for _, k := range o.sim.Chunks() {
		org := k.Origin()
		if org.X+life.ChunkSize <= v.X || org.X >= v.X+v.W || org.Y+life.ChunkSize <= v.Y || org.Y >= v.Y+v.H {
			continue
		}
		x0 := float64(org.X-v.X) * sx
		y0 := float64(org.Y-v.Y) * sy
		w := life.ChunkSize * sx
		h := life.ChunkSize * sy
		o.rect(screen, x0, y0, w, 1, edge)
		o.rect(screen, x0, y0+h-1, w, 1, edge)
		o.rect(screen, x0, y0, 1, h, edge)
		o.rect(screen, x0+w-1, y0, 1, h, edge)
	}
}

func (o *Overlay) rect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
