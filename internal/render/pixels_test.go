package render

import (
	"image/color"
	"testing"
)

type diagonal struct{}

func (diagonal) Cell(x, y int) bool { return x == y }

func TestViewportPanZoom(t *testing.T) {
	v := Viewport{W: 10, H: 10}
	v.Pan(-3, 4)
	if v.X != -3 || v.Y != 4 {
		t.Fatalf("pan: got %+v", v)
	}
	v.Zoom(-20)
	if v.W != 1 || v.H != 1 {
		t.Fatalf("zoom should clamp to 1, got %+v", v)
	}
	v.Zoom(5)
	if v.W != 6 || v.H != 6 {
		t.Fatalf("zoom in: got %+v", v)
	}
}

func TestViewportCellAt(t *testing.T) {
	v := Viewport{X: -5, Y: 10, W: 20, H: 20}
	x, y := v.CellAt(0, 0, 800, 800)
	if x != -5 || y != 10 {
		t.Fatalf("origin maps to %d,%d", x, y)
	}
	x, y = v.CellAt(799, 40, 800, 800)
	if x != 14 || y != 11 {
		t.Fatalf("got %d,%d, want 14,11", x, y)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	v := Viewport{X: 1, Y: 1, W: 3, H: 2}
	buf := make([]byte, v.W*v.H*4)
	on := color.RGBA{R: 255, G: 200, B: 100, A: 255}
	off := color.RGBA{A: 255}
	fillBinaryRGBA(buf, v, diagonal{}, on, off)

	for y := 0; y < v.H; y++ {
		for x := 0; x < v.W; x++ {
			base := (y*v.W + x) * 4
			want := off
			if x == y {
				want = on
			}
			got := color.RGBA{buf[base], buf[base+1], buf[base+2], buf[base+3]}
			if got != want {
				t.Fatalf("pixel %d,%d = %v, want %v", x, y, got, want)
			}
		}
	}
}
