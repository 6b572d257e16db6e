package life

// torus stores a size×size wrapping grid in row-major order. All storage is
// allocated at construction.
type torus struct {
	size  int
	cells []bool
}

func newTorus(size int) *torus {
	return &torus{size: size, cells: make([]bool, size*size)}
}

// index wraps (x, y) and returns the slice index.
func (t *torus) index(x, y int) int {
	return mod(y, t.size)*t.size + mod(x, t.size)
}

func (t *torus) get(x, y int) bool { return t.cells[t.index(x, y)] }

// set stores v and reports the previous value.
func (t *torus) set(x, y int, v bool) bool {
	i := t.index(x, y)
	prev := t.cells[i]
	t.cells[i] = v
	return prev
}

func (t *torus) clone() *torus {
	return &torus{size: t.size, cells: append([]bool(nil), t.cells...)}
}

func (t *torus) count() int {
	n := 0
	for _, c := range t.cells {
		if c {
			n++
		}
	}
	return n
}

// next computes the following generation into a fresh grid. t is the frozen
// previous generation and is only read.
func (t *torus) next() *torus {
	out := newTorus(t.size)
	for y := 0; y < t.size; y++ {
		for x := 0; x < t.size; x++ {
			n := 0
			for _, p := range Neighbors(x, y, Torus, t.size) {
				if t.cells[p.Y*t.size+p.X] {
					n++
				}
			}
			out.cells[y*t.size+x] = Conway(t.cells[y*t.size+x], n)
		}
	}
	return out
}
