package life

import (
	"cmp"
	"slices"
	"strconv"

	"lifegrid/internal/core"
)

// Intent selects the value written by SetCell. The zero value is not a
// valid intent.
type Intent uint8

const (
	// Set makes a cell alive.
	Set Intent = iota + 1
	// Clear makes a cell dead.
	Clear
)

// MaxTorusSize is the largest accepted torus edge length.
const MaxTorusSize = 1 << 15

// World is a Game of Life simulation over either topology. It owns its
// storage and its time and population counters. A World must not be used
// from more than one goroutine at a time.
type World struct {
	topo Topology
	size int

	torus  *torus
	chunks *chunkMap

	time       int
	population int
}

var _ core.Sim = (*World)(nil)

// New constructs an empty World. size is required for Torus and ignored for
// Unbounded.
func New(topo Topology, size int) (*World, error) {
	w := &World{topo: topo}
	switch topo {
	case Torus:
		if size <= 0 || size > MaxTorusSize {
			return nil, ErrInvalidSize
		}
		w.size = size
		w.torus = newTorus(size)
	case Unbounded:
		w.chunks = newChunkMap()
	default:
		return nil, ErrUnknownTopology
	}
	return w, nil
}

// NewWithConfig constructs a World from a Config.
func NewWithConfig(c Config) (*World, error) {
	return New(c.Topology, c.Size)
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life" }

// Topology returns the World's edge behavior.
func (w *World) Topology() Topology { return w.topo }

// Size returns the torus edge length, or 0 for Unbounded.
func (w *World) Size() int { return w.size }

// Time returns the number of completed generations.
func (w *World) Time() int { return w.time }

// Population returns the number of live cells.
func (w *World) Population() int { return w.population }

// Cell reports whether (x, y) is alive. Torus coordinates wrap; reads on an
// Unbounded world never materialize chunks.
func (w *World) Cell(x, y int) bool {
	if w.topo == Torus {
		return w.torus.get(x, y)
	}
	alive, _ := w.chunks.lookup(x, y)
	return alive
}

// Lookup is Cell plus the owning chunk key. It fails on a Torus world.
func (w *World) Lookup(x, y int) (bool, ChunkKey, error) {
	if w.topo != Unbounded {
		return false, ChunkKey{}, &WrongTopologyError{Op: "lookup", Want: Unbounded, Got: w.topo}
	}
	alive, k := w.chunks.lookup(x, y)
	return alive, k, nil
}

// SetCell makes (x, y) alive or dead and keeps Population exact. An intent
// other than Set or Clear is ignored.
func (w *World) SetCell(x, y int, in Intent) {
	if in != Set && in != Clear {
		return
	}
	v := in == Set
	var prev bool
	if w.topo == Torus {
		prev = w.torus.set(x, y, v)
	} else {
		prev = w.chunks.set(x, y, v)
	}
	switch {
	case v && !prev:
		w.population++
	case !v && prev:
		w.population--
	}
}

// Toggle flips the state of (x, y).
func (w *World) Toggle(x, y int) {
	if w.Cell(x, y) {
		w.SetCell(x, y, Clear)
		return
	}
	w.SetCell(x, y, Set)
}

// Step advances the World by one generation. Neighbor sums are read from a
// frozen copy of the previous generation, so the result does not depend on
// visiting order.
func (w *World) Step() {
	if w.topo == Torus {
		w.torus = w.torus.next()
		w.population = w.torus.count()
		w.time++
		return
	}

	prev := w.chunks.clone()
	for k, ch := range prev.m {
		o := k.Origin()
		for ly := 0; ly < ChunkSize; ly++ {
			for lx := 0; lx < ChunkSize; lx++ {
				x, y := o.X+lx, o.Y+ly
				n := prev.liveNeighbors(k, ch, x, y)
				if Conway(ch[lx|ly<<chunkShift], n) {
					w.SetCell(x, y, Set)
				} else {
					w.SetCell(x, y, Clear)
				}
			}
		}
	}
	w.time++
}

// Copy returns an independent deep copy. The copy's time is 0 and its
// population is recounted from the copied cells.
func (w *World) Copy() *World {
	out := &World{topo: w.topo, size: w.size}
	if w.topo == Torus {
		out.torus = w.torus.clone()
		out.population = out.torus.count()
	} else {
		out.chunks = w.chunks.clone()
		out.population = out.chunks.count()
	}
	return out
}

// ChunkCount returns the number of materialized chunks, or 0 for Torus.
func (w *World) ChunkCount() int {
	if w.chunks == nil {
		return 0
	}
	return w.chunks.len()
}

// Chunks returns the sorted materialized chunk keys, or nil for Torus.
func (w *World) Chunks() []ChunkKey {
	if w.chunks == nil {
		return nil
	}
	return w.chunks.keys()
}

// LiveCells returns every live cell sorted by Y, then X.
func (w *World) LiveCells() []Point {
	var out []Point
	if w.topo == Torus {
		for i, c := range w.torus.cells {
			if c {
				out = append(out, Point{X: i % w.size, Y: i / w.size})
			}
		}
		return out
	}
	for k, ch := range w.chunks.m {
		o := k.Origin()
		for i, c := range ch {
			if c {
				out = append(out, Point{X: o.X + i&chunkMask, Y: o.Y + i>>chunkShift})
			}
		}
	}
	slices.SortFunc(out, func(a, b Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// Parameters reports the World's shape and counters for display.
func (w *World) Parameters() core.ParameterSnapshot {
	shape := []core.Parameter{
		{Key: "topology", Label: "Topology", Type: core.ParamTypeString, Value: w.topo.String()},
	}
	if w.topo == Torus {
		shape = append(shape, intParam("size", "Size", w.size))
	} else {
		shape = append(shape, intParam("chunk_size", "Chunk size", ChunkSize))
	}
	counters := []core.Parameter{
		intParam("time", "Time", w.time),
		intParam("population", "Population", w.population),
	}
	if w.topo == Unbounded {
		counters = append(counters, intParam("chunks", "Chunks", w.chunks.len()))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: shape},
		{Name: "Counters", Params: counters},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		w, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
