package life

import (
	"cmp"
	"slices"
)

const (
	// ChunkSize is the edge length of a chunk in cells.
	ChunkSize = 32

	chunkShift = 5
	chunkMask  = ChunkSize - 1
)

// ChunkKey identifies a chunk by floor-dividing cell coordinates by ChunkSize.
type ChunkKey struct{ X, Y int }

// Chunk is a ChunkSize×ChunkSize block of cells indexed by lx | ly<<5.
type Chunk [ChunkSize * ChunkSize]bool

// At returns the cell at local coordinates (0..31).
func (c *Chunk) At(lx, ly int) bool { return c[lx|ly<<chunkShift] }

// KeyOf returns the chunk owning cell (x, y) and the cell's local coordinates.
func KeyOf(x, y int) (key ChunkKey, lx, ly int) {
	return ChunkKey{X: floorDiv(x, ChunkSize), Y: floorDiv(y, ChunkSize)}, x & chunkMask, y & chunkMask
}

// Origin returns the global coordinate of the chunk's local (0, 0).
func (k ChunkKey) Origin() Point {
	return Point{X: k.X * ChunkSize, Y: k.Y * ChunkSize}
}

// chunkMap is the unbounded grid: a map of materialized chunks. A missing key
// means the whole chunk is dead. Chunks are never removed.
type chunkMap struct {
	m map[ChunkKey]*Chunk
}

// newChunkMap returns a grid with chunk (0, 0) materialized.
func newChunkMap() *chunkMap {
	g := &chunkMap{m: make(map[ChunkKey]*Chunk, 16)}
	g.ensure(ChunkKey{})
	return g
}

// ensure materializes the chunk at k if absent and returns it.
func (g *chunkMap) ensure(k ChunkKey) *Chunk {
	ch := g.m[k]
	if ch == nil {
		ch = new(Chunk)
		g.m[k] = ch
	}
	return ch
}

// lookup returns the cell value and its owning chunk key. It never allocates.
func (g *chunkMap) lookup(x, y int) (bool, ChunkKey) {
	k, lx, ly := KeyOf(x, y)
	ch := g.m[k]
	if ch == nil {
		return false, k
	}
	return ch.At(lx, ly), k
}

// chunk returns the materialized chunk at k, or nil.
func (g *chunkMap) chunk(k ChunkKey) *Chunk { return g.m[k] }

// len returns the number of materialized chunks.
func (g *chunkMap) len() int { return len(g.m) }

// keys returns the materialized chunk keys sorted by Y, then X.
func (g *chunkMap) keys() []ChunkKey {
	keys := make([]ChunkKey, 0, len(g.m))
	for k := range g.m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b ChunkKey) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return keys
}

// set writes v at (x, y), materializing the owning chunk. When v is true the
// chunks owning each Moore neighbor are materialized as well, so every chunk
// that can host a birth next generation already exists. It reports the
// previous value.
func (g *chunkMap) set(x, y int, v bool) bool {
	k, lx, ly := KeyOf(x, y)
	ch := g.ensure(k)
	if v && (lx == 0 || ly == 0 || lx == chunkMask || ly == chunkMask) {
		for _, p := range Neighbors(x, y, Unbounded, 0) {
			nk, _, _ := KeyOf(p.X, p.Y)
			g.ensure(nk)
		}
	}
	i := lx | ly<<chunkShift
	prev := ch[i]
	ch[i] = v
	return prev
}

func (g *chunkMap) clone() *chunkMap {
	out := &chunkMap{m: make(map[ChunkKey]*Chunk, len(g.m))}
	for k, ch := range g.m {
		cp := *ch
		out.m[k] = &cp
	}
	return out
}

func (g *chunkMap) count() int {
	n := 0
	for _, ch := range g.m {
		for _, c := range ch {
			if c {
				n++
			}
		}
	}
	return n
}

// liveNeighbors counts live Moore neighbors of (x, y). ch is the chunk owning
// (x, y) under key k; neighbors in the same chunk are read from it directly.
func (g *chunkMap) liveNeighbors(k ChunkKey, ch *Chunk, x, y int) int {
	n := 0
	for _, p := range Neighbors(x, y, Unbounded, 0) {
		nk, lx, ly := KeyOf(p.X, p.Y)
		src := ch
		if nk != k {
			src = g.m[nk]
			if src == nil {
				continue
			}
		}
		if src[lx|ly<<chunkShift] {
			n++
		}
	}
	return n
}
