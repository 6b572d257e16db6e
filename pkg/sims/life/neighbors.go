package life

import "fmt"

// Topology selects the edge behavior of a World.
type Topology uint8

const (
	// Unbounded grows lazily in fixed-size chunks and accepts any coordinate.
	Unbounded Topology = iota
	// Torus is a fixed size×size grid that wraps at its edges.
	Torus
)

// String returns the name used in configuration.
func (t Topology) String() string {
	switch t {
	case Unbounded:
		return "unbounded"
	case Torus:
		return "torus"
	default:
		return fmt.Sprintf("topology(%d)", uint8(t))
	}
}

// ParseTopology maps a configuration name to a Topology.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "unbounded", "infinite":
		return Unbounded, nil
	case "torus", "bounded":
		return Torus, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, s)
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// mooreOffsets is the fixed neighbor order.
var mooreOffsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the eight Moore neighbors of (x, y). For Torus the
// coordinates are reduced modulo size, which must be positive; for Unbounded
// size is ignored.
func Neighbors(x, y int, topo Topology, size int) [8]Point {
	var out [8]Point
	for i, d := range mooreOffsets {
		p := Point{X: x + d.X, Y: y + d.Y}
		if topo == Torus {
			p.X = mod(p.X, size)
			p.Y = mod(p.Y, size)
		}
		out[i] = p
	}
	return out
}

// mod returns the non-negative remainder of a divided by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
