package life

import (
	"fmt"
	"slices"
	"strings"

	pcore "lifegrid/pkg/core"
)

// Pattern is a set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Cells []Point
}

var catalog = map[string]Pattern{}

func init() {
	for name, art := range map[string]string{
		"block":       "OO\nOO",
		"blinker":     ".O.\n.O.\n.O.",
		"beehive":     ".OO.\nO..O\n.OO.",
		"toad":        ".OOO\nOOO.",
		"beacon":      "OO..\nOO..\n..OO\n..OO",
		"glider":      ".O.\n..O\nOOO",
		"r-pentomino": ".OO\nOO.\n.O.",
		"lwss":        ".O..O\nO....\nO...O\nOOOO.",
		"gosper-gun": strings.Join([]string{
			"........................O...........",
			"......................O.O...........",
			"............OO......OO............OO",
			"...........O...O....OO............OO",
			"OO........O.....O...OO..............",
			"OO........O...O.OO....O.O...........",
			"..........O.....O.......O...........",
			"...........O...O....................",
			"............OO......................",
		}, "\n"),
	} {
		catalog[name] = Pattern{Name: name, Cells: parseArt(art)}
	}
}

// parseArt reads rows of 'O' (alive) and '.' (dead).
func parseArt(art string) []Point {
	var cells []Point
	for y, row := range strings.Split(art, "\n") {
		for x, r := range row {
			if r == 'O' {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// LookupPattern returns the named pattern from the catalog.
func LookupPattern(name string) (Pattern, error) {
	p, ok := catalog[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// PatternNames lists the catalog in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Place sets every cell of p translated by (dx, dy).
func Place(w *World, p Pattern, dx, dy int) {
	for _, c := range p.Cells {
		w.SetCell(c.X+dx, c.Y+dy, Set)
	}
}

// Rect is an inclusive cell rectangle. Corners may be given in any order.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Randomize sets each cell in r alive with probability density. Cells that
// are not chosen keep their current state.
func Randomize(w *World, r Rect, density float64, rng *pcore.RNG) error {
	if density < 0 || density > 1 {
		return ErrInvalidDensity
	}
	x1, x2 := min(r.X1, r.X2), max(r.X1, r.X2)
	y1, y2 := min(r.Y1, r.Y2), max(r.Y1, r.Y2)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if rng.Chance(density) {
				w.SetCell(x, y, Set)
			}
		}
	}
	return nil
}
