package life

import (
	"testing"

	pcore "lifegrid/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternCatalog(t *testing.T) {
	names := PatternNames()
	assert.Contains(t, names, "glider")
	assert.Contains(t, names, "gosper-gun")
	assert.IsIncreasing(t, names)

	sizes := map[string]int{"block": 4, "blinker": 3, "glider": 5, "r-pentomino": 5, "lwss": 9, "gosper-gun": 36}
	for name, n := range sizes {
		p, err := LookupPattern(name)
		require.NoError(t, err, name)
		assert.Len(t, p.Cells, n, name)
	}

	_, err := LookupPattern("spaceship-9000")
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestStillLifesAndOscillators(t *testing.T) {
	cases := map[string]int{"block": 1, "beehive": 1, "blinker": 2, "toad": 2, "beacon": 2}
	for name, period := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := LookupPattern(name)
			require.NoError(t, err)
			w := newTestWorld(t, Unbounded, 0)
			Place(w, p, -2, -2)
			start := w.LiveCells()
			for i := 0; i < period; i++ {
				w.Step()
			}
			assert.Equal(t, start, w.LiveCells())
		})
	}
}

func TestRandomize(t *testing.T) {
	w := newTestWorld(t, Unbounded, 0)
	rng := pcore.NewRNG(1)

	require.NoError(t, Randomize(w, Rect{X1: 4, Y1: 4, X2: -5, Y2: -5}, 1, rng))
	assert.Equal(t, 100, w.Population())

	w2 := newTestWorld(t, Torus, 8)
	require.NoError(t, Randomize(w2, Rect{X2: 7, Y2: 7}, 0, rng))
	assert.Zero(t, w2.Population())

	assert.ErrorIs(t, Randomize(w2, Rect{}, 1.5, rng), ErrInvalidDensity)
	assert.ErrorIs(t, Randomize(w2, Rect{}, -0.1, rng), ErrInvalidDensity)
}

func TestRandomizeIsDeterministic(t *testing.T) {
	a := newTestWorld(t, Unbounded, 0)
	b := newTestWorld(t, Unbounded, 0)
	r := Rect{X1: -20, Y1: -20, X2: 20, Y2: 20}
	require.NoError(t, Randomize(a, r, 0.4, pcore.NewRNG(7)))
	require.NoError(t, Randomize(b, r, 0.4, pcore.NewRNG(7)))
	assert.Equal(t, a.LiveCells(), b.LiveCells())
	assert.Greater(t, a.Population(), 0)
}
