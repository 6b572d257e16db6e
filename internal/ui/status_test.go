package ui

import (
	"testing"

	"lifegrid/pkg/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bareSim struct{}

func (bareSim) Name() string       { return "bare" }
func (bareSim) Step()              {}
func (bareSim) Cell(x, y int) bool { return false }
func (bareSim) Toggle(x, y int)    {}
func (bareSim) Time() int          { return 4 }
func (bareSim) Population() int    { return 9 }

func TestStatusLinesFromParameters(t *testing.T) {
	w, err := life.New(life.Unbounded, 0)
	require.NoError(t, err)
	w.SetCell(0, 0, life.Set)

	lines := statusLines(w, Status{CornerX: -10, CornerY: 3, Speed: 12, Running: true})
	assert.Equal(t, []string{
		"life",
		"",
		"World",
		"  Topology: unbounded",
		"  Chunk size: 32",
		"Counters",
		"  Time: 0",
		"  Population: 1",
		"  Chunks: 4",
		"",
		"View",
		"  Upper left: x=-10, y=3",
		"  Speed: 12/s (running)",
	}, lines)
}

func TestStatusLinesFallback(t *testing.T) {
	lines := statusLines(bareSim{}, Status{Speed: 1})
	assert.Equal(t, "bare", lines[0])
	assert.Contains(t, lines, "Time: 4")
	assert.Contains(t, lines, "Population: 9")
	assert.Equal(t, "  Speed: 1/s (stopped)", lines[len(lines)-1])
}
