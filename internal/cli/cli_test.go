package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifegrid/pkg/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRunPrintsCountersAndCells(t *testing.T) {
	out, logs, err := execute(t, "run", "--topology", "torus", "--size", "5", "--pattern", "blinker", "--steps", "1", "--cells")
	require.NoError(t, err)
	want := `[World]
  Topology: torus
  Size: 5
[Counters]
  Time: 1
  Population: 3
0,1
1,1
2,1
`
	assert.Equal(t, want, out)
	assert.Contains(t, logs, "run finished")
}

func TestRunUnboundedReportsChunks(t *testing.T) {
	out, _, err := execute(t, "run", "--cell", "31,31", "--cell", "32,31", "--cell", "33,31", "--steps", "2", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Chunk size: 32")
	assert.Contains(t, out, "Population: 3")
	assert.Contains(t, out, "Chunks: 4")
}

func TestRunReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
world:
  topology: torus
  size: 6
seed:
  pattern: block
run:
  steps: 4
log:
  level: error
`), 0o644))

	out, logs, err := execute(t, "run", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Size: 6")
	assert.Contains(t, out, "Time: 4")
	assert.Contains(t, out, "Population: 4")
	assert.Empty(t, logs)

	out, _, err = execute(t, "run", "-c", path, "--steps", "1", "--size", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Size: 9")
	assert.Contains(t, out, "Time: 1")
}

func TestRunRejectsInvalidFlags(t *testing.T) {
	_, _, err := execute(t, "run", "--topology", "torus", "--size", "0")
	assert.ErrorIs(t, err, life.ErrInvalidSize)

	_, _, err = execute(t, "run", "--offset", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "--random", "0,0,4,4", "--density", "3")
	assert.ErrorIs(t, err, life.ErrInvalidDensity)

	_, _, err = execute(t, "run", "--topology", "torus", "--size", "4294967296")
	assert.ErrorIs(t, err, life.ErrInvalidSize)

	_, _, err = execute(t, "run", "--tps", "2000000000", "--steps", "1")
	assert.ErrorContains(t, err, "run.tps")
}

func TestDumpChunk(t *testing.T) {
	out, _, err := execute(t, "dump", "--pattern", "block", "--steps", "3")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "+"+strings.Repeat("-", 32)+"+", lines[0])
	assert.Equal(t, "|##"+strings.Repeat(" ", 30)+"|", lines[1])
	assert.Equal(t, "|##"+strings.Repeat(" ", 30)+"|", lines[2])

	out, _, err = execute(t, "dump", "--pattern", "block", "--chunk=-1,0")
	require.NoError(t, err)
	assert.NotContains(t, out, "#")
}

func TestDumpRejectsTorus(t *testing.T) {
	out, _, err := execute(t, "dump", "--topology", "torus", "--size", "8")
	assert.ErrorIs(t, err, life.ErrWrongTopology)
	assert.Empty(t, out)
}

func TestPatternsLists(t *testing.T) {
	out, _, err := execute(t, "patterns")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Len(t, lines, len(life.PatternNames())+1)
	assert.Contains(t, out, "gosper-gun")
}

func TestSweepRanksSeeds(t *testing.T) {
	out, _, err := execute(t, "sweep", "--seeds", "4", "--side", "8", "--steps", "10", "--workers", "2", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "SEED"))

	out, _, err = execute(t, "sweep", "--seeds", "4", "--side", "8", "--steps", "10", "--top", "2", "--log-level", "error")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestSweepRejectsInvalidFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--seeds", "-1"},
		{"--side", "0"},
		{"--workers", "-2"},
		{"--steps", "-1"},
	} {
		_, _, err := execute(t, append([]string{"sweep", "--log-level", "error"}, args...)...)
		assert.Error(t, err, "%v", args)
	}

	_, _, err := execute(t, "sweep", "--density", "1.5")
	assert.ErrorIs(t, err, life.ErrInvalidDensity)

	_, _, err = execute(t, "sweep", "--topology", "torus", "--size", "0")
	assert.ErrorIs(t, err, life.ErrInvalidSize)
}

func TestRunSweepRejectsEmptySquare(t *testing.T) {
	opts := &sweepOptions{seeds: 1, startSeed: 1, side: 0, density: 1, steps: 1}
	res, err := runSweep(context.Background(), life.Unbounded, opts, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestSweepUsesConfigWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  topology: torus\n  size: 20\nlog:\n  level: error\n"), 0o644))

	chunks := func(out string) []string {
		var col []string
		for _, line := range strings.Split(strings.TrimSpace(out), "\n")[1:] {
			col = append(col, strings.Fields(line)[3])
		}
		return col
	}

	out, _, err := execute(t, "sweep", "-c", path, "--seeds", "3", "--side", "6", "--steps", "4")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "0", "0"}, chunks(out), "torus worlds have no chunks")

	out, _, err = execute(t, "sweep", "-c", path, "--topology", "unbounded", "--seeds", "2", "--side", "6", "--steps", "4")
	require.NoError(t, err)
	for _, c := range chunks(out) {
		assert.NotEqual(t, "0", c)
	}
}

func TestRunSweepIsDeterministic(t *testing.T) {
	opts := &sweepOptions{size: 32, seeds: 3, startSeed: 5, side: 10, density: 0.4, steps: 12, workers: 3}
	a, err := runSweep(context.Background(), life.Torus, opts, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	opts.workers = 1
	b, err := runSweep(context.Background(), life.Torus, opts, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	byseed := func(rs []soupResult) map[int64][2]int {
		m := map[int64][2]int{}
		for _, r := range rs {
			m[r.seed] = [2]int{r.initial, r.population}
		}
		return m
	}
	assert.Equal(t, byseed(a), byseed(b))
	assert.Len(t, a, 3)
}

func TestParseInts(t *testing.T) {
	v, err := parseInts(" -3, 4 ", 2)
	require.NoError(t, err)
	assert.Equal(t, []int{-3, 4}, v)

	_, err = parseInts("1,2,3", 2)
	assert.Error(t, err)
	_, err = parseInts("a,b", 2)
	assert.Error(t, err)
}
