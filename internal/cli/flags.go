package cli

import (
	"fmt"
	"strconv"
	"strings"

	"lifegrid/internal/config"
	"lifegrid/pkg/sims/life"

	"github.com/spf13/cobra"
)

// worldFlags are the world and seed overrides shared by run, dump and sweep.
type worldFlags struct {
	topology string
	size     int
	pattern  string
	offset   string
	cells    []string
	random   string
	density  float64
	rngSeed  int64
}

func (f *worldFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.topology, "topology", "", "world topology: unbounded or torus")
	fs.IntVar(&f.size, "size", 0, "torus edge length")
	fs.StringVar(&f.pattern, "pattern", "", "named seed pattern (see lifectl patterns)")
	fs.StringVar(&f.offset, "offset", "", "pattern offset as x,y")
	fs.StringArrayVar(&f.cells, "cell", nil, "live cell as x,y (repeatable)")
	fs.StringVar(&f.random, "random", "", "randomize inclusive rectangle x1,y1,x2,y2")
	fs.Float64Var(&f.density, "density", 0.3, "live probability for --random")
	fs.Int64Var(&f.rngSeed, "rng-seed", 0, "seed for --random")
}

// apply overlays flags the user set on cfg.
func (f *worldFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("topology") {
		cfg.World.Topology = f.topology
	}
	if fs.Changed("size") {
		cfg.World.Size = f.size
	}
	if fs.Changed("pattern") {
		cfg.Seed.Pattern = f.pattern
	}
	if fs.Changed("offset") {
		v, err := parseInts(f.offset, 2)
		if err != nil {
			return fmt.Errorf("--offset: %w", err)
		}
		cfg.Seed.Offset = [2]int{v[0], v[1]}
	}
	for _, c := range f.cells {
		v, err := parseInts(c, 2)
		if err != nil {
			return fmt.Errorf("--cell: %w", err)
		}
		cfg.Seed.Cells = append(cfg.Seed.Cells, [2]int{v[0], v[1]})
	}
	if fs.Changed("random") {
		v, err := parseInts(f.random, 4)
		if err != nil {
			return fmt.Errorf("--random: %w", err)
		}
		cfg.Seed.Random = &config.RandomRect{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3], Density: f.density}
	} else if fs.Changed("density") && cfg.Seed.Random != nil {
		cfg.Seed.Random.Density = f.density
	}
	if fs.Changed("rng-seed") {
		cfg.Seed.RNGSeed = f.rngSeed
	}
	return cfg.Validate()
}

// buildWorld constructs the configured World and applies its seed.
func buildWorld(cfg config.Config) (*life.World, error) {
	c, err := life.FromMap(cfg.WorldMap())
	if err != nil {
		return nil, err
	}
	w, err := life.NewWithConfig(c)
	if err != nil {
		return nil, err
	}
	if err := cfg.Seed.Apply(w); err != nil {
		return nil, err
	}
	return w, nil
}

// parseInts parses exactly n comma-separated integers.
func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated integers, got %q", n, s)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
