package cli

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"lifegrid/internal/runner"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type sweepOptions struct {
	topology  string
	size      int
	seeds     int
	startSeed int64
	side      int
	density   float64
	steps     int
	workers   int
	top       int
}

type soupResult struct {
	seed       int64
	initial    int
	population int
	chunks     int
	elapsed    time.Duration
}

func newSweepCommand(root *rootOptions) *cobra.Command {
	opts := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evolve random soups over a range of seeds in parallel",
		Long: `sweep fills a side x side square at --density for each seed, evolves it for
--steps generations and ranks the seeds by final population. Each seed gets its
own world; worlds are never shared between workers.

Topology and size come from the world section of --config unless --topology or
--size is given. The seed section of the config is not used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("topology") {
				cfg.World.Topology = opts.topology
			}
			if fs.Changed("size") {
				cfg.World.Size = opts.size
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			topo, err := life.ParseTopology(cfg.World.Topology)
			if err != nil {
				return err
			}
			opts.size = cfg.World.Size

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			results, err := runSweep(ctx, topo, opts, logger)
			if err != nil {
				return err
			}

			sort.Slice(results, func(i, j int) bool {
				if results[i].population != results[j].population {
					return results[i].population > results[j].population
				}
				return results[i].seed < results[j].seed
			})
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEED\tINITIAL\tFINAL\tCHUNKS\tELAPSED")
			for i, res := range results {
				if opts.top > 0 && i >= opts.top {
					break
				}
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\n", res.seed, res.initial, res.population, res.chunks, res.elapsed.Round(time.Millisecond))
			}
			return tw.Flush()
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.topology, "topology", "", "world topology: unbounded or torus (default from config)")
	fs.IntVar(&opts.size, "size", 0, "torus edge length (default from config)")
	fs.IntVar(&opts.seeds, "seeds", 8, "number of seeds to evaluate")
	fs.Int64Var(&opts.startSeed, "start-seed", 1, "first seed")
	fs.IntVar(&opts.side, "side", 16, "edge length of the random square")
	fs.Float64Var(&opts.density, "density", 0.35, "live probability inside the square")
	fs.IntVar(&opts.steps, "steps", 100, "generations per seed")
	fs.IntVar(&opts.workers, "workers", runtime.NumCPU(), "parallel worlds")
	fs.IntVar(&opts.top, "top", 0, "only print the N best seeds")
	return cmd
}

func (o *sweepOptions) validate() error {
	switch {
	case o.seeds < 0:
		return fmt.Errorf("--seeds must not be negative, got %d", o.seeds)
	case o.side < 1:
		return fmt.Errorf("--side must be at least 1, got %d", o.side)
	case o.workers < 0:
		return fmt.Errorf("--workers must not be negative, got %d", o.workers)
	case o.steps < 0:
		return fmt.Errorf("--steps must not be negative, got %d", o.steps)
	case o.density < 0 || o.density > 1:
		return life.ErrInvalidDensity
	}
	return nil
}

// runSweep evaluates every seed on its own World, at most opts.workers at a
// time.
func runSweep(ctx context.Context, topo life.Topology, opts *sweepOptions, logger *slog.Logger) ([]soupResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	g, ctx := errgroup.WithContext(ctx)
	if opts.workers > 0 {
		g.SetLimit(opts.workers)
	}

	var mu sync.Mutex
	results := make([]soupResult, 0, opts.seeds)
	for i := 0; i < opts.seeds; i++ {
		seed := opts.startSeed + int64(i)
		g.Go(func() error {
			w, err := life.New(topo, opts.size)
			if err != nil {
				return err
			}
			rect := life.Rect{X1: 0, Y1: 0, X2: opts.side - 1, Y2: opts.side - 1}
			if err := life.Randomize(w, rect, opts.density, core.NewRNG(seed)); err != nil {
				return err
			}
			initial := w.Population()
			res, err := runner.New(w, runner.Options{Steps: opts.steps, Logger: logger}).Run(ctx)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			mu.Lock()
			results = append(results, soupResult{
				seed:       seed,
				initial:    initial,
				population: res.Population,
				chunks:     res.Chunks,
				elapsed:    res.Elapsed,
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
