package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/runner"
	"lifegrid/internal/telemetry"

	"github.com/spf13/cobra"
)

type runOptions struct {
	world       worldFlags
	steps       int
	tps         int
	reportEvery int
	timeout     time.Duration
	metricsAddr string
	printCells  bool
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evolve a world for a number of generations and print its counters",
		Example: `  lifectl run --pattern glider --steps 40
  lifectl run --topology torus --size 64 --random 0,0,63,63 --density 0.35 --steps 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if err := opts.world.apply(cmd, &cfg); err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("steps") {
				cfg.Run.Steps = opts.steps
			}
			if fs.Changed("tps") {
				cfg.Run.TPS = opts.tps
			}
			if fs.Changed("report-every") {
				cfg.Run.ReportEvery = opts.reportEvery
			}
			if fs.Changed("timeout") {
				cfg.Run.Timeout = opts.timeout
			}
			if fs.Changed("metrics-addr") {
				cfg.Metrics.Addr = opts.metricsAddr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			w, err := buildWorld(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if cfg.Run.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Run.Timeout)
				defer cancel()
			}

			metrics := telemetry.NewMetrics()
			if cfg.Metrics.Addr != "" {
				stop, err := serveMetrics(cfg.Metrics.Addr, metrics, logger)
				if err != nil {
					return err
				}
				defer stop()
			}

			r := runner.New(w, runner.Options{
				Steps:       cfg.Run.Steps,
				TPS:         cfg.Run.TPS,
				ReportEvery: cfg.Run.ReportEvery,
				Logger:      logger,
				Metrics:     metrics,
			})
			// A timeout is a normal way to end a run; cancellation is not.
			if _, err := r.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			out := cmd.OutOrStdout()
			printSnapshot(out, w.Parameters())
			if opts.printCells {
				for _, p := range w.LiveCells() {
					fmt.Fprintf(out, "%d,%d\n", p.X, p.Y)
				}
			}
			return nil
		},
	}
	opts.world.bind(cmd)
	fs := cmd.Flags()
	fs.IntVar(&opts.steps, "steps", 0, "generations to compute")
	fs.IntVar(&opts.tps, "tps", 0, "generations per second (0 = unpaced)")
	fs.IntVar(&opts.reportEvery, "report-every", 0, "log progress every N generations")
	fs.DurationVar(&opts.timeout, "timeout", 0, "stop after this long")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.BoolVar(&opts.printCells, "cells", false, "print live cells as x,y after the run")
	return cmd
}

// printSnapshot writes each parameter group as "Label: value" lines.
func printSnapshot(out io.Writer, snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		fmt.Fprintf(out, "[%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(out, "  %s: %s\n", p.Label, p.Value)
		}
	}
}

// serveMetrics starts a /metrics endpoint and returns a func that stops it.
func serveMetrics(addr string, m *telemetry.Metrics, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", slog.Any("error", err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
