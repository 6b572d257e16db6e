// Package runner drives a simulation for a fixed number of generations with
// cancellation, optional pacing, logging and metrics.
package runner

import (
	"context"
	"log/slog"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = telemetry.Tracer("runner")

// Options configures a Runner.
type Options struct {
	// Steps is the number of generations to compute.
	Steps int
	// TPS paces generations per second; 0 runs unpaced.
	TPS int
	// ReportEvery logs progress every N generations; 0 disables progress logs.
	ReportEvery int

	Logger  *slog.Logger
	Metrics *telemetry.Metrics
}

// Result summarizes a finished or interrupted run.
type Result struct {
	ID         string
	Steps      int
	Time       int
	Population int
	Chunks     int
	Elapsed    time.Duration
}

type chunkCounter interface {
	ChunkCount() int
}

// Runner owns a Sim for the duration of Run. The Sim must not be touched by
// anything else while Run is in progress.
type Runner struct {
	sim    core.Sim
	opts   Options
	id     string
	logger *slog.Logger
}

// New constructs a Runner for sim. A nil logger uses slog.Default().
func New(sim core.Sim, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Runner{
		sim:    sim,
		opts:   opts,
		id:     id,
		logger: logger.With(slog.String("run_id", id), slog.String("sim", sim.Name())),
	}
}

// ID returns the run identifier attached to every log record.
func (r *Runner) ID() string { return r.id }

// Run computes opts.Steps generations. It stops early and returns ctx.Err()
// when ctx is cancelled; the result then reflects the generations completed.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "Runner.Run", trace.WithAttributes(
		attribute.String("run.id", r.id),
		attribute.Int("run.steps", r.opts.Steps),
	))
	defer span.End()

	start := time.Now()
	r.logger.Info("run started",
		slog.Int("steps", r.opts.Steps),
		slog.Int("tps", r.opts.TPS),
		slog.Int("population", r.sim.Population()),
	)
	r.opts.Metrics.Set(r.sim.Time(), r.sim.Population(), r.chunks())

	var tick <-chan time.Time
	if r.opts.TPS > 0 {
		t := time.NewTicker(max(time.Second/time.Duration(r.opts.TPS), time.Nanosecond))
		defer t.Stop()
		tick = t.C
	}

	done := 0
	var err error
loop:
	for done < r.opts.Steps {
		if tick != nil {
			select {
			case <-ctx.Done():
				err = ctx.Err()
				break loop
			case <-tick:
			}
		} else if err = ctx.Err(); err != nil {
			break
		}

		stepStart := time.Now()
		r.sim.Step()
		done++
		r.opts.Metrics.ObserveStep(time.Since(stepStart), r.sim.Time(), r.sim.Population(), r.chunks())

		if r.opts.ReportEvery > 0 && done%r.opts.ReportEvery == 0 {
			r.logger.Info("progress",
				slog.Int("time", r.sim.Time()),
				slog.Int("population", r.sim.Population()),
				slog.Int("chunks", r.chunks()),
			)
		}
	}

	res := Result{
		ID:         r.id,
		Steps:      done,
		Time:       r.sim.Time(),
		Population: r.sim.Population(),
		Chunks:     r.chunks(),
		Elapsed:    time.Since(start),
	}
	span.SetAttributes(
		attribute.Int("run.completed", res.Steps),
		attribute.Int("run.population", res.Population),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		r.logger.Warn("run interrupted", slog.Int("completed", done), slog.Any("error", err))
		return res, err
	}
	r.logger.Info("run finished",
		slog.Int("time", res.Time),
		slog.Int("population", res.Population),
		slog.Int("chunks", res.Chunks),
		slog.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

func (r *Runner) chunks() int {
	if c, ok := r.sim.(chunkCounter); ok {
		return c.ChunkCount()
	}
	return 0
}
