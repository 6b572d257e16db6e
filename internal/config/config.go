// Package config loads run configuration for lifectl from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"

	"gopkg.in/yaml.v3"
)

// Config is the top-level run configuration.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Seed    SeedConfig    `yaml:"seed"`
	Run     RunConfig     `yaml:"run"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// WorldConfig selects the topology and, for torus, its size.
type WorldConfig struct {
	Topology string `yaml:"topology"`
	Size     int    `yaml:"size"`
}

// SeedConfig describes the initial live cells.
type SeedConfig struct {
	Pattern string      `yaml:"pattern"`
	Offset  [2]int      `yaml:"offset"`
	Cells   [][2]int    `yaml:"cells"`
	Random  *RandomRect `yaml:"random"`
	RNGSeed int64       `yaml:"rng_seed"`
}

// RandomRect fills an inclusive rectangle at the given density.
type RandomRect struct {
	X1      int     `yaml:"x1"`
	Y1      int     `yaml:"y1"`
	X2      int     `yaml:"x2"`
	Y2      int     `yaml:"y2"`
	Density float64 `yaml:"density"`
}

// RunConfig controls how many generations run and how fast.
type RunConfig struct {
	Steps       int           `yaml:"steps"`
	TPS         int           `yaml:"tps"`
	ReportEvery int           `yaml:"report_every"`
	Timeout     time.Duration `yaml:"timeout"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// MaxTPS is the fastest pacing that still yields a non-zero tick interval.
const MaxTPS = int(time.Second)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		World: WorldConfig{Topology: "unbounded", Size: 32},
		Seed:  SeedConfig{RNGSeed: 42},
		Run:   RunConfig{Steps: 100, ReportEvery: 10},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path and overlays it on Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at run time.
func (c Config) Validate() error {
	topo, err := life.ParseTopology(c.World.Topology)
	if err != nil {
		return err
	}
	if topo == life.Torus && (c.World.Size <= 0 || c.World.Size > life.MaxTorusSize) {
		return life.ErrInvalidSize
	}
	if c.Seed.Pattern != "" {
		if _, err := life.LookupPattern(c.Seed.Pattern); err != nil {
			return err
		}
	}
	if r := c.Seed.Random; r != nil && (r.Density < 0 || r.Density > 1) {
		return life.ErrInvalidDensity
	}
	if c.Run.Steps < 0 {
		return errors.New("run.steps must not be negative")
	}
	if c.Run.TPS < 0 || c.Run.TPS > MaxTPS {
		return fmt.Errorf("run.tps must be within [0, %d]", MaxTPS)
	}
	return nil
}

// WorldMap converts the world section to the registry's string map.
func (c Config) WorldMap() map[string]string {
	m := map[string]string{"topology": c.World.Topology}
	if c.World.Size > 0 {
		m["size"] = strconv.Itoa(c.World.Size)
	}
	return m
}

// Apply sets the initial cells described by the seed section on w. The random
// rectangle draws from an RNG seeded with RNGSeed.
func (s SeedConfig) Apply(w *life.World) error {
	if s.Pattern != "" {
		p, err := life.LookupPattern(s.Pattern)
		if err != nil {
			return err
		}
		life.Place(w, p, s.Offset[0], s.Offset[1])
	}
	for _, c := range s.Cells {
		w.SetCell(c[0], c[1], life.Set)
	}
	if r := s.Random; r != nil {
		rect := life.Rect{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
		if err := life.Randomize(w, rect, r.Density, core.NewRNG(s.RNGSeed)); err != nil {
			return err
		}
	}
	return nil
}
