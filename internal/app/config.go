package app

import (
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"lifegrid/internal/core"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Topology string
	Size     int
	Pattern  string
	Window   int
	Zoom     int
	Speed    int
	BG       string
	FG       string
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Topology: "unbounded",
		Size:     32,
		Window:   800,
		Zoom:     20,
		Speed:    10,
		BG:       "#000000",
		FG:       "#FFFFFF",
		Seed:     42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run: "+strings.Join(core.Names(), ", "))
	fs.StringVar(&c.Topology, "topology", c.Topology, "world topology: unbounded or torus")
	fs.IntVar(&c.Size, "size", c.Size, "torus edge length")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "named seed pattern placed at the origin")
	fs.IntVar(&c.Window, "window", c.Window, "grid window edge in pixels")
	fs.IntVar(&c.Zoom, "zoom", c.Zoom, "cells visible across the window")
	fs.IntVar(&c.Speed, "speed", c.Speed, "generations per second while running")
	fs.StringVar(&c.BG, "bg", c.BG, "background color as #RRGGBB")
	fs.StringVar(&c.FG, "fg", c.FG, "cell color as #RRGGBB")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomize key")
}

// WorldMap converts the world settings to the registry's string map.
func (c *Config) WorldMap() map[string]string {
	return map[string]string{
		"topology": c.Topology,
		"size":     strconv.Itoa(c.Size),
	}
}

// ParseHexColor parses #RRGGBB (the leading # is optional).
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
