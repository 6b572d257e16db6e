package app

import (
	"flag"
	"image/color"
	"strings"
	"testing"

	_ "lifegrid/pkg/sims/life"
)

func TestParseHexColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"#000000": {A: 255},
		"#FFFFFF": {R: 255, G: 255, B: 255, A: 255},
		"1a2b3c":  {R: 0x1a, G: 0x2b, B: 0x3c, A: 255},
	}
	for in, want := range cases {
		got, err := ParseHexColor(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if got != want {
			t.Fatalf("%s: got %v want %v", in, got, want)
		}
	}
	for _, bad := range []string{"#FFF", "#GG0000", ""} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}

func TestBindAndWorldMap(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("lifeview", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-topology", "torus", "-size", "40", "-zoom", "64"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if usage := fs.Lookup("sim").Usage; !strings.Contains(usage, "life") {
		t.Fatalf("sim usage should list registered sims: %q", usage)
	}
	if cfg.Zoom != 64 {
		t.Fatalf("zoom = %d", cfg.Zoom)
	}
	m := cfg.WorldMap()
	if m["topology"] != "torus" || m["size"] != "40" {
		t.Fatalf("world map = %v", m)
	}
}
