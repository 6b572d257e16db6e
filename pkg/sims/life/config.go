package life

import (
	"fmt"
	"strconv"
)

// Config controls World construction.
type Config struct {
	Topology Topology
	Size     int
}

// DefaultConfig returns an unbounded world configuration. Size is the torus
// edge length used when Topology is switched to Torus.
func DefaultConfig() Config {
	return Config{Topology: Unbounded, Size: 32}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Recognized keys are "topology" and "size".
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["topology"]; ok {
		t, err := ParseTopology(v)
		if err != nil {
			return c, err
		}
		c.Topology = t
	}
	if v, ok := cfg["size"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("life: size %q: %w", v, err)
		}
		if parsed <= 0 || parsed > MaxTorusSize {
			return c, ErrInvalidSize
		}
		c.Size = parsed
	}
	return c, nil
}
