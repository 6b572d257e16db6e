package core

import (
	"fmt"
	"slices"
	"strings"
)

// Sim is the contract collaborators (viewer, CLI, runner) use to drive a
// simulation: query cells, mutate them, advance time and read counters.
type Sim interface {
	Name() string
	Step()
	Cell(x, y int) bool
	Toggle(x, y int)
	Time() int
	Population() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build looks up name in the registry and constructs the Sim.
func Build(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f(cfg)
}
