package ui

import (
	"fmt"

	"lifegrid/internal/core"
)

// Status carries viewer state shown next to the sim's own parameters.
type Status struct {
	CornerX, CornerY int
	Speed            int
	Running          bool
}

// statusLines renders the HUD text: the sim's parameter groups followed by
// the viewer state.
func statusLines(sim core.Sim, st Status) []string {
	lines := []string{sim.Name(), ""}
	if p, ok := sim.(core.ParameterProvider); ok {
		for _, g := range p.Parameters().Groups {
			lines = append(lines, g.Name)
			for _, param := range g.Params {
				lines = append(lines, fmt.Sprintf("  %s: %s", param.Label, param.Value))
			}
		}
	} else {
		lines = append(lines,
			fmt.Sprintf("Time: %d", sim.Time()),
			fmt.Sprintf("Population: %d", sim.Population()),
		)
	}
	state := "stopped"
	if st.Running {
		state = "running"
	}
	return append(lines, "",
		"View",
		fmt.Sprintf("  Upper left: x=%d, y=%d", st.CornerX, st.CornerY),
		fmt.Sprintf("  Speed: %d/s (%s)", st.Speed, state),
	)
}
