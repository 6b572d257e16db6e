package life

// Conway returns the next state of a cell given its current state and the
// number of live cells in its Moore neighborhood.
func Conway(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
