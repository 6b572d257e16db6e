package life

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize reports a non-positive torus size.
	ErrInvalidSize = errors.New("life: torus size must be positive")
	// ErrUnknownTopology reports an unrecognized topology name or value.
	ErrUnknownTopology = errors.New("life: unknown topology")
	// ErrWrongTopology matches any *WrongTopologyError.
	ErrWrongTopology = errors.New("life: operation not supported by this topology")
	// ErrUnknownPattern reports a pattern name missing from the catalog.
	ErrUnknownPattern = errors.New("life: unknown pattern")
	// ErrInvalidDensity reports a randomizer density outside [0, 1].
	ErrInvalidDensity = errors.New("life: density must be within [0, 1]")
)

// WrongTopologyError is returned when an operation is invoked on a World
// whose topology does not support it. Want names the topology to use.
type WrongTopologyError struct {
	Op   string
	Want Topology
	Got  Topology
}

func (e *WrongTopologyError) Error() string {
	return fmt.Sprintf("life: %s requires a %s world, got %s", e.Op, e.Want, e.Got)
}

// Is lets errors.Is(err, ErrWrongTopology) match.
func (e *WrongTopologyError) Is(target error) bool {
	return target == ErrWrongTopology
}
