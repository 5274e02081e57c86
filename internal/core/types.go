package core

// Mode is the run state of a simulation.
type Mode uint8

const (
	// Paused holds the board still so it can be edited.
	Paused Mode = iota
	// Running advances one generation per tick.
	Running
)

// Toggle flips between Paused and Running.
func (m Mode) Toggle() Mode {
	if m == Running {
		return Paused
	}
	return Running
}

// String returns the label shown on the status indicator.
func (m Mode) String() string {
	if m == Running {
		return "Playing"
	}
	return "Paused"
}

// State is everything the loop and its input handling mutate.
type State struct {
	Grid *Grid
	Mode Mode
	// StepOnce requests a single generation on the next tick regardless of Mode.
	StepOnce bool
}

// NewState returns an empty, paused board of the given size.
func NewState(size int) State {
	return State{Grid: NewGrid(size), Mode: Paused}
}
