package state

// SandboxState represents the current state of the sandbox
type SandboxState int

const (
	StatePlaying SandboxState = iota
	StatePaused
	StateReplaying
	StateFinished // replay ran out of input
)

// String returns the string representation of the sandbox state
func (s SandboxState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Ticking reports whether the simulation advances in this state
func (s SandboxState) Ticking() bool {
	return s == StatePlaying || s == StateReplaying
}
