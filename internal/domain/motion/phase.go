package motion

// Phase is the execution-order tag of a modifier.
// Lower phases run first; ties keep registration order.
type Phase int

const (
	PhaseEarly Phase = iota
	PhaseDefault
	PhaseLate
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseEarly:
		return "Early"
	case PhaseDefault:
		return "Default"
	case PhaseLate:
		return "Late"
	default:
		return "Unknown"
	}
}

// ParsePhase converts a config string into a Phase.
// Unknown or empty names fall back to PhaseDefault.
func ParsePhase(name string) Phase {
	switch name {
	case "early", "Early":
		return PhaseEarly
	case "late", "Late":
		return PhaseLate
	default:
		return PhaseDefault
	}
}
