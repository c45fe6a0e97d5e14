package backend

import "math"

const (
	// DefaultStairOffset is the probe reach while grounded, so small steps
	// down keep the body grounded.
	DefaultStairOffset = 0.25
	// DefaultAirOffset is the probe reach while airborne.
	DefaultAirOffset = 0.05
	// SnapDistance is the gap below which a contact counts as touching.
	// Deeper penetration is reported as a negative gap.
	SnapDistance = 0.01
)

// ProbeConfig sets how far below the feet a ground probe reaches.
type ProbeConfig struct {
	StairOffset float64
	AirOffset   float64
}

// DefaultProbeConfig returns the default probe reach.
func DefaultProbeConfig() ProbeConfig {
	return ProbeConfig{StairOffset: DefaultStairOffset, AirOffset: DefaultAirOffset}
}

func (c ProbeConfig) reach(grounded bool) float64 {
	if grounded {
		return c.StairOffset
	}
	return c.AirOffset
}

func snapGap(gap float64) float64 {
	if math.Abs(gap) < SnapDistance {
		return 0
	}
	return gap
}
