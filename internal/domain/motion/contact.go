package motion

import "github.com/go-gl/mathgl/mgl64"

// GroundContact is the result of one ground probe.
// Point, Normal and Distance are only meaningful when Hit is true.
type GroundContact struct {
	Hit      bool
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64 // penetration / gap to the ground surface
}

// NoContact returns an airborne contact with the normal pointing along up.
func NoContact(up mgl64.Vec3) GroundContact {
	return GroundContact{Normal: up}
}

// Delta is a modifier's contribution for a single tick.
// Velocity is in units per second, Position is a displacement for this tick.
type Delta struct {
	Velocity mgl64.Vec3
	Position mgl64.Vec3
}

// VelocityDelta is shorthand for a velocity-only contribution.
func VelocityDelta(v mgl64.Vec3) Delta {
	return Delta{Velocity: v}
}

// PositionDelta is shorthand for a displacement-only contribution.
func PositionDelta(p mgl64.Vec3) Delta {
	return Delta{Position: p}
}

// Add returns the component-wise sum of two deltas.
func (d Delta) Add(o Delta) Delta {
	return Delta{
		Velocity: d.Velocity.Add(o.Velocity),
		Position: d.Position.Add(o.Position),
	}
}

// IsZero reports whether the delta contributes nothing.
func (d Delta) IsZero() bool {
	return d.Velocity == (mgl64.Vec3{}) && d.Position == (mgl64.Vec3{})
}
