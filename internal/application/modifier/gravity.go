package modifier

import "github.com/younwookim/movekit/internal/domain/motion"

// DefaultGravity is the downward acceleration in units/s².
const DefaultGravity = 9.81

// Gravity pulls an airborne entity down, carrying the previous fall speed.
type Gravity struct {
	phase   motion.Phase
	gravity float64
}

// NewGravity creates a gravity modifier in the late phase.
func NewGravity(gravity float64) *Gravity {
	return &Gravity{phase: motion.PhaseLate, gravity: gravity}
}

func (g *Gravity) Phase() motion.Phase     { return g.phase }
func (g *Gravity) SetPhase(p motion.Phase) { g.phase = p }
func (g *Gravity) SetGravity(v float64)    { g.gravity = v }
func (g *Gravity) Gravity() float64        { return g.gravity }

func (g *Gravity) ProcessMovement(s motion.Snapshot, deltaTime float64) motion.Delta {
	if s.IsGrounded {
		return motion.Delta{}
	}

	// Upward carry is dropped once gravity takes over.
	fall := s.PrevGravity
	if fall > 0 {
		fall = 0
	}
	fall -= g.gravity * deltaTime

	return motion.VelocityDelta(s.Up.Mul(fall))
}

func (g *Gravity) ResetModifier() {}
