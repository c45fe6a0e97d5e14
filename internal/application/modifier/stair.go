package modifier

import "github.com/younwookim/movekit/internal/domain/motion"

// Stair keeps a settled body glued to the ground by removing the probe gap
// as a position correction.
type Stair struct {
	phase motion.Phase
}

func NewStair() *Stair {
	return &Stair{phase: motion.PhaseLate}
}

func (m *Stair) Phase() motion.Phase     { return m.phase }
func (m *Stair) SetPhase(p motion.Phase) { m.phase = p }

func (m *Stair) ProcessMovement(s motion.Snapshot, _ float64) motion.Delta {
	if !s.Settled() {
		return motion.Delta{}
	}
	return motion.PositionDelta(s.Up.Mul(-s.GroundDistance))
}

func (m *Stair) ResetModifier() {}

// DefaultSnapSpeed is the downward snap velocity of GroundSnap.
const DefaultSnapSpeed = 9.81

// landingSnapFactor scales the snap on the first grounded tick.
const landingSnapFactor = 0.1

// GroundSnap is the velocity based variant of Stair: it pushes a settled
// body down at a fixed speed and nudges it lightly on the landing tick.
type GroundSnap struct {
	phase motion.Phase
	speed float64
}

func NewGroundSnap(speed float64) *GroundSnap {
	return &GroundSnap{phase: motion.PhaseLate, speed: speed}
}

func (m *GroundSnap) Phase() motion.Phase     { return m.phase }
func (m *GroundSnap) SetPhase(p motion.Phase) { m.phase = p }
func (m *GroundSnap) SetSpeed(v float64)      { m.speed = v }

func (m *GroundSnap) ProcessMovement(s motion.Snapshot, _ float64) motion.Delta {
	switch {
	case s.Settled():
		return motion.VelocityDelta(s.Up.Mul(-m.speed))
	case s.IsGrounded:
		return motion.VelocityDelta(s.Up.Mul(-m.speed * landingSnapFactor))
	default:
		return motion.Delta{}
	}
}

func (m *GroundSnap) ResetModifier() {}
