package modifier

import (
	"math"

	"github.com/younwookim/movekit/internal/domain/motion"
)

// Directional accelerates toward maxSpeed*strength along the input
// direction and decelerates along the previous heading without input.
type Directional struct {
	phase        motion.Phase
	maxSpeed     float64
	acceleration float64
	deceleration float64

	speed float64
}

// NewDirectional creates a directional modifier in the default phase.
func NewDirectional(maxSpeed, acceleration, deceleration float64) *Directional {
	return &Directional{
		phase:        motion.PhaseDefault,
		maxSpeed:     maxSpeed,
		acceleration: acceleration,
		deceleration: deceleration,
	}
}

func (d *Directional) Phase() motion.Phase           { return d.phase }
func (d *Directional) SetPhase(p motion.Phase)       { d.phase = p }
func (d *Directional) SetMaxSpeed(v float64)         { d.maxSpeed = v }
func (d *Directional) SetAcceleration(v float64)     { d.acceleration = v }
func (d *Directional) SetDeceleration(v float64)     { d.deceleration = v }
func (d *Directional) MaxSpeed() float64             { return d.maxSpeed }
func (d *Directional) CurrentSpeed() float64         { return d.speed }
func (d *Directional) SetCurrentSpeed(speed float64) { d.speed = speed }

// ProcessMovement eases the modifier's own speed toward the target. Speed
// added by other modifiers is never picked up here.
func (d *Directional) ProcessMovement(s motion.Snapshot, deltaTime float64) motion.Delta {
	speed := d.speed
	direction := s.MoveDirection

	if s.MoveStrength > 0 {
		speed = motion.MoveTowards(speed, d.maxSpeed*s.MoveStrength, deltaTime*d.acceleration)
	} else {
		// Keep sliding along the last heading.
		direction = motion.SafeNormalize(s.PrevHorizontal)
		speed = motion.MoveTowards(speed, 0, deltaTime*d.deceleration)
	}
	speed = math.Min(speed, d.maxSpeed)
	d.speed = speed

	velocity := s.PrevHorizontal.Add(direction.Mul(speed))
	return motion.VelocityDelta(motion.ClampMagnitude(velocity, speed))
}

func (d *Directional) ResetModifier() {
	d.speed = 0
}
