package motion

import "github.com/go-gl/mathgl/mgl64"

// FullStrength is the strength sentinel meaning "use full input strength".
const FullStrength = -1.0

// State is the authoritative kinematic state of one moving entity.
// It is owned by a single pipeline; modifiers only ever see a Snapshot.
type State struct {
	Up mgl64.Vec3

	// Input
	MoveDirection mgl64.Vec3 // unit vector or zero
	MoveStrength  float64    // [0,1], zero iff MoveDirection is zero

	// Ground
	IsGrounded     bool
	WasGrounded    bool
	GroundPoint    mgl64.Vec3
	GroundNormal   mgl64.Vec3
	GroundDistance float64

	// Per-tick accumulators, zero at tick start
	PendingVelocity mgl64.Vec3
	PendingPosition mgl64.Vec3

	// Derived once per tick, read by next tick's modifiers
	ResolvedVelocity   mgl64.Vec3
	ResolvedHorizontal mgl64.Vec3
	ResolvedSpeed      float64
	ResolvedGravity    float64

	IsMoving bool
	HasInput bool
}

// NewState creates a grounded-false, motionless state for the given up axis.
func NewState(up mgl64.Vec3) State {
	up = SafeNormalize(up)
	if up == (mgl64.Vec3{}) {
		up = Up
	}
	return State{
		Up:           up,
		GroundNormal: up,
	}
}

// SetInput applies a movement input. A zero direction, or a zero strength,
// clears direction and strength together. Negative strength means full strength.
func (s *State) SetInput(direction mgl64.Vec3, strength float64) {
	dir := SafeNormalize(direction)
	if dir == (mgl64.Vec3{}) || strength == 0 {
		s.ClearInput()
		return
	}
	s.MoveDirection = dir
	if strength < 0 {
		s.MoveStrength = 1
	} else {
		s.MoveStrength = Clamp01(strength)
	}
}

// ClearInput zeroes direction and strength.
func (s *State) ClearInput() {
	s.MoveDirection = mgl64.Vec3{}
	s.MoveStrength = 0
}

// SetGroundContact stores the contact data of the latest probe.
func (s *State) SetGroundContact(point, normal mgl64.Vec3, distance float64) {
	s.GroundPoint = point
	s.GroundNormal = normal
	s.GroundDistance = distance
}

// Accumulate folds a modifier contribution into the pending accumulators.
func (s *State) Accumulate(d Delta) {
	s.PendingVelocity = s.PendingVelocity.Add(d.Velocity)
	s.PendingPosition = s.PendingPosition.Add(d.Position)
}

// CombinedVelocity returns pendingVelocity + pendingPosition/deltaTime.
func (s *State) CombinedVelocity(deltaTime float64) mgl64.Vec3 {
	return s.PendingVelocity.Add(SafeDivideVec(s.PendingPosition, deltaTime))
}

// Derive records the applied velocity and splits it into the horizontal
// and vertical parts that next tick's modifiers read.
func (s *State) Derive(velocity mgl64.Vec3) {
	s.ResolvedVelocity = velocity
	s.ResolvedHorizontal = Horizontal(velocity, s.Up)
	s.ResolvedSpeed = s.ResolvedHorizontal.Len()
	if s.IsGrounded {
		s.ResolvedGravity = 0
	} else {
		s.ResolvedGravity = Vertical(velocity, s.Up)
	}
}

// ResetPending zeroes the per-tick accumulators.
func (s *State) ResetPending() {
	s.PendingVelocity = mgl64.Vec3{}
	s.PendingPosition = mgl64.Vec3{}
}

// ResetDerived clears everything carried across ticks except the ground flags.
func (s *State) ResetDerived() {
	s.ResetPending()
	s.ClearInput()
	s.ResolvedVelocity = mgl64.Vec3{}
	s.ResolvedHorizontal = mgl64.Vec3{}
	s.ResolvedSpeed = 0
	s.ResolvedGravity = 0
}

// Snapshot returns the read-only view handed to modifiers.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Up:             s.Up,
		MoveDirection:  s.MoveDirection,
		MoveStrength:   s.MoveStrength,
		IsGrounded:     s.IsGrounded,
		WasGrounded:    s.WasGrounded,
		GroundPoint:    s.GroundPoint,
		GroundNormal:   s.GroundNormal,
		GroundDistance: s.GroundDistance,
		PrevVelocity:   s.ResolvedVelocity,
		PrevHorizontal: s.ResolvedHorizontal,
		PrevSpeed:      s.ResolvedSpeed,
		PrevGravity:    s.ResolvedGravity,
		IsMoving:       s.IsMoving,
	}
}

// Snapshot is a value copy of the state a modifier may observe.
// It carries last tick's resolved motion, never this tick's accumulation.
type Snapshot struct {
	Up mgl64.Vec3

	MoveDirection mgl64.Vec3
	MoveStrength  float64

	IsGrounded     bool
	WasGrounded    bool
	GroundPoint    mgl64.Vec3
	GroundNormal   mgl64.Vec3
	GroundDistance float64

	PrevVelocity   mgl64.Vec3
	PrevHorizontal mgl64.Vec3
	PrevSpeed      float64
	PrevGravity    float64

	IsMoving bool
}

// Settled reports whether the entity was grounded on this and the previous tick.
func (s Snapshot) Settled() bool {
	return s.IsGrounded && s.WasGrounded
}

// HasInput reports whether a movement input is active.
func (s Snapshot) HasInput() bool {
	return s.MoveStrength > 0
}
