package motion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNewState_DefaultsUp(t *testing.T) {
	s := NewState(mgl64.Vec3{})
	assert.Equal(t, Up, s.Up)
	assert.Equal(t, Up, s.GroundNormal)

	s = NewState(mgl64.Vec3{0, 0, 2})
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, s.Up)
}

func TestState_SetInput(t *testing.T) {
	s := NewState(Up)

	s.SetInput(mgl64.Vec3{0, 0, 2}, FullStrength)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, s.MoveDirection, "direction should be normalized")
	assert.Equal(t, 1.0, s.MoveStrength)

	s.SetInput(mgl64.Vec3{1, 0, 0}, 0.25)
	assert.Equal(t, 0.25, s.MoveStrength)

	s.SetInput(mgl64.Vec3{1, 0, 0}, 3)
	assert.Equal(t, 1.0, s.MoveStrength, "strength clamps to 1")

	s.SetInput(mgl64.Vec3{}, 0.5)
	assert.Equal(t, mgl64.Vec3{}, s.MoveDirection)
	assert.Equal(t, 0.0, s.MoveStrength, "zero direction clears strength")

	s.SetInput(mgl64.Vec3{1, 0, 0}, 0)
	assert.Equal(t, mgl64.Vec3{}, s.MoveDirection, "zero strength clears direction")
}

func TestState_AccumulateAndCombine(t *testing.T) {
	s := NewState(Up)

	s.Accumulate(VelocityDelta(mgl64.Vec3{1, 0, 0}))
	s.Accumulate(PositionDelta(mgl64.Vec3{0, 0, 0.5}))
	s.Accumulate(Delta{Velocity: mgl64.Vec3{1, 0, 0}})

	assert.Equal(t, mgl64.Vec3{2, 0, 0}, s.PendingVelocity)
	assert.Equal(t, mgl64.Vec3{0, 0, 0.5}, s.PendingPosition)
	assert.Equal(t, mgl64.Vec3{2, 0, 5}, s.CombinedVelocity(0.1))
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, s.CombinedVelocity(0), "zero dt drops the position term")

	s.ResetPending()
	assert.Equal(t, mgl64.Vec3{}, s.PendingVelocity)
	assert.Equal(t, mgl64.Vec3{}, s.PendingPosition)
}

func TestState_Derive(t *testing.T) {
	s := NewState(Up)
	s.IsGrounded = false

	s.Derive(mgl64.Vec3{3, -2, 4})
	assert.Equal(t, 5.0, s.ResolvedSpeed)
	assert.Equal(t, -2.0, s.ResolvedGravity)
	assert.Equal(t, mgl64.Vec3{3, 0, 4}, s.ResolvedHorizontal)

	s.IsGrounded = true
	s.Derive(mgl64.Vec3{0, -2, 0})
	assert.Equal(t, 0.0, s.ResolvedGravity, "gravity carry is zeroed while grounded")
}

func TestSnapshot_CarriesPreviousTick(t *testing.T) {
	s := NewState(Up)
	s.Derive(mgl64.Vec3{1, 0, 0})
	s.Accumulate(VelocityDelta(mgl64.Vec3{9, 9, 9}))

	snap := s.Snapshot()
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, snap.PrevVelocity)
	assert.Equal(t, 1.0, snap.PrevSpeed)

	snap.PrevSpeed = 100
	assert.Equal(t, 1.0, s.ResolvedSpeed, "snapshot is a copy")
}

func TestSnapshot_Settled(t *testing.T) {
	assert.True(t, Snapshot{IsGrounded: true, WasGrounded: true}.Settled())
	assert.False(t, Snapshot{IsGrounded: true}.Settled())
	assert.False(t, Snapshot{WasGrounded: true}.Settled())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Early", PhaseEarly.String())
	assert.Equal(t, "Default", PhaseDefault.String())
	assert.Equal(t, "Late", PhaseLate.String())
	assert.Equal(t, "Unknown", Phase(99).String())
	assert.True(t, PhaseEarly < PhaseDefault && PhaseDefault < PhaseLate)
}

func TestParsePhase(t *testing.T) {
	assert.Equal(t, PhaseEarly, ParsePhase("early"))
	assert.Equal(t, PhaseLate, ParsePhase("Late"))
	assert.Equal(t, PhaseDefault, ParsePhase(""))
}
