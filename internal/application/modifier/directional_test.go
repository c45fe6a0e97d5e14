package modifier

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/movekit/internal/application/pipeline"
)

func TestDirectional_ReachesMaxSpeedInOneHalfSecondTick(t *testing.T) {
	d := NewDirectional(5, 10, 20)
	s := grounded()
	s.MoveDirection = mgl64.Vec3{0, 0, 1}
	s.MoveStrength = 1

	out := d.ProcessMovement(s, 0.5)

	assert.InDelta(t, 5.0, d.CurrentSpeed(), 1e-9)
	assert.True(t, out.Velocity.ApproxEqual(mgl64.Vec3{0, 0, 5}), "got %v", out.Velocity)
}

func TestDirectional_StrengthScalesTarget(t *testing.T) {
	d := NewDirectional(4, 100, 20)
	s := grounded()
	s.MoveDirection = mgl64.Vec3{1, 0, 0}
	s.MoveStrength = 0.5

	out := d.ProcessMovement(s, 1)

	assert.InDelta(t, 2.0, out.Velocity.Len(), 1e-9)
}

func TestDirectional_DeceleratesAlongPreviousHeading(t *testing.T) {
	d := NewDirectional(5, 10, 20)
	s := grounded()
	s.PrevHorizontal = mgl64.Vec3{3, 0, 0}
	s.PrevVelocity = s.PrevHorizontal
	s.PrevSpeed = 3
	d.SetCurrentSpeed(3)

	out := d.ProcessMovement(s, 0.1)

	assert.InDelta(t, 1.0, d.CurrentSpeed(), 1e-9)
	assert.True(t, out.Velocity.ApproxEqual(mgl64.Vec3{1, 0, 0}), "got %v", out.Velocity)
}

func TestDirectional_StopsWithoutHeading(t *testing.T) {
	d := NewDirectional(5, 10, 20)

	out := d.ProcessMovement(grounded(), 0.1)

	assert.True(t, out.IsZero())
	assert.Zero(t, d.CurrentSpeed())
}

func TestDirectional_Reset(t *testing.T) {
	d := NewDirectional(5, 10, 20)
	d.SetCurrentSpeed(3)

	d.ResetModifier()
	d.ResetModifier()
	assert.Zero(t, d.CurrentSpeed())

	s := grounded()
	s.MoveDirection = mgl64.Vec3{0, 0, 1}
	s.MoveStrength = 1
	s.PrevHorizontal = mgl64.Vec3{0, 0, 5}
	s.PrevVelocity = s.PrevHorizontal
	s.PrevSpeed = 5

	out := d.ProcessMovement(s, 0.1)

	assert.InDelta(t, 1.0, out.Velocity.Len(), 1e-9)
}

func TestDirectional_SetCurrentSpeedDrivesNextTick(t *testing.T) {
	d := NewDirectional(5, 10, 20)
	d.SetCurrentSpeed(4)

	s := grounded()
	s.MoveDirection = mgl64.Vec3{1, 0, 0}
	s.MoveStrength = 1

	out := d.ProcessMovement(s, 0.01)

	assert.InDelta(t, 4.1, out.Velocity.Len(), 1e-9)
	assert.InDelta(t, 4.1, d.CurrentSpeed(), 1e-9)
}

func TestDirectional_IgnoresSpeedFromOtherModifiers(t *testing.T) {
	body := &planeBody{}
	p, err := pipeline.New(body, body, pipeline.WithID("dash"))
	require.NoError(t, err)

	p.AddModifier(NewDirectional(5, 10, 20))
	dash := NewTarget()
	p.AddModifier(dash)
	dash.Start(TargetMovement{Duration: 0.3, Z: AxisMovement{Use: true, Distance: 3}}, 0)

	for i := 0; i < 3; i++ {
		p.Tick(0.1)
	}
	require.False(t, dash.Active())
	assert.InDelta(t, 3.0, body.position.Z(), 1e-9)

	for i := 0; i < 10; i++ {
		p.Tick(0.1)
	}
	assert.InDelta(t, 3.0, body.position.Z(), 1e-9)
}

func TestDirectional_ScenarioAcceleratesAlongZ(t *testing.T) {
	body := &planeBody{}
	p, err := pipeline.New(body, body, pipeline.WithID("scenario"))
	require.NoError(t, err)

	d := NewDirectional(5, 10, 20)
	p.AddModifier(d)
	p.SetMoveDirection(mgl64.Vec3{0, 0, 1}, 1)

	prevSpeed := 0.0
	prevZ := 0.0
	for i := 1; i <= 5; i++ {
		p.Tick(0.1)
		speed := p.State().PrevSpeed

		assert.Greater(t, speed, prevSpeed, "tick %d", i)
		assert.LessOrEqual(t, speed, 5.0+1e-9)
		assert.InDelta(t, float64(i), speed, 1e-9)

		assert.Greater(t, body.position.Z(), prevZ)
		assert.Zero(t, body.position.X())
		assert.Zero(t, body.position.Y())

		prevSpeed = speed
		prevZ = body.position.Z()
	}
	assert.InDelta(t, 1.5, body.position.Z(), 1e-9)
}
