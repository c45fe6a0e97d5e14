package backend

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/movekit/internal/application/pipeline"
	"github.com/younwookim/movekit/internal/domain/entity"
	"github.com/younwookim/movekit/internal/domain/motion"
)

func newTestKinematic(feet mgl64.Vec3) *Kinematic {
	body := entity.NewBody(feet, 0.5, 1.5)
	return NewKinematic(testStage(), body, DefaultProbeConfig())
}

func TestKinematic_ProbeOnFloor(t *testing.T) {
	k := newTestKinematic(mgl64.Vec3{2, 1, 0})

	c := k.Probe()

	require.True(t, c.Hit)
	assert.Equal(t, mgl64.Vec3{2, 1, 0}, c.Point)
	assert.Equal(t, motion.Up, c.Normal)
	assert.Zero(t, c.Distance)
}

func TestKinematic_ProbeReachDependsOnGroundedState(t *testing.T) {
	k := newTestKinematic(mgl64.Vec3{2, 1.2, 0})

	// Airborne: 0.2 is beyond the air reach
	assert.False(t, k.Probe().Hit)

	k.Teleport(mgl64.Vec3{2, 1, 0})
	require.True(t, k.Probe().Hit)

	// Grounded: the same gap is within the stair reach
	k.Body().Position = mgl64.Vec3{2, 1.2, 0}
	c := k.Probe()
	require.True(t, c.Hit)
	assert.InDelta(t, 0.2, c.Distance, 1e-9)
}

func TestKinematic_SmallGapSnapsToZero(t *testing.T) {
	k := newTestKinematic(mgl64.Vec3{2, 1.005, 0})

	c := k.Probe()

	require.True(t, c.Hit)
	assert.Zero(t, c.Distance)
}

func TestKinematic_FallLandsOnFloor(t *testing.T) {
	k := newTestKinematic(mgl64.Vec3{2, 2.5, 0})

	k.ApplyDisplacement(mgl64.Vec3{0, -10, 0}, 0.5)

	b := k.Body()
	assert.Equal(t, 1.0, b.Position.Y())
	assert.True(t, b.OnGround)
	assert.Zero(t, b.Velocity.Y())
}

func TestKinematic_WallStopsHorizontalMove(t *testing.T) {
	k := newTestKinematic(mgl64.Vec3{3, 1, 0})

	k.ApplyDisplacement(mgl64.Vec3{10, 0, 0}, 1)

	b := k.Body()
	assert.True(t, b.OnWallRight)
	assert.LessOrEqual(t, b.Rect().MaxX, 5.0)
	assert.Greater(t, b.Rect().MaxX, 5.0-1.0/substepsPerTile-1e-9)
}

func TestKinematic_DepthAxisIsFree(t *testing.T) {
	k := newTestKinematic(mgl64.Vec3{2, 1, 0})

	k.ApplyDisplacement(mgl64.Vec3{0, 0, 3}, 0.5)

	assert.Equal(t, mgl64.Vec3{2, 1, 1.5}, k.Position())
}

func TestKinematic_Teleport(t *testing.T) {
	k := newTestKinematic(mgl64.Vec3{2, 1, 0})
	k.ApplyDisplacement(mgl64.Vec3{1, 0, 0}, 0.1)

	k.Teleport(mgl64.Vec3{6.5, 3, 0})

	assert.Equal(t, mgl64.Vec3{6.5, 3, 0}, k.Position())
	assert.Equal(t, mgl64.Vec3{}, k.Body().Velocity)
}

func TestKinematic_HugeDisplacementStopsAtWall(t *testing.T) {
	for _, v := range []float64{1e12, math.Inf(1)} {
		k := newTestKinematic(mgl64.Vec3{2, 1, 0})

		k.ApplyDisplacement(mgl64.Vec3{v, 0, 0}, 0.1)

		assert.InDelta(t, 4.75, k.Position().X(), 1e-9)
		assert.True(t, k.Body().OnWallRight)
	}
}

func TestKinematic_HugeDisplacementIsBounded(t *testing.T) {
	rows := make([]string, 100)
	for i := range rows {
		rows[i] = "#."
	}
	body := entity.NewBody(mgl64.Vec3{1.5, 1, 0}, 0.5, 0.5)
	k := NewKinematic(stageFromRows(rows...), body, DefaultProbeConfig())

	k.ApplyDisplacement(mgl64.Vec3{0, 1e15, 0}, 1)

	assert.InDelta(t, 65.0, k.Position().Y(), 1e-9, "one sweep covers at most 64 tiles")
	assert.False(t, k.Body().OnCeiling)
}

func TestKinematic_DrivesPipeline(t *testing.T) {
	k := newTestKinematic(mgl64.Vec3{2, 2, 0})
	p, err := pipeline.New(k, k, pipeline.WithID("kinematic"))
	require.NoError(t, err)

	fall := &constantVelocity{v: mgl64.Vec3{0, -5, 0}}
	p.AddModifier(fall)

	landed := 0
	p.Subscribe(pipeline.EventLanded, func(pipeline.Event) { landed++ })

	for i := 0; i < 10; i++ {
		p.Tick(0.05)
	}
	p.Tick(0.05)

	assert.Equal(t, 1, landed)
	assert.Equal(t, 1.0, k.Position().Y())
	assert.True(t, p.State().IsGrounded)
}

type constantVelocity struct {
	v mgl64.Vec3
}

func (c *constantVelocity) Phase() motion.Phase { return motion.PhaseDefault }
func (c *constantVelocity) ProcessMovement(motion.Snapshot, float64) motion.Delta {
	return motion.VelocityDelta(c.v)
}
func (c *constantVelocity) ResetModifier() {}
