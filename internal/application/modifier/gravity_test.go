package modifier

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/movekit/internal/domain/motion"
)

func TestGravity_SkipsWhileGrounded(t *testing.T) {
	g := NewGravity(10)

	out := g.ProcessMovement(grounded(), 0.1)

	assert.True(t, out.IsZero())
}

func TestGravity_AccumulatesFallSpeed(t *testing.T) {
	g := NewGravity(10)
	s := airborne()
	s.PrevGravity = -2

	out := g.ProcessMovement(s, 0.1)

	assert.True(t, out.Velocity.ApproxEqual(mgl64.Vec3{0, -3, 0}), "got %v", out.Velocity)
}

func TestGravity_DiscardsUpwardCarry(t *testing.T) {
	g := NewGravity(10)
	s := airborne()
	s.PrevGravity = 4

	out := g.ProcessMovement(s, 0.1)

	assert.True(t, out.Velocity.ApproxEqual(mgl64.Vec3{0, -1, 0}), "got %v", out.Velocity)
}

func TestGravity_FollowsUpAxis(t *testing.T) {
	g := NewGravity(10)
	s := airborne()
	s.Up = mgl64.Vec3{0, 0, 1}

	out := g.ProcessMovement(s, 1)

	assert.True(t, out.Velocity.ApproxEqual(mgl64.Vec3{0, 0, -10}))
}

func TestGravity_DefaultsToLatePhase(t *testing.T) {
	assert.Equal(t, motion.PhaseLate, NewGravity(DefaultGravity).Phase())
}
