package modifier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/domain/motion"
)

// planeBody is a body on an infinite ground plane at y=0. It doubles as
// the ground resolver.
type planeBody struct {
	position mgl64.Vec3
}

func (b *planeBody) Probe() motion.GroundContact {
	if b.position.Y() > 0.001 {
		return motion.NoContact(motion.Up)
	}
	return motion.GroundContact{Hit: true, Point: mgl64.Vec3{b.position.X(), 0, b.position.Z()}, Normal: motion.Up}
}

func (b *planeBody) ApplyDisplacement(velocity mgl64.Vec3, deltaTime float64) {
	b.position = b.position.Add(velocity.Mul(deltaTime))
	if b.position.Y() < 0 {
		b.position[1] = 0
	}
}

func (b *planeBody) Teleport(position mgl64.Vec3) {
	b.position = position
}

type groundingSpy struct {
	calls int
}

func (g *groundingSpy) ForceUngrounded() { g.calls++ }

func grounded() motion.Snapshot {
	return motion.Snapshot{Up: motion.Up, IsGrounded: true, WasGrounded: true, GroundNormal: motion.Up}
}

func airborne() motion.Snapshot {
	return motion.Snapshot{Up: motion.Up, GroundNormal: motion.Up}
}
