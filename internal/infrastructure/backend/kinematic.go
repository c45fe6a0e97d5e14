package backend

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/domain/entity"
	"github.com/younwookim/movekit/internal/domain/motion"
)

// substepsPerTile is how finely a move is split when sweeping against tiles.
const substepsPerTile = 32

// maxSubsteps bounds one sweep. Longer moves stop after maxSubsteps steps.
const maxSubsteps = 64 * substepsPerTile

// Kinematic moves a box body through a tile stage by integrating the
// applied velocity directly, one axis at a time. It is both the physics
// backend and the ground resolver of its body.
type Kinematic struct {
	stage    *entity.Stage
	body     *entity.Body
	probe    ProbeConfig
	step     float64
	grounded bool
}

// NewKinematic creates a kinematic backend for body inside stage.
func NewKinematic(stage *entity.Stage, body *entity.Body, probe ProbeConfig) *Kinematic {
	return &Kinematic{
		stage: stage,
		body:  body,
		probe: probe,
		step:  stage.TileSize / substepsPerTile,
	}
}

// Body returns the moved body.
func (k *Kinematic) Body() *entity.Body {
	return k.body
}

// Position returns the feet position.
func (k *Kinematic) Position() mgl64.Vec3 {
	return k.body.Position
}

// ApplyDisplacement moves the body by velocity*deltaTime with collision.
func (k *Kinematic) ApplyDisplacement(velocity mgl64.Vec3, deltaTime float64) {
	b := k.body
	b.Velocity = velocity
	b.ClearContacts()

	d := velocity.Mul(deltaTime)
	k.moveX(d.X())
	k.moveY(d.Y())
	b.Position[2] += d.Z()
}

// Teleport places the feet at position and stops the body.
func (k *Kinematic) Teleport(position mgl64.Vec3) {
	k.body.Position = position
	k.body.Velocity = mgl64.Vec3{}
	k.body.ClearContacts()
	k.grounded = false
}

// Probe looks for a surface under the feet. The reach is larger while
// the previous probe was grounded.
func (k *Kinematic) Probe() motion.GroundContact {
	b := k.body
	r := b.Rect()

	top, ok := k.stage.SurfaceBelow(r.MinX, r.MaxX, b.Position.Y(), k.probe.reach(k.grounded))
	if !ok {
		k.grounded = false
		return motion.NoContact(motion.Up)
	}

	k.grounded = true
	return motion.GroundContact{
		Hit:      true,
		Point:    mgl64.Vec3{b.Position.X(), top, b.Position.Z()},
		Normal:   motion.Up,
		Distance: snapGap(b.Position.Y() - top),
	}
}

// substeps splits d into steps no longer than k.step.
func (k *Kinematic) substeps(d float64) (int, float64) {
	if d == 0 || math.IsNaN(d) {
		return 0, 0
	}
	if math.IsInf(d, 0) || math.Abs(d) > k.step*maxSubsteps {
		return maxSubsteps, math.Copysign(k.step, d)
	}
	n := int(math.Ceil(math.Abs(d) / k.step))
	return n, d / float64(n)
}

// moveX moves the body horizontally in substeps, stopping at walls
func (k *Kinematic) moveX(dx float64) {
	n, step := k.substeps(dx)
	if n == 0 {
		return
	}
	b := k.body

	for i := 0; i < n; i++ {
		if k.stage.IsSolidRect(b.RectAt(b.Position.X()+step, b.Position.Y())) {
			b.Velocity[0] = 0
			if step > 0 {
				b.OnWallRight = true
			} else {
				b.OnWallLeft = true
			}
			return
		}
		b.Position[0] += step
	}
}

// moveY moves the body vertically in substeps. Landing snaps the feet
// onto the surface.
func (k *Kinematic) moveY(dy float64) {
	n, step := k.substeps(dy)
	if n == 0 {
		return
	}
	b := k.body

	for i := 0; i < n; i++ {
		if k.stage.IsSolidRect(b.RectAt(b.Position.X(), b.Position.Y()+step)) {
			b.Velocity[1] = 0
			if step < 0 {
				r := b.Rect()
				if top, ok := k.stage.SurfaceBelow(r.MinX, r.MaxX, b.Position.Y(), -step+k.step); ok {
					b.Position[1] = top
				}
				b.OnGround = true
			} else {
				b.OnCeiling = true
			}
			return
		}
		b.Position[1] += step
	}
}
