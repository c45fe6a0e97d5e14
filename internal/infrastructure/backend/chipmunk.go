package backend

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/younwookim/movekit/internal/domain/entity"
	"github.com/younwookim/movekit/internal/domain/motion"
)

// ChipmunkWorld is a 2D rigid-body space built from a stage. Gravity is
// left to the movement modifiers, so the space itself has none.
//
// Bodies only take their velocity in ApplyDisplacement; the host must call
// Step once per tick after every pipeline has applied.
type ChipmunkWorld struct {
	mu        sync.Mutex
	space     *cp.Space
	nextGroup uint
}

// NewChipmunkWorld creates a space with one static box per solid run of stage.
func NewChipmunkWorld(stage *entity.Stage) *ChipmunkWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: 0})

	if stage != nil {
		for _, r := range stage.SolidRuns() {
			bb := cp.BB{L: r.MinX, B: r.MinY, R: r.MaxX, T: r.MaxY}
			shape := cp.NewBox2(space.StaticBody, bb, 0)
			shape.SetFriction(0)
			space.AddShape(shape)
		}
	}

	return &ChipmunkWorld{space: space}
}

// Space exposes the underlying space.
func (w *ChipmunkWorld) Space() *cp.Space {
	return w.space
}

// Step advances the space by deltaTime.
func (w *ChipmunkWorld) Step(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.space.Step(deltaTime)
}

// NewBody adds a non-rotating box body with its feet at feet.
func (w *ChipmunkWorld) NewBody(feet mgl64.Vec3, width, height, mass float64, probe ProbeConfig) *ChipmunkBody {
	w.mu.Lock()
	defer w.mu.Unlock()

	if mass <= 0 {
		mass = 1
	}
	w.nextGroup++

	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: feet.X(), Y: feet.Y() + height/2})
	w.space.AddBody(body)

	filter := cp.NewShapeFilter(w.nextGroup, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(filter)
	w.space.AddShape(shape)

	return &ChipmunkBody{
		world:      w,
		body:       body,
		shape:      shape,
		filter:     filter,
		halfHeight: height / 2,
		probe:      probe,
		depth:      feet.Z(),
	}
}

// ChipmunkBody is one dynamic body of a ChipmunkWorld. It is the physics
// backend and ground resolver of one pipeline.
type ChipmunkBody struct {
	world      *ChipmunkWorld
	body       *cp.Body
	shape      *cp.Shape
	filter     cp.ShapeFilter
	halfHeight float64
	probe      ProbeConfig
	grounded   bool
	depth      float64 // z is carried outside the 2D space
}

// ApplyDisplacement hands the velocity to the solver for the next Step.
// The part of the velocity that would carry the feet below the surface
// underneath is removed, and a body already sunk into it is pushed back out.
func (b *ChipmunkBody) ApplyDisplacement(velocity mgl64.Vec3, deltaTime float64) {
	b.world.mu.Lock()
	defer b.world.mu.Unlock()

	v := cp.Vector{X: velocity.X(), Y: velocity.Y()}
	if deltaTime > 0 {
		v = b.clampToGround(v, deltaTime)
	}
	b.body.SetVelocityVector(v)
	b.depth += velocity.Z() * deltaTime
}

// clampToGround limits the motion into the surface under the feet to the
// gap that is left, so one Step never ends below it.
func (b *ChipmunkBody) clampToGround(v cp.Vector, deltaTime float64) cp.Vector {
	center := b.body.Position()
	reach := math.Max(0, -v.Y*deltaTime) + SnapDistance
	end := cp.Vector{X: center.X, Y: center.Y - b.halfHeight - reach}

	info := b.world.space.SegmentQueryFirst(center, end, 0, b.filter)
	if info.Shape == nil {
		return v
	}

	gap := center.Y - b.halfHeight - info.Point.Y
	into := v.Dot(info.Normal)
	if limit := -gap / deltaTime; into < limit {
		v = v.Add(info.Normal.Mult(limit - into))
	}
	return v
}

// Teleport moves the feet to position and stops the body.
func (b *ChipmunkBody) Teleport(position mgl64.Vec3) {
	b.world.mu.Lock()
	defer b.world.mu.Unlock()

	b.body.SetPosition(cp.Vector{X: position.X(), Y: position.Y() + b.halfHeight})
	b.body.SetVelocity(0, 0)
	b.body.Activate()
	b.depth = position.Z()
	b.grounded = false
}

// Position returns the feet position.
func (b *ChipmunkBody) Position() mgl64.Vec3 {
	b.world.mu.Lock()
	defer b.world.mu.Unlock()
	return b.feet()
}

// Velocity returns the body velocity after the last step.
func (b *ChipmunkBody) Velocity() mgl64.Vec3 {
	b.world.mu.Lock()
	defer b.world.mu.Unlock()
	v := b.body.Velocity()
	return mgl64.Vec3{v.X, v.Y, 0}
}

func (b *ChipmunkBody) feet() mgl64.Vec3 {
	p := b.body.Position()
	return mgl64.Vec3{p.X, p.Y - b.halfHeight, b.depth}
}

// Probe casts a segment from the body center down past the feet.
func (b *ChipmunkBody) Probe() motion.GroundContact {
	b.world.mu.Lock()
	defer b.world.mu.Unlock()

	center := b.body.Position()
	reach := b.probe.reach(b.grounded)
	end := cp.Vector{X: center.X, Y: center.Y - b.halfHeight - reach}

	info := b.world.space.SegmentQueryFirst(center, end, 0, b.filter)
	if info.Shape == nil {
		b.grounded = false
		return motion.NoContact(motion.Up)
	}

	b.grounded = true
	feet := b.feet()
	return motion.GroundContact{
		Hit:      true,
		Point:    mgl64.Vec3{info.Point.X, info.Point.Y, b.depth},
		Normal:   motion.SafeNormalize(mgl64.Vec3{info.Normal.X, info.Normal.Y, 0}),
		Distance: snapGap(feet.Y() - info.Point.Y),
	}
}
