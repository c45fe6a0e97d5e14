package pipeline

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/younwookim/movekit/internal/domain/motion"
)

// Report summarizes one tick.
type Report struct {
	Tick     uint64
	Velocity mgl64.Vec3 // combined velocity handed to the backend
	Events   []Event    // every event emitted since the previous report
}

// Pipeline drives the movement of one entity.
//
// It owns the kinematic state and the modifier registry. A Pipeline is not
// safe for concurrent use; independent pipelines may tick in parallel.
type Pipeline struct {
	id     string
	ground GroundResolver
	body   Backend
	logger *log.Logger
	debug  bool

	state    motion.State
	registry *Registry
	events   observers
	emitted  []Event

	tick        uint64
	ignoreInput int

	teleportPending bool
	teleportTarget  mgl64.Vec3

	launchGrace      int
	launchGraceTicks int
}

// New creates a pipeline bound to its ground resolver and physics backend.
// Both collaborators are required; a nil one is reported once here.
func New(ground GroundResolver, body Backend, opts ...Option) (*Pipeline, error) {
	o := options{
		launchGraceTicks: DefaultLaunchGraceTicks,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	if ground == nil {
		err := &CollaboratorError{Component: "MovementSystem " + o.id, Collaborator: "a ground resolver", Err: ErrMissingGroundResolver}
		o.logger.Printf("MovementSystem [%s]: %v", o.id, err)
		return nil, err
	}
	if body == nil {
		err := &CollaboratorError{Component: "MovementSystem " + o.id, Collaborator: "a physics backend", Err: ErrMissingBackend}
		o.logger.Printf("MovementSystem [%s]: %v", o.id, err)
		return nil, err
	}

	return &Pipeline{
		id:               o.id,
		ground:           ground,
		body:             body,
		logger:           o.logger,
		debug:            o.debug,
		state:            motion.NewState(o.up),
		registry:         NewRegistry(),
		launchGraceTicks: o.launchGraceTicks,
	}, nil
}

// ID returns the entity id.
func (p *Pipeline) ID() string {
	return p.id
}

// TickCount returns the number of completed ticks.
func (p *Pipeline) TickCount() uint64 {
	return p.tick
}

// Registry exposes the modifier registry.
func (p *Pipeline) Registry() *Registry {
	return p.registry
}

// Tick runs one simulation step.
func (p *Pipeline) Tick(deltaTime float64) Report {
	if deltaTime < 0 {
		deltaTime = 0
	}
	p.tick++

	// 1. Ground
	p.probeGround()

	// 2. Modifiers
	p.registry.ForEachEnabled(func(m Modifier) {
		d := m.ProcessMovement(p.state.Snapshot(), deltaTime)
		p.state.Accumulate(d)
	})

	// 3. Apply
	if p.teleportPending {
		p.teleportPending = false
		p.body.Teleport(p.teleportTarget)
	}
	velocity := p.state.CombinedVelocity(deltaTime)
	p.body.ApplyDisplacement(velocity, deltaTime)

	// 4. Derive
	p.state.Derive(velocity)

	// 5. Edges
	p.detectMovementEdges()

	if p.debug {
		p.logger.Printf("MovementSystem [%s]: tick=%d grounded=%t velocity=%v speed=%.3f gravity=%.3f",
			p.id, p.tick, p.state.IsGrounded, velocity, p.state.ResolvedSpeed, p.state.ResolvedGravity)
	}

	// 6. Reset
	p.state.ResetPending()

	report := Report{
		Tick:     p.tick,
		Velocity: velocity,
		Events:   p.emitted,
	}
	p.emitted = nil
	return report
}

func (p *Pipeline) probeGround() {
	contact := p.ground.Probe()

	if p.launchGrace > 0 {
		p.launchGrace--
		if contact.Hit {
			contact = motion.NoContact(p.state.Up)
		}
	}

	p.SetGrounded(contact.Hit)
	if contact.Hit {
		p.state.SetGroundContact(contact.Point, contact.Normal, contact.Distance)
	} else {
		p.state.SetGroundContact(mgl64.Vec3{}, p.state.Up, 0)
	}
}

func (p *Pipeline) detectMovementEdges() {
	moving := p.state.ResolvedSpeed > 0
	if moving != p.state.IsMoving {
		p.state.IsMoving = moving
		if moving {
			p.emit(EventStartedMovement)
		} else {
			p.emit(EventFinishedMovement)
		}
	}

	input := p.state.MoveStrength > 0
	if input != p.state.HasInput {
		p.state.HasInput = input
		if input {
			p.emit(EventStartedInput)
		} else {
			p.emit(EventFinishedInput)
		}
	}
}

// SetMoveDirection sets the movement input. A zero direction clears it;
// a negative strength (motion.FullStrength) means full strength.
// While input is ignored the input is cleared instead.
func (p *Pipeline) SetMoveDirection(direction mgl64.Vec3, strength float64) {
	if p.ignoreInput > 0 {
		p.state.ClearInput()
		return
	}
	p.state.SetInput(direction, strength)
}

// AddIgnoreInput pushes one level of input suppression and clears the input.
func (p *Pipeline) AddIgnoreInput() {
	p.ignoreInput++
	p.state.ClearInput()
}

// RemoveIgnoreInput pops one level of input suppression.
func (p *Pipeline) RemoveIgnoreInput() {
	if p.ignoreInput > 0 {
		p.ignoreInput--
	}
}

// ClearIgnoreInput drops every level of input suppression.
func (p *Pipeline) ClearIgnoreInput() {
	p.ignoreInput = 0
}

// IgnoreInput reports whether input is currently suppressed.
func (p *Pipeline) IgnoreInput() bool {
	return p.ignoreInput > 0
}

// SetGrounded records a grounded value. The previous value moves to
// WasGrounded. Landed or Jumped fires only when the value changes.
func (p *Pipeline) SetGrounded(grounded bool) {
	old := p.state.IsGrounded
	p.state.WasGrounded = old
	p.state.IsGrounded = grounded

	if old == grounded {
		return
	}
	if grounded {
		p.emit(EventLanded)
	} else {
		p.emit(EventJumped)
	}
}

// SetGroundState stores ground contact data without touching the flags.
func (p *Pipeline) SetGroundState(point, normal mgl64.Vec3, distance float64) {
	p.state.SetGroundContact(point, normal, distance)
}

// ForceGrounded marks the entity grounded on this and the previous tick.
func (p *Pipeline) ForceGrounded() {
	p.forceGround(true)
}

// ForceUngrounded marks the entity airborne immediately, resets the ground
// contact and ignores ground probe hits for the launch grace period.
func (p *Pipeline) ForceUngrounded() {
	p.forceGround(false)
	p.state.SetGroundContact(mgl64.Vec3{}, p.state.Up, 0)
	p.launchGrace = p.launchGraceTicks
}

func (p *Pipeline) forceGround(grounded bool) {
	old := p.state.IsGrounded
	p.state.IsGrounded = grounded
	p.state.WasGrounded = grounded
	if old == grounded {
		return
	}
	if grounded {
		p.launchGrace = 0
		p.emit(EventLanded)
	} else {
		p.emit(EventJumped)
	}
}

// Teleport relocates the body. An immediate teleport goes straight to the
// backend; otherwise it is applied at the start of the next Apply step.
func (p *Pipeline) Teleport(position mgl64.Vec3, immediate bool) {
	if immediate {
		p.teleportPending = false
		p.body.Teleport(position)
		return
	}
	p.teleportPending = true
	p.teleportTarget = position
}

// AddModifier attaches and enables m.
func (p *Pipeline) AddModifier(m Modifier) {
	p.registry.Add(m)
}

// RemoveModifier detaches m.
func (p *Pipeline) RemoveModifier(m Modifier) {
	p.registry.Remove(m)
}

// SetModifierEnabled toggles m.
func (p *Pipeline) SetModifierEnabled(m Modifier, enabled bool) {
	p.registry.SetEnabled(m, enabled)
}

// Subscribe registers fn for kind. The returned func cancels the subscription.
func (p *Pipeline) Subscribe(kind EventKind, fn Handler) (cancel func()) {
	return p.events.subscribe(kind, fn)
}

// State returns a read-only copy of the current kinematic state.
func (p *Pipeline) State() motion.Snapshot {
	return p.state.Snapshot()
}

// Pending returns the per-tick accumulators. Both are zero between ticks.
func (p *Pipeline) Pending() (velocity, position mgl64.Vec3) {
	return p.state.PendingVelocity, p.state.PendingPosition
}

// ResetMovement clears input, input suppression and the derived motion.
// Active movement and input edges are closed with their Finished events.
func (p *Pipeline) ResetMovement() {
	p.ignoreInput = 0
	p.teleportPending = false
	p.state.ResetDerived()

	if p.state.IsMoving {
		p.state.IsMoving = false
		p.emit(EventFinishedMovement)
	}
	if p.state.HasInput {
		p.state.HasInput = false
		p.emit(EventFinishedInput)
	}
}

func (p *Pipeline) emit(kind EventKind) {
	e := Event{Kind: kind, EntityID: p.id, Tick: p.tick, Source: p}
	p.emitted = append(p.emitted, e)
	if p.debug {
		p.logger.Printf("MovementSystem [%s]: %s", p.id, kind)
	}
	p.events.dispatch(e)
}
