package modifier

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/application/pipeline"
	"github.com/younwookim/movekit/internal/domain/motion"
)

const (
	DefaultMass         = 1.0
	DefaultDrag         = 1.0
	DefaultEndThreshold = 0.2

	minMass = 0.001
)

// Grounding lets a modifier cancel the grounded state immediately.
type Grounding interface {
	ForceUngrounded()
}

// ForceHandler observes a Force modifier.
type ForceHandler func(*Force)

// Force keeps a residual impulse that decays toward zero at drag units/s.
type Force struct {
	phase     motion.Phase
	grounding Grounding

	mass         float64
	drag         float64
	endThreshold float64

	force      mgl64.Vec3
	remain     bool
	justAdded  bool
	onAdded    []ForceHandler
	onOverride []ForceHandler
	onEnded    []ForceHandler
}

// NewForce creates a force modifier with default mass, drag and end threshold.
// grounding receives ForceUngrounded when an upward force is added.
func NewForce(grounding Grounding) (*Force, error) {
	if grounding == nil {
		return nil, pipeline.NewMissingCollaboratorError("Force", "a grounding target")
	}
	return &Force{
		phase:        motion.PhaseDefault,
		grounding:    grounding,
		mass:         DefaultMass,
		drag:         DefaultDrag,
		endThreshold: DefaultEndThreshold,
	}, nil
}

func (f *Force) Phase() motion.Phase     { return f.phase }
func (f *Force) SetPhase(p motion.Phase) { f.phase = p }

// SetMass sets the mass. Negative values are clamped to 0.
func (f *Force) SetMass(mass float64) { f.mass = math.Max(0, mass) }

func (f *Force) SetDrag(drag float64) { f.drag = drag }

// SetEndThreshold sets the magnitude below which the residual is dropped.
func (f *Force) SetEndThreshold(v float64) { f.endThreshold = math.Max(0, v) }

// Force returns the current residual.
func (f *Force) Force() mgl64.Vec3 { return f.force }

// HasRemainForce reports whether a residual is still being applied.
func (f *Force) HasRemainForce() bool { return f.remain }

func (f *Force) OnAddedForce(fn ForceHandler)      { f.onAdded = append(f.onAdded, fn) }
func (f *Force) OnOverriddenForce(fn ForceHandler) { f.onOverride = append(f.onOverride, fn) }
func (f *Force) OnEndedForce(fn ForceHandler)      { f.onEnded = append(f.onEnded, fn) }

// AddForce adds force/mass to the residual. Every positive component of
// overrideAxis makes that axis take the new value instead of summing.
func (f *Force) AddForce(force, overrideAxis mgl64.Vec3) {
	v := f.scaled(force)
	for i := 0; i < 3; i++ {
		if overrideAxis[i] > 0 {
			f.force[i] = v[i]
		} else {
			f.force[i] += v[i]
		}
	}
	f.start(v)
	notify(f, f.onAdded)
}

// OverrideForce replaces the residual with force/mass.
func (f *Force) OverrideForce(force mgl64.Vec3) {
	v := f.scaled(force)
	f.force = v
	f.start(v)
	notify(f, f.onOverride)
}

func (f *Force) scaled(force mgl64.Vec3) mgl64.Vec3 {
	return force.Mul(1 / math.Max(minMass, f.mass))
}

func (f *Force) start(added mgl64.Vec3) {
	f.remain = true
	f.justAdded = true

	// A launch must not be swallowed by a stale grounded flag.
	if added.Y() > 0 {
		f.grounding.ForceUngrounded()
	}
}

func (f *Force) ProcessMovement(s motion.Snapshot, deltaTime float64) motion.Delta {
	if !f.remain {
		return motion.Delta{}
	}

	out := motion.VelocityDelta(f.force)

	f.force = motion.MoveTowardsVec(f.force, mgl64.Vec3{}, deltaTime*f.drag)

	if f.justAdded {
		f.justAdded = false
	} else {
		for i := 0; i < 3; i++ {
			f.force[i] = limitToPrevious(f.force[i], s.PrevVelocity[i])
		}
	}

	if f.force.Len() < f.endThreshold {
		f.force = mgl64.Vec3{}
		f.remain = false
		notify(f, f.onEnded)
	}
	return out
}

// limitToPrevious keeps one axis of the residual from exceeding what was
// actually applied last tick, and drops it when the body moved the other way.
func limitToPrevious(force, prev float64) float64 {
	if force == 0 {
		return 0
	}
	if (force >= 0) != (prev >= 0) {
		return 0
	}
	if force >= 0 {
		return math.Min(force, prev)
	}
	return math.Max(force, prev)
}

func (f *Force) ResetModifier() {
	f.force = mgl64.Vec3{}
	f.remain = false
	f.justAdded = false
}

func notify(f *Force, handlers []ForceHandler) {
	for _, fn := range handlers {
		fn(f)
	}
}
