package modifier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/domain/motion"
)

// AxisMovement drives one axis of a TargetMovement.
type AxisMovement struct {
	Use      bool
	Distance float64
	Curve    motion.Curve // nil means linear
}

func (a AxisMovement) distanceAt(t float64) float64 {
	if !a.Use {
		return 0
	}
	c := a.Curve
	if c == nil {
		c = motion.LinearCurve{}
	}
	return a.Distance * c.Evaluate(t)
}

// TargetMovement describes a one-shot curve driven displacement in local space.
type TargetMovement struct {
	Duration float64
	X, Y, Z  AxisMovement
}

// TargetHandler observes a Target modifier.
type TargetHandler func(*Target)

// Target plays a TargetMovement, emitting per tick the change in curve
// distance rotated into the heading given at start.
type Target struct {
	phase motion.Phase

	movement TargetMovement
	heading  mgl64.Quat
	elapsed  float64
	normTime float64
	prev     mgl64.Vec3
	active   bool

	onFinished []TargetHandler
}

func NewTarget() *Target {
	return &Target{phase: motion.PhaseDefault, heading: mgl64.QuatIdent()}
}

func (t *Target) Phase() motion.Phase     { return t.phase }
func (t *Target) SetPhase(p motion.Phase) { t.phase = p }

// Active reports whether a movement is playing.
func (t *Target) Active() bool { return t.active }

// NormalizedTime returns elapsed/duration in [0,1].
func (t *Target) NormalizedTime() float64 { return t.normTime }

// OnFinished registers fn to run whenever a movement completes or is stopped.
func (t *Target) OnFinished(fn TargetHandler) {
	t.onFinished = append(t.onFinished, fn)
}

// Start begins a movement rotated by headingDeg around up (+Y).
// A movement already playing is finished first.
func (t *Target) Start(m TargetMovement, headingDeg float64) {
	t.StartAround(m, headingDeg, motion.Up)
}

// StartAround is Start with an explicit up axis.
func (t *Target) StartAround(m TargetMovement, headingDeg float64, up mgl64.Vec3) {
	if t.active {
		t.finish()
	}

	axis := motion.SafeNormalize(up)
	if axis == (mgl64.Vec3{}) {
		axis = motion.Up
	}

	t.movement = m
	t.heading = mgl64.QuatRotate(mgl64.DegToRad(headingDeg), axis)
	t.elapsed = 0
	t.normTime = 0
	t.prev = mgl64.Vec3{}
	t.active = true
}

// Stop ends the current movement. Stopping an inactive target does nothing.
func (t *Target) Stop() {
	if t.active {
		t.finish()
	}
}

func (t *Target) ProcessMovement(_ motion.Snapshot, deltaTime float64) motion.Delta {
	if !t.active {
		return motion.Delta{}
	}

	t.elapsed += deltaTime
	if t.movement.Duration <= 0 {
		t.normTime = 1
	} else {
		t.normTime = motion.Clamp01(t.elapsed / t.movement.Duration)
	}

	current := mgl64.Vec3{
		t.movement.X.distanceAt(t.normTime),
		t.movement.Y.distanceAt(t.normTime),
		t.movement.Z.distanceAt(t.normTime),
	}
	step := current.Sub(t.prev)
	t.prev = current

	if t.normTime >= 1 {
		t.finish()
	}
	return motion.PositionDelta(t.heading.Rotate(step))
}

func (t *Target) finish() {
	t.active = false
	for _, fn := range t.onFinished {
		fn(t)
	}
}

// ResetModifier stops any playing movement.
func (t *Target) ResetModifier() {
	t.Stop()
}
