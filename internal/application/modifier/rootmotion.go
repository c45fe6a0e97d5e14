package modifier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/application/pipeline"
	"github.com/younwookim/movekit/internal/domain/motion"
)

// RootMotionSource reports the displacement an animation produced this tick.
type RootMotionSource interface {
	DeltaPosition() mgl64.Vec3
}

// RootMotion forwards animation displacement verbatim after physical modifiers.
type RootMotion struct {
	phase  motion.Phase
	source RootMotionSource
}

// NewRootMotion fails when source is nil.
func NewRootMotion(source RootMotionSource) (*RootMotion, error) {
	if source == nil {
		return nil, pipeline.NewMissingCollaboratorError("RootMotion", "a root motion source")
	}
	return &RootMotion{phase: motion.PhaseLate, source: source}, nil
}

func (m *RootMotion) Phase() motion.Phase     { return m.phase }
func (m *RootMotion) SetPhase(p motion.Phase) { m.phase = p }

func (m *RootMotion) ProcessMovement(_ motion.Snapshot, _ float64) motion.Delta {
	return motion.PositionDelta(m.source.DeltaPosition())
}

func (m *RootMotion) ResetModifier() {}

// RootMotionFunc adapts a function to RootMotionSource.
type RootMotionFunc func() mgl64.Vec3

func (f RootMotionFunc) DeltaPosition() mgl64.Vec3 { return f() }
