package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/application/pipeline"
	"github.com/younwookim/movekit/internal/domain/entity"
	"github.com/younwookim/movekit/internal/infrastructure/backend"
	"github.com/younwookim/movekit/internal/infrastructure/config"
)

// Backend names accepted in stage files
const (
	BackendKinematic = "kinematic"
	BackendChipmunk  = "chipmunk"
)

// Body is a physics backend that also resolves its own ground contact.
type Body interface {
	pipeline.GroundResolver
	pipeline.Backend
	Position() mgl64.Vec3
}

// Rig holds the physics side of a stage: the stage itself and, for the
// chipmunk backend, the shared space that must be stepped once per tick.
type Rig struct {
	Stage  *entity.Stage
	kind   string
	probe  backend.ProbeConfig
	width  float64
	height float64
	mass   float64
	world  *backend.ChipmunkWorld
}

// NewRig prepares the backend named by the stage config.
func NewRig(stageCfg *config.StageConfig, probe config.ProbeConfig) (*Rig, error) {
	kind := stageCfg.Backend
	if kind == "" {
		kind = BackendKinematic
	}

	stage := LoadStage(stageCfg)
	r := &Rig{
		Stage:  stage,
		kind:   kind,
		probe:  backend.ProbeConfig{StairOffset: probe.StairOffset, AirOffset: probe.AirOffset},
		width:  stageCfg.Body.Width * stage.TileSize,
		height: stageCfg.Body.Height * stage.TileSize,
		mass:   stageCfg.Body.Mass,
	}
	if r.width <= 0 {
		r.width = 0.8 * stage.TileSize
	}
	if r.height <= 0 {
		r.height = 1.6 * stage.TileSize
	}

	switch kind {
	case BackendKinematic:
	case BackendChipmunk:
		r.world = backend.NewChipmunkWorld(stage)
	default:
		return nil, fmt.Errorf("stage %s: %w: unknown backend %q", stageCfg.ID, config.ErrInvalidConfig, kind)
	}
	return r, nil
}

// Kind returns the backend name.
func (r *Rig) Kind() string {
	return r.kind
}

// BodySize returns the width and height of spawned bodies.
func (r *Rig) BodySize() (width, height float64) {
	return r.width, r.height
}

// Spawn creates a body with its feet at feet.
func (r *Rig) Spawn(feet mgl64.Vec3) Body {
	if r.world != nil {
		return r.world.NewBody(feet, r.width, r.height, r.mass, r.probe)
	}
	return backend.NewKinematic(r.Stage, entity.NewBody(feet, r.width, r.height), r.probe)
}

// Step advances the shared space. It does nothing for the kinematic backend.
func (r *Rig) Step(deltaTime float64) {
	if r.world != nil {
		r.world.Step(deltaTime)
	}
}
