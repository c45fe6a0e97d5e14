package pipeline

//go:generate mockgen -destination=mock/mock_ports.go -package=mockpipeline -source=ports.go

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/domain/motion"
)

// GroundResolver probes for ground once per tick, before modifiers run.
type GroundResolver interface {
	Probe() motion.GroundContact
}

// Backend moves the physical body. The applied result must be visible to
// the next Probe.
type Backend interface {
	// ApplyDisplacement applies one combined velocity for the tick.
	ApplyDisplacement(velocity mgl64.Vec3, deltaTime float64)

	// Teleport relocates the body immediately, bypassing collision.
	Teleport(position mgl64.Vec3)
}
