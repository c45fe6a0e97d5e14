package pipeline

import "github.com/younwookim/movekit/internal/domain/motion"

// Modifier is one pluggable unit of motion contribution.
//
// ProcessMovement must only read the snapshot and the modifier's own state.
// ResetModifier restores the "just enabled" baseline and must be idempotent.
// Modifiers are compared by identity, so implementations should be pointers.
type Modifier interface {
	Phase() motion.Phase
	ProcessMovement(s motion.Snapshot, deltaTime float64) motion.Delta
	ResetModifier()
}
