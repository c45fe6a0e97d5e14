package ecs

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/application/pipeline"
	"github.com/younwookim/movekit/internal/application/system"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Stepper advances shared physics once per tick after every mover applied
type Stepper interface {
	Step(deltaTime float64)
}

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Mover map[EntityID]Mover
	Input map[EntityID]system.InputState
	AI    map[EntityID]*AI

	// Tags
	IsPlayer map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID

	physics Stepper
	workers int
}

// NewWorld creates a new empty world. physics may be nil.
func NewWorld(physics Stepper) *World {
	return &World{
		nextID:   1, // 0 is "nil"
		Mover:    make(map[EntityID]Mover),
		Input:    make(map[EntityID]system.InputState),
		AI:       make(map[EntityID]*AI),
		IsPlayer: make(map[EntityID]struct{}),
		physics:  physics,
	}
}

// SetWorkers limits how many movers tick at once. n <= 0 means no limit.
func (w *World) SetWorkers(n int) {
	w.workers = n
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Mover, id)
	delete(w.Input, id)
	delete(w.AI, id)
	delete(w.IsPlayer, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has a Mover component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Mover[id]
	return ok
}

// CreatePlayer adds the player character
func (w *World) CreatePlayer(c *system.Character, body system.Body) EntityID {
	id := w.NewEntity()

	w.Mover[id] = Mover{Character: c, Body: body}
	w.Input[id] = system.InputState{}
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// CreateAgent adds an AI driven character patrolling distance around its spawn
func (w *World) CreateAgent(c *system.Character, body system.Body, aiType AIType, distance float64) EntityID {
	id := w.NewEntity()

	w.Mover[id] = Mover{Character: c, Body: body}
	w.Input[id] = system.InputState{}
	w.AI[id] = &AI{
		Type:           aiType,
		PatrolStartX:   body.Position().X(),
		PatrolDistance: distance,
		PatrolDir:      1,
	}

	return id
}

// SetPlayerInput stores the input used by the player on the next step
func (w *World) SetPlayerInput(input system.InputState) {
	if _, ok := w.Mover[w.PlayerID]; ok {
		w.Input[w.PlayerID] = input
	}
}

// Position returns the feet position of an entity
func (w *World) Position(id EntityID) (mgl64.Vec3, bool) {
	m, ok := w.Mover[id]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return m.Body.Position(), true
}

// Entities returns the ids of every mover in ascending order
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.Mover))
	for id := range w.Mover {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Report is the result of one mover's tick
type Report struct {
	ID     EntityID
	Report pipeline.Report
}
